package cli

import (
	"strconv"

	"motor-match/internal/motor/model"
)

func num(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func (cli *CLI) printRecords(recs []model.MotorRecord) {
	for _, r := range recs {
		cli.printf("%-24s Mo=%-8s rpm=%-6s L=%-6s drive=%s\n",
			r.Model, num(r.Mo), num(r.Rpm), num(r.Dimensions.Length), drive(r.RecommendedDrive))
	}
}

func drive(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
