package report

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV: шапка отчёта, затем одна строка на поле: group, field, source,
// target, diff, percent. Все строки по 6 колонок.
// percent: число без знака %, пусто если не определён.
func WriteCSV(out io.Writer, rep Report) error {
	w := csv.NewWriter(out)
	rows := [][]string{
		{"report", "source_model", "target_model", "", "", ""},
		{rep.ID, rep.Result.Source.Model, rep.Result.Target.Model, "", "", ""},
		{"group", "field", "source", "target", "diff", "percent"},
	}
	for _, d := range rep.Result.Electrical {
		pct := ""
		if d.Percent != nil {
			pct = strconv.FormatFloat(*d.Percent, 'f', -1, 64)
		}
		rows = append(rows, []string{"electrical", d.Field, formatNum(d.Source), formatNum(d.Target), formatNum(d.Diff), pct})
	}
	for _, d := range rep.Result.Dimensions {
		rows = append(rows, []string{"dimensions", d.Field, formatNum(d.Source), formatNum(d.Target), formatNum(d.Diff), ""})
	}

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
