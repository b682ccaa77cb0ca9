package report

import (
	"fmt"
	"io"
	"strings"
	"text/template"
)

type TableConfig struct {
	NameWidth  int
	ValueWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{NameWidth: 28, ValueWidth: 12}
}

const textTemplate = `Report {{.ID}}
{{.Result.Source.Model}} -> {{.Result.Target.Model}}
Drive: {{drive .Result.Source.RecommendedDrive}} -> {{drive .Result.Target.RecommendedDrive}}

{{separator 5}}
{{row "Electrical" "Source" "Target" "Diff" "Diff %"}}
{{separator 5}}
{{range .Result.Electrical}}{{row (label .Field) (num .Source) (num .Target) (num .Diff) (pct .Percent)}}
{{end}}{{separator 5}}

{{separator 4}}
{{row "Dimensions" "Source" "Target" "Diff"}}
{{separator 4}}
{{range .Result.Dimensions}}{{row (label .Field) (num .Source) (num .Target) (num .Diff)}}
{{end}}{{separator 4}}
`

// WriteText renders a fixed-width table for the terminal.
func WriteText(out io.Writer, rep Report, cfg TableConfig) error {
	funcMap := template.FuncMap{
		"label": Label,
		"num":   formatNum,
		"pct":   formatPct,
		"drive": func(s *string) string {
			if s == nil {
				return "-"
			}
			return *s
		},
		"row": func(name string, vals ...string) string {
			var b strings.Builder
			fmt.Fprintf(&b, "| %-*s |", cfg.NameWidth, name)
			for _, v := range vals {
				fmt.Fprintf(&b, " %*s |", cfg.ValueWidth, v)
			}
			return b.String()
		},
		"separator": func(cols int) string {
			var b strings.Builder
			b.WriteString("+" + strings.Repeat("-", cfg.NameWidth+2) + "+")
			for i := 1; i < cols; i++ {
				b.WriteString(strings.Repeat("-", cfg.ValueWidth+2) + "+")
			}
			return b.String()
		},
	}

	t, err := template.New("report").Funcs(funcMap).Parse(textTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(out, rep)
}
