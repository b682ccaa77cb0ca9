package report

import (
	"fmt"
	"io"
	"time"

	excelize "github.com/xuri/excelize/v2"
)

const sheetName = "Comparison"

// sheetWriter: построчная запись; первая ошибка запоминается, дальше no-op.
type sheetWriter struct {
	f   *excelize.File
	row int
	err error
}

func (w *sheetWriter) put(col int, v any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, w.row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellValue(sheetName, cell, v)
}

func (w *sheetWriter) line(vals ...any) {
	for i, v := range vals {
		w.put(i+1, v)
	}
	w.row++
}

func (w *sheetWriter) style(style, cols int) {
	if w.err != nil {
		return
	}
	from, _ := excelize.CoordinatesToCellName(1, w.row-1)
	to, _ := excelize.CoordinatesToCellName(cols, w.row-1)
	w.err = w.f.SetCellStyle(sheetName, from, to, style)
}

// cellValue: nil → пустая ячейка, а не 0
func cellValue(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func pctValue(v *float64) any {
	if v == nil {
		return nil
	}
	return *v / 100
}

// WriteXLSX writes a one-sheet workbook: header block, Electrical and Dimensions sections.
func WriteXLSX(out io.Writer, rep Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	pct := "0.0%"
	pctStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &pct})
	if err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}

	res := rep.Result
	w := &sheetWriter{f: f, row: 1}
	w.line("Report", rep.ID)
	w.line("Created", rep.CreatedAt.UTC().Format(time.RFC3339))
	w.line("Source model", res.Source.Model)
	w.line("Target model", res.Target.Model)
	w.line("Source drive", deref(res.Source.RecommendedDrive))
	w.line("Target drive", deref(res.Target.RecommendedDrive))
	w.row++

	w.line("Electrical", "Source", "Target", "Diff", "Diff %")
	w.style(bold, 5)
	first := w.row
	for _, d := range res.Electrical {
		w.line(Label(d.Field), cellValue(d.Source), cellValue(d.Target), cellValue(d.Diff), pctValue(d.Percent))
	}
	if w.err == nil {
		from, _ := excelize.CoordinatesToCellName(5, first)
		to, _ := excelize.CoordinatesToCellName(5, w.row-1)
		w.err = f.SetCellStyle(sheetName, from, to, pctStyle)
	}
	w.row++

	w.line("Dimensions", "Source", "Target", "Diff")
	w.style(bold, 4)
	for _, d := range res.Dimensions {
		w.line(Label(d.Field), cellValue(d.Source), cellValue(d.Target), cellValue(d.Diff))
	}

	if w.err == nil {
		w.err = f.SetColWidth(sheetName, "A", "A", 28)
	}
	if w.err != nil {
		return fmt.Errorf("xlsx: %w", w.err)
	}
	if err := f.Write(out); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}
