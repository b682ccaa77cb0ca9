// Парсер .xls: ширину таблицы считаем сами, Row.LastCol() ненадёжен.
package fileio

import (
	"bytes"
	"errors"
	"io"
	"strings"

	xls "github.com/extrame/xls"
)

const probeMaxCols = 128

// tableWidth: самая правая непустая колонка по всем строкам.
func tableWidth(sheet *xls.WorkSheet) int {
	width := 0
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		for j := width; j < probeMaxCols; j++ {
			if strings.TrimSpace(row.Col(j)) != "" {
				width = j + 1
			}
		}
	}
	return max(width, 1)
}

func readXLS(r io.Reader) ([][]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	// старые выгрузки бывают и в cp1252, и в utf-8
	var wb *xls.WorkBook
	lastErr := errors.New("xls: failed to open workbook")
	for _, cs := range []string{"utf-8", "windows-1252"} {
		wb, err = xls.OpenReader(bytes.NewReader(b), cs)
		if err == nil && wb != nil {
			break
		}
		if err != nil {
			lastErr = err
		}
	}
	if wb == nil {
		return nil, lastErr
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, nil
	}

	width := tableWidth(sheet)
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		cols := make([]string, width)
		if row := sheet.Row(i); row != nil {
			for j := range cols {
				cols[j] = strings.TrimSpace(row.Col(j))
			}
		}
		rows = append(rows, cols)
	}
	return rows, nil
}
