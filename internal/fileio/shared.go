package fileio

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

var ErrUnsupportedFormat = errors.New("fileio: unsupported file format")

// Table: прочитанная таблица: заголовки + строки map[header]value.
type Table struct {
	Headers []string
	Rows    []map[string]string
}

// ReadTable выбирает парсер по расширению. headerRow: номер строки заголовков (1-based).
func ReadTable(r io.Reader, filename string, headerRow int) (*Table, error) {
	if headerRow <= 0 {
		headerRow = 1
	}
	var (
		rows [][]string
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".xlsx":
		rows, err = readXLSX(r)
	case ".xls":
		rows, err = readXLS(r)
	case ".csv":
		rows, err = readCSV(r)
	default:
		return nil, fmt.Errorf("%s: %w", filename, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}
	h := pickHeader(rows, headerRow)
	return &Table{Headers: h, Rows: rowsToMaps(rows, h, headerRow)}, nil
}

// pickHeader: строка заголовков, пустые ячейки → "Column N".
func pickHeader(rows [][]string, headerRow int) []string {
	idx := headerRow - 1
	if idx >= len(rows) {
		idx = 0
	}
	out := make([]string, len(rows[idx]))
	for i, v := range rows[idx] {
		v = strings.TrimSpace(v)
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		out[i] = v
	}
	return out
}

// rowsToMaps: всё после шапки, полностью пустые строки пропускаем.
func rowsToMaps(rows [][]string, headers []string, headerRow int) []map[string]string {
	var out []map[string]string
	for r := headerRow; r < len(rows); r++ {
		rec := rows[r]
		m := make(map[string]string, len(headers))
		empty := true
		for c, h := range headers {
			var v string
			if c < len(rec) {
				v = rec[c]
			}
			if strings.TrimSpace(v) != "" {
				empty = false
			}
			m[h] = v
		}
		if !empty {
			out = append(out, m)
		}
	}
	return out
}
