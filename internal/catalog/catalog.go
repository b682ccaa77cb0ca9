package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"motor-match/internal/fileio"
	"motor-match/internal/motor/model"
)

//go:embed data/sample.json
var sampleJSON []byte

var ErrUnknownSeries = errors.New("catalog: unknown series")

// document: формат JSON-каталога: две keyed-коллекции + история (ядро её не читает).
type document struct {
	Source  map[string]model.MotorRecord `json:"source"`
	Target  map[string]model.MotorRecord `json:"target"`
	History []model.HistoryEntry         `json:"history"`
}

// Sample returns the built-in demo catalog.
func Sample() (*model.Catalog, error) {
	return DecodeJSON(bytes.NewReader(sampleJSON))
}

// Load reads a catalog file. JSON is decoded directly; .xlsx/.xls/.csv are read
// as one motor per row.
func Load(path string, logger zerolog.Logger) (*model.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	var c *model.Catalog
	if strings.EqualFold(filepath.Ext(path), ".json") {
		c, err = DecodeJSON(f)
	} else {
		c, err = decodeTable(f, filepath.Base(path), logger)
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}

	logger.Info().
		Str("path", path).
		Int("source", c.Source.Len()).
		Int("target", c.Target.Len()).
		Msg("catalog loaded")
	return c, nil
}

func DecodeJSON(r io.Reader) (*model.Catalog, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog json: %w", err)
	}
	c, err := model.NewCatalogFromKeyed(doc.Source, doc.Target)
	if err != nil {
		return nil, err
	}
	c.History = doc.History
	return c, nil
}

func decodeTable(r io.Reader, filename string, logger zerolog.Logger) (*model.Catalog, error) {
	t, err := fileio.ReadTable(r, filename, 1)
	if err != nil {
		return nil, err
	}
	cols := resolveColumns(t.Headers)
	if cols[colModel] == "" {
		return nil, fmt.Errorf("%s: no model column: %w", filename, model.ErrMissingModel)
	}

	var src, tgt []model.MotorRecord
	skipped := 0
	for i, row := range t.Rows {
		rec := rowToRecord(row, cols)
		if rec.Model == "" {
			skipped++
			continue
		}
		series, err := seriesOf(row[cols[colSeries]], rec.Model)
		if err != nil {
			// +2: 1-based и строка заголовков
			return nil, fmt.Errorf("%s row %d: %w", filename, i+2, err)
		}
		if series == model.SeriesSource {
			src = append(src, rec)
		} else {
			tgt = append(tgt, rec)
		}
	}
	if skipped > 0 {
		logger.Debug().Str("file", filename).Int("skipped", skipped).Msg("rows without model")
	}
	return model.NewCatalog(src, tgt)
}

// seriesOf: по колонке серии, иначе по префиксу модели.
func seriesOf(cell, modelName string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "source", "fxm", "legacy", "old":
		return model.SeriesSource, nil
	case "target", "fkm", "replacement", "new":
		return model.SeriesTarget, nil
	case "":
	default:
		return "", fmt.Errorf("%q: %w", cell, ErrUnknownSeries)
	}
	m := strings.ToUpper(strings.TrimSpace(modelName))
	switch {
	case strings.HasPrefix(m, "FXM"):
		return model.SeriesSource, nil
	case strings.HasPrefix(m, "FKM"):
		return model.SeriesTarget, nil
	}
	return "", fmt.Errorf("model %q: %w", modelName, ErrUnknownSeries)
}
