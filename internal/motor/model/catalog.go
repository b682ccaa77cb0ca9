package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrMissingModel   = errors.New("catalog: record without model")
	ErrDuplicateModel = errors.New("catalog: duplicate model")
	ErrKeyMismatch    = errors.New("catalog: key does not match record model")
	ErrSeriesOverlap  = errors.New("catalog: model present in both series")
)

// Series: упорядоченная read-only коллекция записей одной серии.
// Порядок итерации = порядок построения, от него зависят тай-брейки.
type Series struct {
	name    string
	records []MotorRecord
	byModel map[string]int
}

func NewSeries(name string, records []MotorRecord) (*Series, error) {
	s := &Series{
		name:    name,
		records: make([]MotorRecord, 0, len(records)),
		byModel: make(map[string]int, len(records)),
	}
	for _, r := range records {
		if strings.TrimSpace(r.Model) == "" {
			return nil, fmt.Errorf("%s: %w", name, ErrMissingModel)
		}
		if _, ok := s.byModel[r.Model]; ok {
			return nil, fmt.Errorf("%s: %q: %w", name, r.Model, ErrDuplicateModel)
		}
		s.byModel[r.Model] = len(s.records)
		s.records = append(s.records, r)
	}
	return s, nil
}

func (s *Series) Name() string { return s.name }

func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// Records returns a copy; callers cannot reorder the series.
func (s *Series) Records() []MotorRecord {
	if s == nil {
		return nil
	}
	out := make([]MotorRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Series) Get(model string) (MotorRecord, bool) {
	if s == nil {
		return MotorRecord{}, false
	}
	i, ok := s.byModel[model]
	if !ok {
		return MotorRecord{}, false
	}
	return s.records[i], true
}

// Catalog: два непересекающихся набора + зарезервированная история конверсий.
type Catalog struct {
	Source  *Series
	Target  *Series
	History []HistoryEntry
}

func NewCatalog(source, target []MotorRecord) (*Catalog, error) {
	src, err := NewSeries(SeriesSource, source)
	if err != nil {
		return nil, err
	}
	tgt, err := NewSeries(SeriesTarget, target)
	if err != nil {
		return nil, err
	}
	for _, r := range tgt.records {
		if _, ok := src.byModel[r.Model]; ok {
			return nil, fmt.Errorf("%q: %w", r.Model, ErrSeriesOverlap)
		}
	}
	return &Catalog{Source: src, Target: tgt}, nil
}

// NewCatalogFromKeyed строит каталог из keyed-структур (как в JSON). Ключи
// сортируются, т.к. у map нет порядка.
func NewCatalogFromKeyed(source, target map[string]MotorRecord) (*Catalog, error) {
	src, err := keyedToSlice(SeriesSource, source)
	if err != nil {
		return nil, err
	}
	tgt, err := keyedToSlice(SeriesTarget, target)
	if err != nil {
		return nil, err
	}
	return NewCatalog(src, tgt)
}

func keyedToSlice(series string, m map[string]MotorRecord) ([]MotorRecord, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]MotorRecord, 0, len(keys))
	for _, k := range keys {
		r := m[k]
		if r.Model == "" {
			r.Model = k
		}
		if r.Model != k {
			return nil, fmt.Errorf("%s: key %q, model %q: %w", series, k, r.Model, ErrKeyMismatch)
		}
		out = append(out, r)
	}
	return out, nil
}
