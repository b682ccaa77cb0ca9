package service

import (
	"math"
	"sort"

	"motor-match/internal/motor/model"
)

// DefaultTolerance: допустимое относительное отклонение Mo (25%).
const DefaultTolerance = 0.25

// сдвиг для float-шума: 1.2 → 1.5 даёт 0.25000000000000006
const toleranceSlack = 1e-9

type Matcher struct {
	Tolerance float64
}

func NewMatcher(tolerance float64) *Matcher {
	if tolerance <= 0 || math.IsNaN(tolerance) || math.IsInf(tolerance, 0) {
		tolerance = DefaultTolerance
	}
	return &Matcher{Tolerance: tolerance}
}

// FindEquivalents returns target-series records compatible with src, closest
// stall torque first. Empty means "no compatible replacement", not an error.
func FindEquivalents(src model.MotorRecord, c *model.Catalog) []model.MotorRecord {
	return NewMatcher(DefaultTolerance).FindEquivalents(src, c)
}

func (m *Matcher) FindEquivalents(src model.MotorRecord, c *model.Catalog) []model.MotorRecord {
	ranked := m.RankEquivalents(src, c)
	out := make([]model.MotorRecord, 0, len(ranked))
	for _, e := range ranked {
		out = append(out, e.Record)
	}
	return out
}

// RankEquivalents: то же, что FindEquivalents, но с расстояниями.
func (m *Matcher) RankEquivalents(src model.MotorRecord, c *model.Catalog) []model.Equivalent {
	out := []model.Equivalent{}
	if c == nil || src.Rpm == nil || src.Mo == nil || *src.Mo <= 0 {
		return out
	}
	for _, t := range c.Target.Records() {
		e, ok := m.qualify(src, t)
		if ok {
			out = append(out, e)
		}
	}
	// стабильная сортировка: равные расстояния остаются в порядке каталога
	sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	return out
}

func (m *Matcher) qualify(src, t model.MotorRecord) (model.Equivalent, bool) {
	if t.Rpm == nil || t.Mo == nil {
		return model.Equivalent{}, false
	}
	if *t.Rpm != *src.Rpm {
		return model.Equivalent{}, false
	}
	d := math.Abs(*t.Mo - *src.Mo)
	rel := d / *src.Mo
	if math.IsNaN(rel) || rel > m.Tolerance+toleranceSlack {
		return model.Equivalent{}, false
	}
	return model.Equivalent{Record: t, Distance: d, Relative: rel}, true
}
