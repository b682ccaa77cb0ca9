package report

import (
	"strconv"
	"time"

	"motor-match/internal/motor/model"
)

// Report: то, что уходит в экспорт: результат сравнения + запись истории.
type Report struct {
	ID        string
	CreatedAt time.Time
	Result    model.ComparisonResult
}

func New(entry model.HistoryEntry, res model.ComparisonResult) Report {
	return Report{ID: entry.ID, CreatedAt: entry.CreatedAt, Result: res}
}

var fieldLabels = map[string]string{
	"mo":             "Stall torque Mo (Nm)",
	"mn":             "Rated torque Mn (Nm)",
	"mmax":           "Peak torque Mmax (Nm)",
	"io":             "Stall current Io (A)",
	"rpm":            "Rated speed (rpm)",
	"inertia":        "Inertia (kg·cm²)",
	"power":          "Calculated power (kW)",
	"length":         "Length (mm)",
	"housingWidth":   "Housing width (mm)",
	"shaftDiameter":  "Shaft diameter (mm)",
	"flangeDiameter": "Flange diameter (mm)",
	"shaftHeight":    "Shaft height (mm)",
	"mountingLength": "Mounting length (mm)",
}

// Label returns a human-readable name for a diff field key.
func Label(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}

// formatNum: nil → "", иначе без лишних нулей.
func formatNum(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatPct(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 1, 64) + "%"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
