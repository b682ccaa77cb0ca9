package service

import "motor-match/internal/motor/model"

// ApplyFilters keeps records that violate no present bound. A nil field is
// never rejected by a bound; zero is an ordinary value.
func ApplyFilters(records []model.MotorRecord, f model.AdvancedFilters) []model.MotorRecord {
	out := make([]model.MotorRecord, 0, len(records))
	for _, r := range records {
		if passes(r, f) {
			out = append(out, r)
		}
	}
	return out
}

func passes(r model.MotorRecord, f model.AdvancedFilters) bool {
	return within(r.Mo, f.MoMin, f.MoMax) &&
		within(r.Rpm, f.RpmMin, f.RpmMax) &&
		within(r.Dimensions.Length, nil, f.LengthMax) &&
		within(r.Dimensions.HousingWidth, nil, f.WidthMax)
}

func within(v, lo, hi *float64) bool {
	if v == nil {
		return true
	}
	if lo != nil && *v < *lo {
		return false
	}
	if hi != nil && *v > *hi {
		return false
	}
	return true
}
