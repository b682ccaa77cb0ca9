package service

import "motor-match/internal/motor/model"

// Порядок полей фиксирован: отчёты идут по нему позиционно.
var electricalFields = []struct {
	key string
	get func(model.MotorRecord) *float64
}{
	{"mo", func(r model.MotorRecord) *float64 { return r.Mo }},
	{"mn", func(r model.MotorRecord) *float64 { return r.Mn }},
	{"mmax", func(r model.MotorRecord) *float64 { return r.Mmax }},
	{"io", func(r model.MotorRecord) *float64 { return r.Io }},
	{"rpm", func(r model.MotorRecord) *float64 { return r.Rpm }},
	{"inertia", func(r model.MotorRecord) *float64 { return r.Inertia }},
	{"power", func(r model.MotorRecord) *float64 { return r.Power }},
}

var dimensionFields = []struct {
	key string
	get func(model.Dimensions) *float64
}{
	{"length", func(d model.Dimensions) *float64 { return d.Length }},
	{"housingWidth", func(d model.Dimensions) *float64 { return d.HousingWidth }},
	{"shaftDiameter", func(d model.Dimensions) *float64 { return d.ShaftDiameter }},
	{"flangeDiameter", func(d model.Dimensions) *float64 { return d.FlangeDiameter }},
	{"shaftHeight", func(d model.Dimensions) *float64 { return d.ShaftHeight }},
	{"mountingLength", func(d model.Dimensions) *float64 { return d.MountingLength }},
}

// Compare: поле за полем: diff = target - source; percent только при source != 0.
func Compare(src, tgt model.MotorRecord) model.ComparisonResult {
	res := model.ComparisonResult{
		Source:     src,
		Target:     tgt,
		Electrical: make([]model.ElectricalDiff, 0, len(electricalFields)),
		Dimensions: make([]model.DimensionDiff, 0, len(dimensionFields)),
	}
	for _, f := range electricalFields {
		a, b := f.get(src), f.get(tgt)
		d := model.ElectricalDiff{Field: f.key, Source: a, Target: b}
		if a != nil && b != nil {
			diff := *b - *a
			d.Diff = &diff
			if *a != 0 {
				pct := diff / *a * 100
				d.Percent = &pct
			}
		}
		res.Electrical = append(res.Electrical, d)
	}
	for _, f := range dimensionFields {
		a, b := f.get(src.Dimensions), f.get(tgt.Dimensions)
		d := model.DimensionDiff{Field: f.key, Source: a, Target: b}
		if a != nil && b != nil {
			diff := *b - *a
			d.Diff = &diff
		}
		res.Dimensions = append(res.Dimensions, d)
	}
	return res
}
