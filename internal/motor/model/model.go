package model

import "time"

// Серии каталога
const (
	SeriesSource = "source" // FXM, снятые с производства
	SeriesTarget = "target" // FKM, замена
)

type Dimensions struct {
	Length         *float64 `json:"length"`         // L, мм
	HousingWidth   *float64 `json:"housingWidth"`   // габарит корпуса
	ShaftDiameter  *float64 `json:"shaftDiameter"`  // D вала
	FlangeDiameter *float64 `json:"flangeDiameter"` // D фланца
	ShaftHeight    *float64 `json:"shaftHeight"`    // вылет вала
	MountingLength *float64 `json:"mountingLength"` // посадочная длина
}

// MotorRecord: одна позиция каталога. nil = "не указано", никогда не ноль.
type MotorRecord struct {
	Model            string     `json:"model"`
	Mo               *float64   `json:"mo"`      // момент удержания, Нм
	Mn               *float64   `json:"mn"`      // номинальный момент, Нм
	Mmax             *float64   `json:"mmax"`    // пиковый момент, Нм
	Io               *float64   `json:"io"`      // ток удержания, А
	Rpm              *float64   `json:"rpm"`     // номинальная скорость, об/мин
	Inertia          *float64   `json:"inertia"` // момент инерции, кг·см²
	Power            *float64   `json:"power"`   // расчётная мощность, кВт
	RecommendedDrive *string    `json:"recommendedDrive"`
	Dimensions       Dimensions `json:"dimensions"`
}

type HistoryEntry struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	SourceModel string    `json:"sourceModel"`
	TargetModel string    `json:"targetModel"`
}

// AdvancedFilters: необязательные границы; nil = без ограничения.
type AdvancedFilters struct {
	MoMin     *float64 `json:"moMin"`
	MoMax     *float64 `json:"moMax"`
	RpmMin    *float64 `json:"rpmMin"`
	RpmMax    *float64 `json:"rpmMax"`
	LengthMax *float64 `json:"lengthMax"`
	WidthMax  *float64 `json:"widthMax"`
}

type ElectricalDiff struct {
	Field   string   `json:"field"`
	Source  *float64 `json:"source"`
	Target  *float64 `json:"target"`
	Diff    *float64 `json:"diff"`
	Percent *float64 `json:"percent"`
}

type DimensionDiff struct {
	Field  string   `json:"field"`
	Source *float64 `json:"source"`
	Target *float64 `json:"target"`
	Diff   *float64 `json:"diff"`
}

// ComparisonResult keeps field order: reports iterate it positionally.
type ComparisonResult struct {
	Source     MotorRecord      `json:"source"`
	Target     MotorRecord      `json:"target"`
	Electrical []ElectricalDiff `json:"electrical"`
	Dimensions []DimensionDiff  `json:"dimensions"`
}

// ElectricalField returns the diff for key (e.g. "mo").
func (r ComparisonResult) ElectricalField(key string) (ElectricalDiff, bool) {
	for _, d := range r.Electrical {
		if d.Field == key {
			return d, true
		}
	}
	return ElectricalDiff{}, false
}

func (r ComparisonResult) DimensionField(key string) (DimensionDiff, bool) {
	for _, d := range r.Dimensions {
		if d.Field == key {
			return d, true
		}
	}
	return DimensionDiff{}, false
}

// Equivalent: кандидат на замену с расстоянием по моменту удержания.
type Equivalent struct {
	Record   MotorRecord `json:"record"`
	Distance float64     `json:"distance"` // |Mo(target) - Mo(source)|
	Relative float64     `json:"relative"` // Distance / Mo(source)
}

type Suggestion struct {
	Model string  `json:"model"`
	Score float64 `json:"score"`
}

// Float is a helper for literals: model.Float(11.9).
func Float(v float64) *float64 { return &v }

func String(v string) *string { return &v }
