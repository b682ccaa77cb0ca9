package catalog

import (
	"regexp"
	"strings"

	"motor-match/internal/motor/model"
	"motor-match/internal/utils"
)

const (
	colSeries = "series"
	colModel  = "model"
	colDrive  = "drive"
)

// Алиасы заголовков, уже в нормализованном виде (см. normHeaderKey).
var columnAliases = map[string][]string{
	colSeries:        {"series", "family", "серия"},
	colModel:         {"model", "motor", "motor model", "модель"},
	colDrive:         {"recommended drive", "recommendeddrive", "drive", "привод"},
	"mo":             {"mo", "m0", "stall torque", "момент удержания"},
	"mn":             {"mn", "rated torque", "nominal torque", "номинальный момент"},
	"mmax":           {"mmax", "m max", "peak torque", "пиковый момент"},
	"io":             {"io", "i0", "stall current", "ток удержания"},
	"rpm":            {"rpm", "nn", "rated speed", "speed", "скорость"},
	"inertia":        {"inertia", "j", "момент инерции"},
	"power":          {"power", "p", "calculated power", "мощность"},
	"length":         {"length", "l", "длина"},
	"housingWidth":   {"housing width", "housingwidth", "width", "габарит"},
	"shaftDiameter":  {"shaft diameter", "shaftdiameter", "d shaft", "диаметр вала"},
	"flangeDiameter": {"flange diameter", "flangediameter", "d flange", "диаметр фланца"},
	"shaftHeight":    {"shaft height", "shaftheight", "shaft length", "вылет вала"},
	"mountingLength": {"mounting length", "mountinglength", "посадочная длина"},
}

var rxHeaderJunk = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// нижний регистр, ё→е, служебные символы → пробел, пробелы схлопнуты
func normHeaderKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "ё", "е")
	s = rxHeaderJunk.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// aliasScore: точное совпадение сильнее любого частичного; частичное:
// алиас как целая последовательность слов ("stall torque mo nm" ⊃ "mo").
func aliasScore(header, alias string) int {
	if header == alias {
		return 1000
	}
	if strings.Contains(" "+header+" ", " "+alias+" ") {
		return len(alias)
	}
	return 0
}

// resolveColumns maps each field to a header. Every header goes to the field
// whose alias fits it best, so "Mounting length" is not taken by "length".
func resolveColumns(headers []string) map[string]string {
	out := make(map[string]string, len(columnAliases))
	for _, h := range headers {
		nh := normHeaderKey(h)
		bestField, bestScore := "", 0
		for field, aliases := range columnAliases {
			for _, a := range aliases {
				s := aliasScore(nh, a)
				if s > bestScore || (s == bestScore && s > 0 && field < bestField) {
					bestField, bestScore = field, s
				}
			}
		}
		if bestField != "" && out[bestField] == "" {
			out[bestField] = h
		}
	}
	return out
}

func rowToRecord(row map[string]string, cols map[string]string) model.MotorRecord {
	num := func(field string) *float64 {
		if h := cols[field]; h != "" {
			return utils.ParseDecimal(row[h])
		}
		return nil
	}
	rec := model.MotorRecord{
		Model:   strings.TrimSpace(row[cols[colModel]]),
		Mo:      num("mo"),
		Mn:      num("mn"),
		Mmax:    num("mmax"),
		Io:      num("io"),
		Rpm:     num("rpm"),
		Inertia: num("inertia"),
		Power:   num("power"),
		Dimensions: model.Dimensions{
			Length:         num("length"),
			HousingWidth:   num("housingWidth"),
			ShaftDiameter:  num("shaftDiameter"),
			FlangeDiameter: num("flangeDiameter"),
			ShaftHeight:    num("shaftHeight"),
			MountingLength: num("mountingLength"),
		},
	}
	if h := cols[colDrive]; h != "" {
		if d := strings.TrimSpace(row[h]); d != "" {
			rec.RecommendedDrive = &d
		}
	}
	return rec
}
