package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var rxNumber = regexp.MustCompile(`-?\d+(?:\.\d+)?(?:[eE][-+]?\d+)?`)

// Пустые ячейки и прочерки в каталогах означают "не указано"
var nullMarks = map[string]struct{}{
	"": {}, "-": {}, "–": {}, "—": {}, "n/a": {}, "na": {}, "null": {}, "?": {},
}

// ParseDecimal парсит "11,9", "1 200", "1 200,5 rpm", "0.74 kgcm²".
// nil: значение не указано; ноль остаётся нулём.
func ParseDecimal(s string) *float64 {
	s = strings.TrimSpace(s)
	if _, ok := nullMarks[strings.ToLower(s)]; ok {
		return nil
	}
	// разделители групп: пробел, NBSP, узкий NBSP
	s = strings.NewReplacer(" ", "", "\u00A0", "", "\u202F", "", "\u2009", "").Replace(s)
	s = decimalComma(s)
	m := rxNumber.FindString(s)
	if m == "" {
		return nil
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// "1.234,5" → "1234.5", "11,9" → "11.9", "1,234.5" → "1234.5".
func decimalComma(s string) string {
	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")
	switch {
	case hasDot && hasComma:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			return strings.ReplaceAll(s, ",", ".")
		}
		return strings.ReplaceAll(s, ",", "")
	case hasComma:
		return strings.ReplaceAll(s, ",", ".")
	default:
		return s
	}
}
