package service

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Несколько точек подряд → одна
var reDots = regexp.MustCompile(`\.+`)

// Хвост-заполнитель "xx", "xxx", "XxX" → XX
var reXRun = regexp.MustCompile(`[xX]{2,}`)

// Код энкодера E1, E3, E12: для сравнения считаем wildcard
var reEncoder = regexp.MustCompile(`E\d+`)

// Ревизия/конфигурация в конце: ".100", ".200" → ".00"
var reRevision = regexp.MustCompile(`\.\d{3}$`)

// NormalizeModel canonicalizes a model string for fuzzy equality. Lossy, total.
//
// The pipeline is repeated until stable: rule 5 can emit a new X run
// ("XE1" → "XXX"), and a second pass folds it, so the result is idempotent.
func NormalizeModel(raw string) string {
	prev := ""
	out := normalizeOnce(raw)
	for out != prev {
		prev = out
		out = normalizeOnce(out)
	}
	return out
}

// === normalizeOnce: порядок шагов важен ===
func normalizeOnce(s string) string {
	if s == "" {
		return ""
	}
	// 1) Регистр
	out := cases.Upper(language.Und).String(s)

	// 2) Все пробельные символы (включая NBSP) убираем
	out = stripSpaces(out)

	// 3) ".." → "."
	out = reDots.ReplaceAllString(out, ".")

	// 4) xx.. → XX
	out = reXRun.ReplaceAllString(out, "XX")

	// 5) E<цифры> → XX
	out = reEncoder.ReplaceAllString(out, "XX")

	// 6) .NNN в конце → .00
	out = reRevision.ReplaceAllString(out, ".00")

	return out
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// prefix returns the first n runes of s (or all of s).
func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
