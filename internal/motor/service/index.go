package service

import (
	"sort"
	"strings"

	"motor-match/internal/motor/model"
)

// Index: триграммный индекс по нормализованным моделям одной серии.
// Строится один раз; каталог неизменен, так что индекс не устаревает.
type Index struct {
	byNorm map[string][]string            // normalized -> original models
	inv    map[string]map[string]struct{} // trigram -> set(normalized)
}

func BuildIndex(s *model.Series) *Index {
	idx := &Index{
		byNorm: make(map[string][]string),
		inv:    make(map[string]map[string]struct{}),
	}
	for _, r := range s.Records() {
		nn := NormalizeModel(r.Model)
		if nn == "" {
			continue
		}
		idx.byNorm[nn] = append(idx.byNorm[nn], r.Model)
		for g := range trigramSet(nn) {
			bucket, ok := idx.inv[g]
			if !ok {
				bucket = make(map[string]struct{})
				idx.inv[g] = bucket
			}
			bucket[nn] = struct{}{}
		}
	}
	return idx
}

func trigramSet(s string) map[string]struct{} {
	m := make(map[string]struct{})
	if s == "" {
		return m
	}
	r := []rune(" " + s + " ")
	for i := 0; i+3 <= len(r); i++ {
		m[string(r[i:i+3])] = struct{}{}
	}
	return m
}

// candidates returns normalized names sharing at least one trigram with norm, sorted.
func (idx *Index) candidates(norm string) []string {
	seen := make(map[string]struct{})
	for g := range trigramSet(norm) {
		for nn := range idx.inv[g] {
			seen[nn] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for nn := range seen {
		out = append(out, nn)
	}
	sort.Strings(out)
	return out
}

// Suggest proposes models whose normalized form is close to query. Best score
// first, ties by model ascending. Used when Search found nothing.
func (idx *Index) Suggest(query string, limit int, threshold float64) []model.Suggestion {
	out := []model.Suggestion{}
	if idx == nil || len([]rune(strings.TrimSpace(query))) < MinQueryLen {
		return out
	}
	nq := NormalizeModel(query)
	for _, nn := range idx.candidates(nq) {
		score := matchScore(nq, nn)
		if score < threshold {
			continue
		}
		for _, m := range idx.byNorm[nn] {
			out = append(out, model.Suggestion{Model: m, Score: score})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Model < out[j].Model
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// matchScore: лучшая из трёх оценок: целиком, шильдик длиннее ключа,
// ключ длиннее запроса (сравниваем равные по длине начала).
func matchScore(query, key string) float64 {
	ql, kl := len([]rune(query)), len([]rune(key))
	return max(
		similarity(query, key),
		similarity(prefix(query, kl), key),
		similarity(query, prefix(key, ql)),
	)
}
