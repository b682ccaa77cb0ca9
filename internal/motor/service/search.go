package service

import (
	"sort"
	"strings"

	"motor-match/internal/motor/model"
)

const (
	MinQueryLen    = 3  // короче: слишком неоднозначно
	keyProbeLen    = 10 // запрос длиннее ключа (полный текст шильдика)
	prefixBoostLen = 8  // совпадение начала поднимает кандидата вверх
)

// SearchSource finds source-series records matching query.
func SearchSource(c *model.Catalog, query string) []model.MotorRecord {
	if c == nil {
		return []model.MotorRecord{}
	}
	return Search(c.Source, query)
}

func SearchTarget(c *model.Catalog, query string) []model.MotorRecord {
	if c == nil {
		return []model.MotorRecord{}
	}
	return Search(c.Target, query)
}

type searchHit struct {
	rec     model.MotorRecord
	boosted bool
}

// Search: нечёткий поиск по одной серии. Не падает: нет совпадений → пустой срез.
func Search(s *model.Series, query string) []model.MotorRecord {
	out := []model.MotorRecord{}
	if len([]rune(strings.TrimSpace(query))) < MinQueryLen {
		return out
	}
	nq := NormalizeModel(query)
	if nq == "" {
		return out
	}
	head := prefix(nq, prefixBoostLen)

	var hits []searchHit
	for _, r := range s.Records() {
		nk := NormalizeModel(r.Model)
		if nk == "" {
			continue
		}
		if !strings.Contains(nk, nq) && !strings.Contains(nq, prefix(nk, keyProbeLen)) {
			continue
		}
		hits = append(hits, searchHit{rec: r, boosted: strings.HasPrefix(nk, head)})
	}

	sort.SliceStable(hits, func(i, j int) bool { return lessHit(hits[i], hits[j]) })

	for _, h := range hits {
		out = append(out, h.rec)
	}
	return out
}

// boosted first, then original model ascending
func lessHit(a, b searchHit) bool {
	if a.boosted != b.boosted {
		return a.boosted
	}
	return a.rec.Model < b.rec.Model
}
