package cli

import (
	"errors"
	"fmt"
	"strings"

	"motor-match/internal/motor/model"
	"motor-match/internal/motor/service"
)

var (
	ErrModelNotFound  = errors.New("model not found")
	ErrAmbiguousModel = errors.New("ambiguous model")
)

// resolve: точное имя, иначе единственный результат поиска, иначе
// единственный с той же нормализованной формой.
func resolve(s *model.Series, name string) (model.MotorRecord, error) {
	if r, ok := s.Get(name); ok {
		return r, nil
	}
	hits := service.Search(s, name)
	switch len(hits) {
	case 0:
		return model.MotorRecord{}, fmt.Errorf("%s %q: %w", s.Name(), name, ErrModelNotFound)
	case 1:
		return hits[0], nil
	}

	norm := service.NormalizeModel(name)
	var same []model.MotorRecord
	for _, h := range hits {
		if service.NormalizeModel(h.Model) == norm {
			same = append(same, h)
		}
	}
	if len(same) == 1 {
		return same[0], nil
	}

	names := make([]string, 0, len(hits))
	for _, h := range hits {
		names = append(names, h.Model)
	}
	return model.MotorRecord{}, fmt.Errorf("%s %q matches %s: %w",
		s.Name(), name, strings.Join(names, ", "), ErrAmbiguousModel)
}
