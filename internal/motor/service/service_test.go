package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"motor-match/internal/catalog"
	"motor-match/internal/motor/model"
)

func rec(name string, mo, rpm *float64) model.MotorRecord {
	return model.MotorRecord{Model: name, Mo: mo, Rpm: rpm}
}

func f(v float64) *float64 { return model.Float(v) }

func mustCatalog(t *testing.T, source, target []model.MotorRecord) *model.Catalog {
	t.Helper()
	c, err := model.NewCatalog(source, target)
	require.NoError(t, err)
	return c
}

func sample(t *testing.T) *model.Catalog {
	t.Helper()
	c, err := catalog.Sample()
	require.NoError(t, err)
	return c
}

func models(recs []model.MotorRecord) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Model)
	}
	return out
}
