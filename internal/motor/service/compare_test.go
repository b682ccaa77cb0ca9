package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motor-match/internal/motor/model"
)

func TestCompare_FieldOrder(t *testing.T) {
	res := Compare(model.MotorRecord{}, model.MotorRecord{})

	var el, dim []string
	for _, d := range res.Electrical {
		el = append(el, d.Field)
	}
	for _, d := range res.Dimensions {
		dim = append(dim, d.Field)
	}
	assert.Equal(t, []string{"mo", "mn", "mmax", "io", "rpm", "inertia", "power"}, el)
	assert.Equal(t, []string{"length", "housingWidth", "shaftDiameter", "flangeDiameter", "shaftHeight", "mountingLength"}, dim)
}

func TestCompare_DiffAndPercent(t *testing.T) {
	src := model.MotorRecord{Model: "S", Mo: f(10), Rpm: f(2000), Dimensions: model.Dimensions{Length: f(250)}}
	tgt := model.MotorRecord{Model: "T", Mo: f(12), Rpm: f(2000), Dimensions: model.Dimensions{Length: f(230)}}

	res := Compare(src, tgt)
	assert.Equal(t, "S", res.Source.Model)
	assert.Equal(t, "T", res.Target.Model)

	mo, ok := res.ElectricalField("mo")
	require.True(t, ok)
	require.NotNil(t, mo.Diff)
	require.NotNil(t, mo.Percent)
	assert.InDelta(t, 2.0, *mo.Diff, 1e-9)
	assert.InDelta(t, 20.0, *mo.Percent, 1e-9)

	rpm, _ := res.ElectricalField("rpm")
	assert.Equal(t, 0.0, *rpm.Diff)
	assert.Equal(t, 0.0, *rpm.Percent)

	length, ok := res.DimensionField("length")
	require.True(t, ok)
	assert.InDelta(t, -20.0, *length.Diff, 1e-9)
}

func TestCompare_NullPropagates(t *testing.T) {
	src := model.MotorRecord{Mo: f(10), Inertia: nil, Dimensions: model.Dimensions{ShaftHeight: f(50)}}
	tgt := model.MotorRecord{Mo: nil, Inertia: f(3), Dimensions: model.Dimensions{ShaftHeight: nil}}

	res := Compare(src, tgt)
	for _, d := range res.Electrical {
		assert.Nil(t, d.Diff, d.Field)
		assert.Nil(t, d.Percent, d.Field)
	}
	for _, d := range res.Dimensions {
		assert.Nil(t, d.Diff, d.Field)
	}
	mo, _ := res.ElectricalField("mo")
	assert.Equal(t, 10.0, *mo.Source)
	assert.Nil(t, mo.Target)
}

func TestCompare_ZeroSourceHasNoPercent(t *testing.T) {
	res := Compare(model.MotorRecord{Io: f(0)}, model.MotorRecord{Io: f(4)})

	io, _ := res.ElectricalField("io")
	require.NotNil(t, io.Diff)
	assert.Equal(t, 4.0, *io.Diff)
	assert.Nil(t, io.Percent)
}

func TestCompare_Antisymmetric(t *testing.T) {
	c := sample(t)
	for _, a := range c.Source.Records() {
		for _, b := range c.Target.Records() {
			ab, ba := Compare(a, b), Compare(b, a)
			for i := range ab.Electrical {
				x, y := ab.Electrical[i].Diff, ba.Electrical[i].Diff
				if x != nil && y != nil {
					assert.Equal(t, *x, -*y, "%s/%s %s", a.Model, b.Model, ab.Electrical[i].Field)
				}
			}
			for i := range ab.Dimensions {
				x, y := ab.Dimensions[i].Diff, ba.Dimensions[i].Diff
				if x != nil && y != nil {
					assert.Equal(t, *x, -*y)
				}
			}
		}
	}
}

func TestComparisonResult_UnknownField(t *testing.T) {
	res := Compare(model.MotorRecord{}, model.MotorRecord{})
	_, ok := res.ElectricalField("voltage")
	assert.False(t, ok)
	_, ok = res.DimensionField("weight")
	assert.False(t, ok)
}
