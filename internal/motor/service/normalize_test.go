package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeModel(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"uppercase and spaces", "fxm 53.12a", "FXM53.12A"},
		{"tabs and nbsp", "FXM\t53.12A ", "FXM53.12A"},
		{"dot runs", "FXM 53..12A...X", "FXM53.12A.X"},
		{"x run", "FXM 53.12A.xxx", "FXM53.12A.XX"},
		{"single x kept", "FXM 53.12A.xx.x00", "FXM53.12A.XX.X00"},
		{"encoder wildcard", "FXM 53.12A.E1", "FXM53.12A.XX"},
		{"multi digit encoder", "FXM 53.12A.E12.000", "FXM53.12A.XX.00"},
		{"revision suffix", "FKM 43.20A.E3.100", "FKM43.20A.XX.00"},
		{"four digits not a revision", "FKM 43.20A.1234", "FKM43.20A.1234"},
		{"revision only at end", "FKM 43.200A", "FKM43.200A"},
		{"empty", "", ""},
		{"only spaces", "   ", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, NormalizeModel(c.in))
		})
	}
}

func TestNormalizeModel_EncoderVariantsCollide(t *testing.T) {
	assert.Equal(t, NormalizeModel("FXM 54.20A.E1.000"), NormalizeModel("FXM 54.20A.E3.000"))
	assert.Equal(t, NormalizeModel("FXM 54.20A.E1.000"), NormalizeModel("fxm54.20a.xx.100"))
}

func TestNormalizeModel_Idempotent(t *testing.T) {
	inputs := []string{
		"FXM 53.12A.xx.x00",
		"FKM 43.20A.E1.000",
		"fxm 31..20a.XE1",
		"XXE1E2",
		"a.E1234",
		"FXM 54.20A.E1.000 S/N 001",
		"мотор fkm 22",
		"  ",
	}
	for _, in := range inputs {
		once := NormalizeModel(in)
		assert.Equal(t, once, NormalizeModel(once), "input %q", in)
	}
}
