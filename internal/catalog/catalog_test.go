package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"

	"motor-match/internal/fileio"
	"motor-match/internal/motor/model"
)

func testLogger(t *testing.T) zerolog.Logger {
	return zerolog.New(zerolog.NewTestWriter(t))
}

func TestSample_LoadsBothSeries(t *testing.T) {
	c, err := Sample()
	require.NoError(t, err)

	assert.Equal(t, 6, c.Source.Len())
	assert.Equal(t, 10, c.Target.Len())
	assert.Empty(t, c.History)

	r, ok := c.Source.Get("FXM 53.12A.xx.x00")
	require.True(t, ok)
	require.NotNil(t, r.Mo)
	assert.Equal(t, 11.9, *r.Mo)
	assert.Equal(t, 1200.0, *r.Rpm)

	// null в JSON остаётся nil, а не нулём
	r, ok = c.Source.Get("FXM 74.20A.E1.000")
	require.True(t, ok)
	assert.Nil(t, r.Inertia)
	assert.Nil(t, r.RecommendedDrive)
}

func TestSample_RecordsSortedByKey(t *testing.T) {
	c, err := Sample()
	require.NoError(t, err)

	recs := c.Target.Records()
	for i := 1; i < len(recs); i++ {
		assert.Less(t, recs[i-1].Model, recs[i].Model)
	}
}

func TestDecodeJSON_MissingFieldsAreNull(t *testing.T) {
	doc := `{"source": {"FXM 1": {"model": "FXM 1", "mo": 0}}, "target": {"FKM 1": {}}}`

	c, err := DecodeJSON(strings.NewReader(doc))
	require.NoError(t, err)

	src, _ := c.Source.Get("FXM 1")
	require.NotNil(t, src.Mo)
	assert.Equal(t, 0.0, *src.Mo)
	assert.Nil(t, src.Rpm)
	assert.Nil(t, src.Dimensions.Length)

	// пустая модель берётся из ключа
	tgt, ok := c.Target.Get("FKM 1")
	require.True(t, ok)
	assert.Equal(t, "FKM 1", tgt.Model)
}

func TestDecodeJSON_KeyMismatch(t *testing.T) {
	doc := `{"source": {"FXM 1": {"model": "FXM 2"}}, "target": {}}`

	_, err := DecodeJSON(strings.NewReader(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrKeyMismatch)
}

func TestDecodeJSON_SeriesOverlap(t *testing.T) {
	doc := `{"source": {"M 1": {}}, "target": {"M 1": {}}}`

	_, err := DecodeJSON(strings.NewReader(doc))
	assert.ErrorIs(t, err, model.ErrSeriesOverlap)
}

func TestDecodeJSON_Malformed(t *testing.T) {
	_, err := DecodeJSON(strings.NewReader(`{"source": [`))
	assert.Error(t, err)
}

func TestLoad_CSVWithSemicolonsAndDecimalComma(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "motors.csv")
	content := "Series;Model;Stall torque Mo (Nm);Speed (rpm);Length;Mounting length;Drive\n" +
		"FXM;FXM 54.20A.E1.000;14,7;2000;282;130;AXD 2.50\n" +
		";FKM 62.20A.E1.000;14,5;2 000;245;-;\n" +
		";;;;;;\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := Load(path, testLogger(t))
	require.NoError(t, err)
	require.Equal(t, 1, c.Source.Len())
	require.Equal(t, 1, c.Target.Len())

	src, _ := c.Source.Get("FXM 54.20A.E1.000")
	assert.InDelta(t, 14.7, *src.Mo, 1e-9)
	assert.Equal(t, 2000.0, *src.Rpm)
	assert.Equal(t, 282.0, *src.Dimensions.Length)
	assert.Equal(t, 130.0, *src.Dimensions.MountingLength)
	require.NotNil(t, src.RecommendedDrive)
	assert.Equal(t, "AXD 2.50", *src.RecommendedDrive)

	tgt, _ := c.Target.Get("FKM 62.20A.E1.000")
	assert.Equal(t, 2000.0, *tgt.Rpm)
	assert.Nil(t, tgt.Dimensions.MountingLength)
	assert.Nil(t, tgt.RecommendedDrive)
}

func TestLoad_XLSX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "motors.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"Model", "Mo", "Rpm", "Housing width"},
		{"FXM 31.20A.E1.000", 1.6, 2000, 75},
		{"FKM 22.20A.E1.000", 1.7, 2000, 70},
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	c, err := Load(path, testLogger(t))
	require.NoError(t, err)

	src, ok := c.Source.Get("FXM 31.20A.E1.000")
	require.True(t, ok)
	assert.InDelta(t, 1.6, *src.Mo, 1e-9)
	assert.Equal(t, 75.0, *src.Dimensions.HousingWidth)

	_, ok = c.Target.Get("FKM 22.20A.E1.000")
	assert.True(t, ok)
}

func TestLoad_UnknownSeries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "motors.csv")
	require.NoError(t, os.WriteFile(path, []byte("model,mo\nABC 1,2\n"), 0o644))

	_, err := Load(path, testLogger(t))
	assert.ErrorIs(t, err, ErrUnknownSeries)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "motors.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := Load(path, testLogger(t))
	assert.ErrorIs(t, err, fileio.ErrUnsupportedFormat)
}

func TestResolveColumns(t *testing.T) {
	cols := resolveColumns([]string{
		"Motor model", "Length, mm", "Mounting length", "Stall torque Mo", "Rated torque Mn", "Peak torque", "Ø shaft diameter",
	})

	assert.Equal(t, "Motor model", cols[colModel])
	assert.Equal(t, "Length, mm", cols["length"])
	assert.Equal(t, "Mounting length", cols["mountingLength"])
	assert.Equal(t, "Stall torque Mo", cols["mo"])
	assert.Equal(t, "Rated torque Mn", cols["mn"])
	assert.Equal(t, "Peak torque", cols["mmax"])
	assert.Equal(t, "Ø shaft diameter", cols["shaftDiameter"])
}
