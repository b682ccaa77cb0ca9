package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 0.25, cfg.Tolerance)
	assert.Equal(t, 0.6, cfg.SuggestThreshold)
	assert.Equal(t, 5, cfg.SuggestLimit)
	assert.Empty(t, cfg.Catalog)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "motor-match.yaml")
	content := `log_level: debug
catalog: "/data/catalog.json"
tolerance: 0.2
suggest_limit: 3`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("SUGGEST_LIMIT", "7")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/data/catalog.json", cfg.Catalog)
	assert.Equal(t, 0.2, cfg.Tolerance)
	// env сильнее файла
	assert.Equal(t, 7, cfg.SuggestLimit)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidTolerance(t *testing.T) {
	t.Setenv("TOLERANCE", "1.5")

	_, err := Load("")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSetupLogger_Level(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	_ = SetupLogger(Config{LogLevel: "warn"})
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	_ = SetupLogger(Config{LogLevel: "bogus"})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestSetupLogger_WritesFile(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)
	path := filepath.Join(t.TempDir(), "logs", "mm.log")

	logger := SetupLogger(Config{LogLevel: "info", LogFile: path})
	logger.Info().Str("k", "v").Msg("hello")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"message":"hello"`)
}
