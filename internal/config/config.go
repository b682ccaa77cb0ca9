package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	LogLevel         string  `mapstructure:"log_level"`
	LogFile          string  `mapstructure:"log_file"`
	Catalog          string  `mapstructure:"catalog"`           // пусто: встроенный демо-каталог
	Tolerance        float64 `mapstructure:"tolerance"`         // допуск по Mo
	SuggestThreshold float64 `mapstructure:"suggest_threshold"` // порог подсказок
	SuggestLimit     int     `mapstructure:"suggest_limit"`
	HistoryLimit     int     `mapstructure:"history_limit"`
}

func defaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "logs/motor-match.log")
	v.SetDefault("catalog", "")
	v.SetDefault("tolerance", 0.25)
	v.SetDefault("suggest_threshold", 0.6)
	v.SetDefault("suggest_limit", 5)
	v.SetDefault("history_limit", 50)
}

// Load: defaults → optional config file → environment (LOG_LEVEL, CATALOG, ...).
func Load(path string) (Config, error) {
	v := viper.New()
	defaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Tolerance <= 0 || c.Tolerance >= 1 {
		return fmt.Errorf("tolerance %v: %w", c.Tolerance, ErrInvalidConfig)
	}
	if c.SuggestThreshold < 0 || c.SuggestThreshold > 1 {
		return fmt.Errorf("suggest_threshold %v: %w", c.SuggestThreshold, ErrInvalidConfig)
	}
	return nil
}

var ErrInvalidConfig = errors.New("invalid config")
