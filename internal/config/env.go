package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// envOverrides lists the environment variables that take precedence over the
// config file. Empty values leave the file setting untouched.
type envOverrides struct {
	SourcePath   string `env:"MARQUEE_SOURCE_PATH"`
	SourceFormat string `env:"MARQUEE_SOURCE_FORMAT"`
	SourceTable  string `env:"MARQUEE_SOURCE_TABLE"`
	LogLevel     string `env:"MARQUEE_LOG_LEVEL"`
	LogFormat    string `env:"MARQUEE_LOG_FORMAT"`
	LogDir       string `env:"MARQUEE_LOG_DIR"`
}

func (c *Config) applyEnv() error {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	setIfPresent(&c.Source.Path, overrides.SourcePath)
	setIfPresent(&c.Source.Format, overrides.SourceFormat)
	setIfPresent(&c.Source.Table, overrides.SourceTable)
	setIfPresent(&c.Logging.Level, overrides.LogLevel)
	setIfPresent(&c.Logging.Format, overrides.LogFormat)
	setIfPresent(&c.Logging.Dir, overrides.LogDir)
	return nil
}

func setIfPresent(dst *string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*dst = value
	}
}
