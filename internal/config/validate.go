package config

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSource(); err != nil {
		return err
	}
	if err := c.validateQuery(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSource() error {
	switch c.Source.Format {
	case "csv", "sqlite":
	default:
		return fmt.Errorf("source.format must be csv or sqlite, got %q", c.Source.Format)
	}
	if utf8.RuneCountInString(c.Source.Delimiter) != 1 {
		return errors.New("source.delimiter must be a single character")
	}
	if c.Source.Delimiter == "\"" || c.Source.Delimiter == "\n" || c.Source.Delimiter == "\r" {
		return fmt.Errorf("source.delimiter %q is not allowed", c.Source.Delimiter)
	}
	return nil
}

func (c *Config) validateQuery() error {
	if c.Query.MaxGenres > 50 {
		return errors.New("query.max_genres must not exceed 50")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}

// Delimiter returns the CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.Source.Delimiter)
	return r
}
