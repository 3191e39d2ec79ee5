package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeSource(); err != nil {
		return err
	}
	c.normalizeQuery()
	return c.normalizeLogging()
}

func (c *Config) normalizeSource() error {
	var err error
	if strings.TrimSpace(c.Source.Path) == "" {
		c.Source.Path = defaultSourcePath
	}
	if c.Source.Path, err = expandPath(strings.TrimSpace(c.Source.Path)); err != nil {
		return fmt.Errorf("source.path: %w", err)
	}
	c.Source.Format = strings.ToLower(strings.TrimSpace(c.Source.Format))
	if c.Source.Format == "" {
		c.Source.Format = inferFormat(c.Source.Path)
	}
	c.Source.Table = strings.TrimSpace(c.Source.Table)
	if c.Source.Table == "" {
		c.Source.Table = defaultSourceTable
	}
	if c.Source.Delimiter == "" {
		c.Source.Delimiter = defaultDelimiter
	}
	if c.Source.ListSeparator == "" {
		c.Source.ListSeparator = defaultListSeparator
	}
	if c.Source.LockTimeoutMs <= 0 {
		c.Source.LockTimeoutMs = defaultLockTimeoutMs
	}
	if c.Catalog.WatchDebounceMs <= 0 {
		c.Catalog.WatchDebounceMs = defaultWatchDebounceMs
	}
	return nil
}

func inferFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return "sqlite"
	default:
		return "csv"
	}
}

func (c *Config) normalizeQuery() {
	if c.Query.MaxGenres <= 0 {
		c.Query.MaxGenres = defaultMaxGenres
	}
	if c.Query.TopN <= 0 {
		c.Query.TopN = defaultTopN
	}
	if c.Query.CountryOptions <= 0 {
		c.Query.CountryOptions = defaultCountryOptions
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.Dir) == "" {
		c.Logging.Dir = ""
		return nil
	}
	var err error
	if c.Logging.Dir, err = expandPath(c.Logging.Dir); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}
