package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Source describes the tabular dataset the catalog is built from.
type Source struct {
	Path          string `toml:"path"`
	Format        string `toml:"format"`         // "csv", "sqlite", or empty to infer from the extension
	Table         string `toml:"table"`          // SQLite table holding the catalog rows
	Delimiter     string `toml:"delimiter"`      // CSV field delimiter
	ListSeparator string `toml:"list_separator"` // separator inside country/genre cells
	LockTimeoutMs int    `toml:"lock_timeout_ms"`
}

// Catalog contains catalog build and refresh settings.
type Catalog struct {
	WatchDebounceMs int `toml:"watch_debounce_ms"`
}

// Query contains limits applied by query callers.
type Query struct {
	MaxGenres      int `toml:"max_genres"`
	TopN           int `toml:"top_n"`
	CountryOptions int `toml:"country_options"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	Dir    string `toml:"dir"`
}

// Config encapsulates all configuration values for marquee.
//
// Configuration sections by subsystem:
//   - Source: dataset location and reader settings
//   - Catalog: rebuild and watch behaviour
//   - Query: caller-side query limits and ranking sizes
//   - Logging: log format, level, and optional log directory
type Config struct {
	Source  Source  `toml:"source"`
	Catalog Catalog `toml:"catalog"`
	Query   Query   `toml:"query"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("marquee.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the log directory when one is configured.
func (c *Config) EnsureDirectories() error {
	if strings.TrimSpace(c.Logging.Dir) == "" {
		return nil
	}
	if err := os.MkdirAll(c.Logging.Dir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", c.Logging.Dir, err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// OverrideSource points the config at a different dataset, re-inferring the
// format from the new path.
func (c *Config) OverrideSource(path string) error {
	c.Source.Path = path
	c.Source.Format = ""
	if err := c.normalizeSource(); err != nil {
		return err
	}
	return c.validateSource()
}

// LockTimeout returns the dataset read lock timeout.
func (c *Config) LockTimeout() time.Duration {
	return time.Duration(c.Source.LockTimeoutMs) * time.Millisecond
}

// WatchDebounce returns the settle delay for source change events.
func (c *Config) WatchDebounce() time.Duration {
	return time.Duration(c.Catalog.WatchDebounceMs) * time.Millisecond
}
