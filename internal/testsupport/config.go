package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"marquee/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose source points at a fresh copy of
// CatalogCSV inside a per-test temp directory. Logging is limited to errors.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Source.Path = filepath.Join(base, "titles.csv")
	cfgVal.Source.Format = "csv"
	cfgVal.Logging.Level = "error"
	WriteFile(t, cfgVal.Source.Path, CatalogCSV)

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithSourceContent replaces the dataset written by NewConfig.
func WithSourceContent(content string) ConfigOption {
	return func(b *configBuilder) {
		WriteFile(b.t, b.cfg.Source.Path, content)
	}
}

// WithLogDir enables file logging inside the test directory.
func WithLogDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Dir = filepath.Join(b.baseDir, "logs")
	}
}

// BaseDir returns the temp directory holding the config's source dataset.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Source.Path)
}

// WriteConfig encodes cfg as TOML next to its source dataset and returns the
// file path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	path := filepath.Join(BaseDir(cfg), "marquee.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
