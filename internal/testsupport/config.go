package testsupport

import (
	"path/filepath"
	"testing"

	"corpstat/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The corpus directory is not created; use WriteCorpus to populate it.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.CorpusDir = filepath.Join(base, "corpus")
	cfgVal.Paths.OutputDir = filepath.Join(base, "results")
	cfgVal.Scan.Workers = 2

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

// WithLanguages restricts the scan to the named languages.
func WithLanguages(names ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Scan.Languages = append([]string(nil), names...)
	}
}

// WithPerLanguage enables per-language report sets.
func WithPerLanguage() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Scan.PerLanguage = true
	}
}

// WithEncoding sets the corpus encoding label.
func WithEncoding(label string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Input.Encoding = label
	}
}

// WithLogDir enables file logging below the config's temp directory.
func WithLogDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Dir = filepath.Join(b.baseDir, "logs")
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.CorpusDir)
}
