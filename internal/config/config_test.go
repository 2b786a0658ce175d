package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"corpstat/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("CORPSTAT_CORPUS_DIR", "")
	t.Setenv("CORPSTAT_OUTPUT_DIR", "")
	t.Setenv("CORPSTAT_LOG_LEVEL", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantCorpus, _ := filepath.Abs("corpus")
	if cfg.Paths.CorpusDir != wantCorpus {
		t.Fatalf("unexpected corpus dir: got %q want %q", cfg.Paths.CorpusDir, wantCorpus)
	}
	wantOutput, _ := filepath.Abs("results")
	if cfg.Paths.OutputDir != wantOutput {
		t.Fatalf("unexpected output dir: got %q want %q", cfg.Paths.OutputDir, wantOutput)
	}
	if cfg.Input.Encoding != "utf-8" {
		t.Fatalf("unexpected encoding: %q", cfg.Input.Encoding)
	}
	if cfg.Scan.Workers != config.Default().Scan.Workers {
		t.Fatalf("unexpected workers: %d", cfg.Scan.Workers)
	}
	if cfg.Scan.PerLanguage {
		t.Fatal("expected per-language mode disabled by default")
	}
	if len(cfg.Scan.Languages) != 0 {
		t.Fatalf("expected no language filter, got %v", cfg.Scan.Languages)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.LogFilePath() != "" {
		t.Fatalf("expected no log file by default, got %q", cfg.LogFilePath())
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "corpstat.toml")

	type payload struct {
		Paths struct {
			CorpusDir string `toml:"corpus_dir"`
			OutputDir string `toml:"output_dir"`
		} `toml:"paths"`
		Input struct {
			Encoding string `toml:"encoding"`
		} `toml:"input"`
		Scan struct {
			Languages   []string `toml:"languages"`
			PerLanguage bool     `toml:"per_language"`
			Workers     int      `toml:"workers"`
		} `toml:"scan"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
			Dir    string `toml:"dir"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.CorpusDir = filepath.Join(tempDir, "texts")
	custom.Paths.OutputDir = filepath.Join(tempDir, "out")
	custom.Input.Encoding = " Latin1 "
	custom.Scan.Languages = []string{"javascript", " go ", "javascript", ""}
	custom.Scan.PerLanguage = true
	custom.Scan.Workers = 2
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "Debug"
	custom.Logging.Dir = filepath.Join(tempDir, "logs")
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Paths.CorpusDir != custom.Paths.CorpusDir {
		t.Fatalf("expected corpus dir from file, got %q", cfg.Paths.CorpusDir)
	}
	if cfg.Input.Encoding != "latin1" {
		t.Fatalf("expected normalized encoding label, got %q", cfg.Input.Encoding)
	}
	if strings.Join(cfg.Scan.Languages, ",") != "javascript,go" {
		t.Fatalf("expected trimmed, deduplicated languages, got %v", cfg.Scan.Languages)
	}
	if !cfg.Scan.PerLanguage || cfg.Scan.Workers != 2 {
		t.Fatalf("unexpected scan settings: %+v", cfg.Scan)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected lowercased logging settings, got %+v", cfg.Logging)
	}
	if want := filepath.Join(tempDir, "logs", "corpstat.log"); cfg.LogFilePath() != want {
		t.Fatalf("unexpected log file path: got %q want %q", cfg.LogFilePath(), want)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.OutputDir, cfg.Logging.Dir} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
	}
	if _, err := os.Stat(cfg.Paths.CorpusDir); !os.IsNotExist(err) {
		t.Fatalf("corpus dir must not be created, stat err = %v", err)
	}
}

func TestEnvVarsReplaceDefaultPaths(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	corpusDir := filepath.Join(tempDir, "corpus-from-env")
	outputDir := filepath.Join(tempDir, "results-from-env")
	t.Setenv("CORPSTAT_CORPUS_DIR", corpusDir)
	t.Setenv("CORPSTAT_OUTPUT_DIR", outputDir)
	t.Setenv("CORPSTAT_LOG_LEVEL", "warn")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.CorpusDir != corpusDir {
		t.Fatalf("expected corpus dir from env, got %q", cfg.Paths.CorpusDir)
	}
	if cfg.Paths.OutputDir != outputDir {
		t.Fatalf("expected output dir from env, got %q", cfg.Paths.OutputDir)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected log level from env, got %q", cfg.Logging.Level)
	}
}

func TestConfigFileWinsOverEnvVars(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "corpstat.toml")
	fileCorpus := filepath.Join(tempDir, "file-corpus")
	content := "[paths]\ncorpus_dir = \"" + filepath.ToSlash(fileCorpus) + "\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CORPSTAT_CORPUS_DIR", filepath.Join(tempDir, "env-corpus"))

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.CorpusDir != fileCorpus {
		t.Fatalf("expected corpus dir from file, got %q", cfg.Paths.CorpusDir)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Chdir(tempDir)
	outputDir := filepath.Join(tempDir, "dotenv-results")
	// Registers cleanup for the variable godotenv is about to set.
	t.Setenv("CORPSTAT_OUTPUT_DIR", "")
	if err := os.Unsetenv("CORPSTAT_OUTPUT_DIR"); err != nil {
		t.Fatalf("unsetenv: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tempDir, ".env"), []byte("CORPSTAT_OUTPUT_DIR="+outputDir+"\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.OutputDir != outputDir {
		t.Fatalf("expected output dir from .env, got %q", cfg.Paths.OutputDir)
	}
}

func TestLoadRejectsMalformedConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(configPath, []byte("[paths\ncorpus_dir ="), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, _, err := config.Load(configPath)
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "CORPSTAT_CORPUS_DIR") {
		t.Fatalf("sample config missing env documentation: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Paths.CorpusDir != "./corpus" || cfg.Scan.Workers != 4 {
		t.Fatalf("sample does not match defaults: %+v", cfg)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"empty corpus", func(c *config.Config) { c.Paths.CorpusDir = "" }, "paths.corpus_dir"},
		{"empty output", func(c *config.Config) { c.Paths.OutputDir = " " }, "paths.output_dir"},
		{"same dirs", func(c *config.Config) { c.Paths.OutputDir = c.Paths.CorpusDir }, "must differ"},
		{"unknown encoding", func(c *config.Config) { c.Input.Encoding = "klingon-8" }, "input.encoding"},
		{"zero workers", func(c *config.Config) { c.Scan.Workers = 0 }, "scan.workers"},
		{"negative workers", func(c *config.Config) { c.Scan.Workers = -3 }, "scan.workers"},
		{"nested language", func(c *config.Config) { c.Scan.Languages = []string{"a/b"} }, "scan.languages"},
		{"log format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"log level", func(c *config.Config) { c.Logging.Level = "trace" }, "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestExpandPathHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/corpus")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "corpus") {
		t.Fatalf("ExpandPath = %q", got)
	}
}
