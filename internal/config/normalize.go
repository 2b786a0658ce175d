package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeInput()
	c.normalizeScan()
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) normalizePaths() error {
	c.Paths.CorpusDir = envFallback(c.Paths.CorpusDir, defaultCorpusDir, envCorpusDir)
	c.Paths.OutputDir = envFallback(c.Paths.OutputDir, defaultOutputDir, envOutputDir)

	var err error
	if c.Paths.CorpusDir, err = expandPath(c.Paths.CorpusDir); err != nil {
		return fmt.Errorf("paths.corpus_dir: %w", err)
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeInput() {
	c.Input.Encoding = strings.ToLower(strings.TrimSpace(c.Input.Encoding))
	if c.Input.Encoding == "" {
		c.Input.Encoding = defaultEncoding
	}
}

func (c *Config) normalizeScan() {
	if len(c.Scan.Languages) > 0 {
		langs := make([]string, 0, len(c.Scan.Languages))
		seen := make(map[string]struct{}, len(c.Scan.Languages))
		for _, lang := range c.Scan.Languages {
			name := strings.TrimSpace(lang)
			if name == "" {
				continue
			}
			if _, exists := seen[name]; exists {
				continue
			}
			seen[name] = struct{}{}
			langs = append(langs, name)
		}
		c.Scan.Languages = langs
	}
	if c.Scan.Workers == 0 {
		c.Scan.Workers = defaultScanWorkers
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if value, ok := os.LookupEnv(envLogLevel); ok && strings.TrimSpace(value) != "" && c.Logging.Level == defaultLogLevel {
		c.Logging.Level = strings.ToLower(strings.TrimSpace(value))
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.Dir) != "" {
		dir, err := expandPath(strings.TrimSpace(c.Logging.Dir))
		if err != nil {
			return fmt.Errorf("logging.dir: %w", err)
		}
		c.Logging.Dir = dir
	}
	return nil
}

// envFallback returns the environment value for key when current is empty or
// still at its default.
func envFallback(current, fallback, key string) string {
	current = strings.TrimSpace(current)
	if current != "" && current != fallback {
		return current
	}
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	if current == "" {
		return fallback
	}
	return current
}
