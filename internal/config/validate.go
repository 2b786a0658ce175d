package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateInput(); err != nil {
		return err
	}
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.CorpusDir) == "" {
		return fmt.Errorf("paths.corpus_dir must be set (or export %s)", envCorpusDir)
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		return fmt.Errorf("paths.output_dir must be set (or export %s)", envOutputDir)
	}
	if c.Paths.CorpusDir == c.Paths.OutputDir {
		return errors.New("paths.output_dir must differ from paths.corpus_dir")
	}
	return nil
}

func (c *Config) validateInput() error {
	if _, err := htmlindex.Get(c.Input.Encoding); err != nil {
		return fmt.Errorf("input.encoding: unsupported encoding %q", c.Input.Encoding)
	}
	return nil
}

func (c *Config) validateScan() error {
	if c.Scan.Workers <= 0 {
		return errors.New("scan.workers must be positive")
	}
	for _, lang := range c.Scan.Languages {
		if strings.ContainsAny(lang, `/\`) || lang == "." || lang == ".." {
			return fmt.Errorf("scan.languages: %q is not a directory name", lang)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
