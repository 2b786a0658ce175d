package preflight

import (
	"corpstat/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every check that applies to cfg.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Corpus directory", cfg.Paths.CorpusDir, Read),
		CheckOutputDirectory("Output directory", cfg.Paths.OutputDir),
		CheckEncoding("Input encoding", cfg.Input.Encoding),
		CheckLanguages("Languages", cfg.Paths.CorpusDir, cfg.Scan.Languages),
	}

	if cfg.Logging.Dir != "" {
		results = append(results, CheckOutputDirectory("Log directory", cfg.Logging.Dir))
	}

	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.Passed {
			out = append(out, r)
		}
	}
	return out
}
