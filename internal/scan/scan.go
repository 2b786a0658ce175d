package scan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"corpstat/internal/aggregate"
	"corpstat/internal/config"
	"corpstat/internal/corpus"
	"corpstat/internal/logging"
	"corpstat/internal/output"
	"corpstat/internal/report"
	"corpstat/internal/textutil"
)

// Options select what Run scans. Zero values fall back to the config.
type Options struct {
	Languages   []string
	PerLanguage bool
	Workers     int
	OutputDir   string
}

// OptionsFromConfig returns the options described by the [scan] section.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return Options{}
	}
	return Options{
		Languages:   append([]string(nil), cfg.Scan.Languages...),
		PerLanguage: cfg.Scan.PerLanguage,
		Workers:     cfg.Scan.Workers,
		OutputDir:   cfg.Paths.OutputDir,
	}
}

// Run scans cfg.Paths.CorpusDir and writes the report set(s). The returned
// summary is non-nil whenever reports were attempted, including when some
// languages or report writes failed. Cancellation aborts the scan before any
// report is written.
func Run(ctx context.Context, cfg *config.Config, opts Options, logger *slog.Logger) (*Summary, error) {
	if cfg == nil {
		return nil, errors.New("scan: config is required")
	}
	opts = resolveOptions(cfg, opts)

	start := time.Now()
	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	base := logging.WithContext(ctx, logger)
	logger = logging.NewComponentLogger(base, "scan")

	walker, err := corpus.NewWalker(cfg.Paths.CorpusDir, cfg.Input.Encoding, base)
	if err != nil {
		return nil, err
	}

	languages := opts.Languages
	if len(languages) == 0 {
		languages, err = walker.Languages()
		if err != nil {
			return nil, err
		}
	}
	if len(languages) == 0 {
		logging.WarnWithContext(logger, "corpus has no language directories", "corpus_empty",
			logging.String("corpus_dir", cfg.Paths.CorpusDir),
			logging.String(logging.FieldErrorHint, "lay the corpus out as <corpus_dir>/<language>/<project>/<files>"),
			logging.String(logging.FieldImpact, "empty reports are written"),
		)
		opts.PerLanguage = false
	}

	writer := output.NewWriter(opts.OutputDir, base)
	if err := writer.Lock(); err != nil {
		return nil, err
	}
	defer writer.Unlock()

	logger.Info("scan started",
		logging.String("corpus_dir", cfg.Paths.CorpusDir),
		logging.String("output_dir", opts.OutputDir),
		logging.String("encoding", walker.Decoder.Name()),
		logging.Int("languages", len(languages)),
		logging.Bool("per_language", opts.PerLanguage),
	)

	summary := &Summary{RunID: runID, PerLanguage: opts.PerLanguage}
	if opts.PerLanguage {
		summary.Units, err = runPerLanguage(ctx, walker, languages, opts, base, logger)
	} else {
		var unit UnitSummary
		unit, err = runCombined(ctx, walker, languages, writer, logger)
		summary.Units = []UnitSummary{unit}
	}
	if err != nil {
		return nil, err
	}
	summary.finish(start)

	logger.Info("scan finished",
		logging.Float64("elapsed_seconds", summary.ElapsedSeconds),
		logging.Int("lines", summary.Totals.Lines),
		logging.Int("words", summary.Totals.Words),
		logging.Int("characters", summary.Totals.Characters),
		logging.Int64("bytes_read", summary.BytesRead),
		logging.Int64("bytes_written", summary.BytesWritten),
		logging.Int("reports_failed", summary.ReportsFailed()),
	)

	if failed := failedUnits(summary.Units); failed > 0 && failed == len(summary.Units) {
		return summary, fmt.Errorf("scan: every language failed (%s)", unitErrors(summary.Units))
	}
	return summary, nil
}

func resolveOptions(cfg *config.Config, opts Options) Options {
	defaults := OptionsFromConfig(cfg)
	if len(opts.Languages) == 0 {
		opts.Languages = defaults.Languages
	}
	if opts.Workers <= 0 {
		opts.Workers = defaults.Workers
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if strings.TrimSpace(opts.OutputDir) == "" {
		opts.OutputDir = defaults.OutputDir
	}
	opts.PerLanguage = opts.PerLanguage || defaults.PerLanguage
	return opts
}

// runCombined feeds every language into one aggregator, in the order given.
func runCombined(ctx context.Context, walker *corpus.Walker, languages []string, writer *output.Writer, logger *slog.Logger) (UnitSummary, error) {
	start := time.Now()
	unit := UnitSummary{Name: CombinedUnit, OutputDir: writer.Dir}
	agg := aggregate.New()

	for _, lang := range languages {
		stats, err := ingestLanguage(ctx, walker, lang, agg, logger)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return unit, ctxErr
			}
			unit.FailedLangs = append(unit.FailedLangs, lang)
			continue
		}
		unit.Languages = append(unit.Languages, lang)
		unit.add(stats)
	}

	if len(unit.Languages) == 0 && len(unit.FailedLangs) > 0 {
		unit.Error = "no language could be read: " + strings.Join(unit.FailedLangs, ", ")
	} else {
		unit.writeReports(agg, writer)
	}
	unit.Totals = agg.Totals()
	unit.Distinct = distinctCounts(agg)
	unit.Elapsed = time.Since(start)
	unit.ElapsedSeconds = roundTo(unit.Elapsed.Seconds(), 2)
	return unit, nil
}

type languageJob struct {
	index int
	name  string
	dir   string
}

// runPerLanguage scans each language into its own aggregator and report
// directory using at most opts.Workers goroutines. Units keep the order of
// languages.
func runPerLanguage(ctx context.Context, walker *corpus.Walker, languages []string, opts Options, base, logger *slog.Logger) ([]UnitSummary, error) {
	units := make([]UnitSummary, len(languages))
	jobs := make(chan languageJob)
	dirs := unitDirectories(opts.OutputDir, languages)

	workers := min(opts.Workers, len(languages))
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				units[job.index] = runLanguage(ctx, walker, job, base, logger)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i, lang := range languages {
			select {
			case jobs <- languageJob{index: i, name: lang, dir: dirs[i]}:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return units, nil
}

func runLanguage(ctx context.Context, walker *corpus.Walker, job languageJob, base, logger *slog.Logger) UnitSummary {
	start := time.Now()
	unit := UnitSummary{Name: job.name, OutputDir: job.dir}
	agg := aggregate.New()

	stats, err := ingestLanguage(ctx, walker, job.name, agg, logger)
	if err != nil {
		unit.FailedLangs = []string{job.name}
		unit.Error = err.Error()
	} else if ctx.Err() == nil {
		unit.Languages = []string{job.name}
		unit.add(stats)
		writer := output.NewWriter(job.dir, base.With(logging.String(logging.FieldLanguage, job.name)))
		unit.writeReports(agg, writer)
	}
	unit.Totals = agg.Totals()
	unit.Distinct = distinctCounts(agg)
	unit.Elapsed = time.Since(start)
	unit.ElapsedSeconds = roundTo(unit.Elapsed.Seconds(), 2)
	return unit
}

// ingestLanguage walks one language into agg and logs progress by project.
func ingestLanguage(ctx context.Context, walker *corpus.Walker, lang string, agg *aggregate.Aggregator, logger *slog.Logger) (corpus.Stats, error) {
	langLogger := logger.With(logging.String(logging.FieldLanguage, lang))
	projects, err := walker.Projects(lang)
	if err != nil {
		logging.ErrorWithContext(langLogger, "language unreadable; skipped", "language_unreadable",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check the language directory exists under corpus_dir"),
		)
		return corpus.Stats{}, err
	}

	sampler := logging.NewProgressSampler(25)
	seen := 0
	current := ""
	stats, err := walker.WalkLanguage(ctx, lang, func(b corpus.Block) error {
		if b.Project != current {
			current = b.Project
			seen++
			if percent := float64(seen) / float64(max(len(projects), 1)) * 100; sampler.ShouldLog(percent, lang) {
				langLogger.Debug("scan progress",
					logging.String(logging.FieldProject, b.Project),
					logging.Float64("percent", roundTo(percent, 1)),
				)
			}
		}
		agg.IngestBlock(b.Text)
		return nil
	})
	if err != nil {
		if ctx.Err() == nil {
			logging.ErrorWithContext(langLogger, "language scan failed", "language_scan_failed", logging.Error(err))
		}
		return stats, err
	}
	return stats, nil
}

func (u *UnitSummary) add(stats corpus.Stats) {
	u.Projects += stats.Projects
	u.Files += stats.Files
	u.Skipped += stats.Skipped
	u.BytesRead += stats.Bytes
}

func (u *UnitSummary) writeReports(agg *aggregate.Aggregator, writer *output.Writer) {
	result := writer.WriteAll(report.Artifacts(agg))
	u.Written = len(result.Written)
	u.BytesWritten = result.Bytes
	for _, f := range result.Failed {
		u.Failed = append(u.Failed, f.Name)
	}
}

// unitDirectories maps each language to a distinct, filesystem-safe
// directory below root.
func unitDirectories(root string, languages []string) []string {
	dirs := make([]string, len(languages))
	used := make(map[string]int, len(languages))
	for i, lang := range languages {
		name := textutil.SanitizePathSegment(lang)
		used[name]++
		if n := used[name]; n > 1 {
			name = name + "-" + strconv.Itoa(n)
		}
		dirs[i] = filepath.Join(root, name)
	}
	return dirs
}

func failedUnits(units []UnitSummary) int {
	n := 0
	for _, u := range units {
		if u.Error != "" {
			n++
		}
	}
	return n
}

func unitErrors(units []UnitSummary) string {
	var parts []string
	for _, u := range units {
		if u.Error != "" {
			parts = append(parts, u.Name+": "+u.Error)
		}
	}
	return strings.Join(parts, "; ")
}
