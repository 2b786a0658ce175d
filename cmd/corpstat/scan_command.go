package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"corpstat/internal/config"
	"corpstat/internal/scan"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var corpusDir string
	var outputDir string
	var perLanguage bool
	var workers int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "scan [language...]",
		Short: "Scan the corpus and write frequency reports",
		Long: "Scan every language directory under the corpus root (or only the named\n" +
			"languages) and write the nine frequency reports to the output directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, logger, err := ctx.configAndLogger(cmd)
			if err != nil {
				return err
			}
			cfg := *loaded
			if dir := strings.TrimSpace(corpusDir); dir != "" {
				if cfg.Paths.CorpusDir, err = config.ExpandPath(dir); err != nil {
					return fmt.Errorf("resolve --corpus: %w", err)
				}
			}
			if dir := strings.TrimSpace(outputDir); dir != "" {
				if cfg.Paths.OutputDir, err = config.ExpandPath(dir); err != nil {
					return fmt.Errorf("resolve --output: %w", err)
				}
			}

			opts := scan.OptionsFromConfig(&cfg)
			if len(args) > 0 {
				opts.Languages = args
			}
			if cmd.Flags().Changed("per-language") {
				opts.PerLanguage = perLanguage
				cfg.Scan.PerLanguage = perLanguage
			}
			if cmd.Flags().Changed("workers") {
				if workers <= 0 {
					return fmt.Errorf("--workers must be positive")
				}
				opts.Workers = workers
			}

			summary, runErr := scan.Run(cmd.Context(), &cfg, opts, logger)
			if summary == nil {
				return runErr
			}

			if jsonOutput {
				if err := writeJSON(cmd, summary); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), renderSummary(summary, shouldColorize(cmd.OutOrStdout())))
			}
			if failed := summary.ReportsFailed(); failed > 0 && runErr == nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d report(s) could not be written; see log for details\n", failed)
			}
			return runErr
		},
	}

	cmd.Flags().StringVar(&corpusDir, "corpus", "", "Corpus root (overrides paths.corpus_dir)")
	cmd.Flags().StringVar(&outputDir, "output", "", "Report directory (overrides paths.output_dir)")
	cmd.Flags().BoolVar(&perLanguage, "per-language", false, "Write a separate report set per language")
	cmd.Flags().IntVar(&workers, "workers", 0, "Languages processed in parallel with --per-language")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the run summary as JSON")
	return cmd
}

func renderSummary(summary *scan.Summary, colorize bool) string {
	headers := []string{"Unit", "Lines", "Words", "Characters", "Reports", "Elapsed"}
	aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight}

	rows := make([][]string, 0, len(summary.Units)+1)
	for _, unit := range summary.Units {
		rows = append(rows, []string{
			unitLabel(unit),
			strconv.Itoa(unit.Totals.Lines),
			strconv.Itoa(unit.Totals.Words),
			strconv.Itoa(unit.Totals.Characters),
			reportsLabel(unit),
			formatSeconds(unit.ElapsedSeconds),
		})
	}
	if len(summary.Units) > 1 {
		rows = append(rows, []string{
			"total",
			strconv.Itoa(summary.Totals.Lines),
			strconv.Itoa(summary.Totals.Words),
			strconv.Itoa(summary.Totals.Characters),
			"",
			formatSeconds(summary.ElapsedSeconds),
		})
	}

	var b strings.Builder
	b.WriteString(renderTable(headers, rows, aligns, colorize))
	b.WriteString("\nRun ")
	b.WriteString(summary.RunID)
	b.WriteString(" finished in ")
	b.WriteString(formatSeconds(summary.ElapsedSeconds))
	fmt.Fprintf(&b, " (read %d bytes, wrote %d bytes)", summary.BytesRead, summary.BytesWritten)
	for _, unit := range summary.Units {
		if unit.Error != "" {
			fmt.Fprintf(&b, "\n%s: %s", unit.Name, unit.Error)
		} else if len(unit.FailedLangs) > 0 {
			fmt.Fprintf(&b, "\n%s: skipped unreadable languages: %s", unit.Name, strings.Join(unit.FailedLangs, ", "))
		}
	}
	return b.String()
}

func unitLabel(unit scan.UnitSummary) string {
	if unit.Name == scan.CombinedUnit && len(unit.Languages) > 0 {
		return unit.Name + " (" + strings.Join(unit.Languages, ", ") + ")"
	}
	return unit.Name
}

func reportsLabel(unit scan.UnitSummary) string {
	if unit.Error != "" {
		return "failed"
	}
	if len(unit.Failed) > 0 {
		return fmt.Sprintf("%d/%d", unit.Written, unit.Written+len(unit.Failed))
	}
	return strconv.Itoa(unit.Written)
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64) + "s"
}
