package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"corpstat/internal/corpus"
	"corpstat/internal/logging"
)

type languageInfo struct {
	Name     string `json:"name"`
	Projects int    `json:"projects"`
}

func newLanguagesCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List the languages found in the corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := ctx.configAndLogger(cmd)
			if err != nil {
				return err
			}
			walker, err := corpus.NewWalker(cfg.Paths.CorpusDir, cfg.Input.Encoding, logger)
			if err != nil {
				return err
			}
			names, err := walker.Languages()
			if err != nil {
				return err
			}

			infos := make([]languageInfo, 0, len(names))
			for _, name := range names {
				projects, err := walker.Projects(name)
				if err != nil {
					logging.WarnWithContext(walker.Logger, "language unreadable; skipped", "language_unreadable",
						logging.String(logging.FieldLanguage, name),
						logging.Error(err),
						logging.String(logging.FieldErrorHint, "check permissions on the language directory"),
						logging.String(logging.FieldImpact, "language omitted from the listing"),
					)
					continue
				}
				infos = append(infos, languageInfo{Name: name, Projects: len(projects)})
			}

			if jsonOutput {
				return writeJSON(cmd, infos)
			}
			out := cmd.OutOrStdout()
			if len(infos) == 0 {
				fmt.Fprintf(out, "No languages found under %s\n", cfg.Paths.CorpusDir)
				return nil
			}
			rows := make([][]string, 0, len(infos))
			for _, info := range infos {
				rows = append(rows, []string{info.Name, strconv.Itoa(info.Projects)})
			}
			fmt.Fprintln(out, renderTable([]string{"Language", "Projects"}, rows, []columnAlignment{alignLeft, alignRight}, shouldColorize(out)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print languages as JSON")
	return cmd
}
