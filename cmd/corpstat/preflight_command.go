package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"corpstat/internal/preflight"
)

func newPreflightCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "preflight",
		Short: "Check that the corpus and output directories are usable",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			results := preflight.RunAll(cfg)
			out := cmd.OutOrStdout()
			for _, r := range results {
				status := "OK"
				if !r.Passed {
					status = "FAIL"
				}
				fmt.Fprintf(out, "%-4s %-18s %s\n", status, r.Name, r.Detail)
			}
			if failed := preflight.Failed(results); len(failed) > 0 {
				return fmt.Errorf("preflight: %d of %d checks failed", len(failed), len(results))
			}
			return nil
		},
	}
}
