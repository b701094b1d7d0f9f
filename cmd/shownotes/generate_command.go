package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"shownotes/internal/config"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var jsonOutput bool
	var workDir string

	cmd := &cobra.Command{
		Use:   "generate <url>",
		Short: "Generate an episode description for a video URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if trimmed := strings.TrimSpace(workDir); trimmed != "" {
				expanded, err := config.ExpandPath(trimmed)
				if err != nil {
					return fmt.Errorf("resolve work dir: %w", err)
				}
				scoped := *cfg
				scoped.Paths.WorkDir = expanded
				cfg = &scoped
			}
			logger, err := ctx.newCLILogger(cfg)
			if err != nil {
				return err
			}

			result, err := ctx.newRunner(cfg, logger).Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, result)
			}
			if target := strings.TrimSpace(outputPath); target != "" {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve output path: %w", err)
				}
				if err := os.WriteFile(expanded, []byte(result.Description+"\n"), 0o644); err != nil {
					return fmt.Errorf("write description: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote description to %s\n", expanded)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Description)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the description to a file instead of stdout")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the full pipeline result as JSON")
	cmd.Flags().StringVar(&workDir, "work-dir", "", "Override the scratch directory for this run")
	return cmd
}
