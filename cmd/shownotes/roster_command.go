package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"shownotes/internal/roster"
)

const (
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiReset  = "\x1b[0m"
)

func newRosterCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "roster <url>",
		Short: "List confirmed participants for a video URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
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
				return writeJSON(cmd, result.Participants)
			}
			out := cmd.OutOrStdout()
			if len(result.Participants) == 0 {
				fmt.Fprintln(out, "No participants confirmed")
				return nil
			}
			fmt.Fprintln(out, renderRoster(result.Participants, shouldColorize(out)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print participants as JSON")
	return cmd
}

func renderRoster(people []roster.Person, colorize bool) string {
	rows := make([][]string, 0, len(people))
	for _, person := range people {
		trust := string(person.Trust)
		if colorize {
			switch person.Trust {
			case roster.TrustHigh:
				trust = ansiGreen + trust + ansiReset
			case roster.TrustMedium:
				trust = ansiYellow + trust + ansiReset
			}
		}
		rows = append(rows, []string{person.Name, string(person.Source), trust, person.Bio})
	}
	return renderTable([]string{"Name", "Source", "Trust", "Bio"}, rows)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
