package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lexdraft/lexdraft/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	DB string
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history <draft-token>",
		Short: "Show the override audit log for a draft",
		Long: `List every override set and restore recorded for a draft, in append
order. The log is append-only; restores show up as their own entries
rather than erasing history.

Examples:
  lexdraft history draft-0001 --db proposals.db
  lexdraft history draft-0001 --db proposals.db --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "path to the proposals database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(opts *HistoryOptions, draftToken string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if _, err := os.Stat(opts.DB); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("database not found: %s", opts.DB))
	}

	st, err := store.Open(opts.DB)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	entries, err := st.ListOverrideLog(cmd.Context(), draftToken)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read override log", err)
	}

	if opts.Format == "json" {
		return formatter.Success(entries)
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintf(out, "No override history for %s.\n", draftToken)
		return nil
	}
	for _, e := range entries {
		switch e.Op {
		case "restore":
			fmt.Fprintf(out, "%4d  %s  restore  %s\n", e.Seq, e.At.Format("2006-01-02 15:04:05"), e.SectionID)
		default:
			origin := "manual"
			if e.AIGenerated {
				origin = "ai"
			}
			fmt.Fprintf(out, "%4d  %s  set      %s (%s)\n", e.Seq, e.At.Format("2006-01-02 15:04:05"), e.SectionID, origin)
			if opts.Verbose && e.Instruction != "" {
				fmt.Fprintf(out, "      instruction: %s\n", e.Instruction)
			}
		}
	}
	return nil
}
