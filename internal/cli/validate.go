package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexdraft/lexdraft/internal/pricing"
)

// ValidationData holds validation results.
type ValidationData struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <draft-file>",
		Short: "Validate a draft file without assembling",
		Long: `Validate a draft YAML file: structure, pricing mode, fee types and
installment schedule. Reports hard errors (exit code 1) separately
from soft warnings (exit code 0), mirroring what assembly would do.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidateDraft(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidateDraft(opts *RootOptions, draftPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	df, err := LoadDraftFile(draftPath)
	if err != nil {
		data := ValidationData{Valid: false, Errors: []string{err.Error()}}
		if opts.Format == "json" {
			if encErr := formatter.Success(data); encErr != nil {
				return encErr
			}
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "INVALID: %s\n", err.Error())
		}
		return NewExitError(ExitFailure, "draft file is invalid")
	}

	data := ValidationData{Valid: true}

	d := df.toScenario(draftPath).BuildDraft()
	if w := pricing.ValidateInstallments(d.Pricing.Installments); w != nil {
		data.Warnings = append(data.Warnings, w.Message)
	}
	if _, _, err := pricing.NewEngine().RenderNarrative(d.Pricing, d.Services, d.Client.Objective); err != nil {
		// Narrative preconditions are soft here: the draft file is
		// well-formed, it just cannot price yet.
		data.Warnings = append(data.Warnings, err.Error())
	}

	if opts.Format == "json" {
		return formatter.Success(data)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "OK")
	for _, w := range data.Warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	return nil
}
