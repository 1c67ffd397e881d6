package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexdraft/lexdraft/internal/pricing"
)

// PriceData is the JSON payload for price results.
type PriceData struct {
	Mode      string   `json:"mode"`
	Narrative string   `json:"narrative"`
	OneTime   string   `json:"total_one_time"`
	Monthly   string   `json:"total_monthly"`
	Warnings  []string `json:"warnings,omitempty"`
}

// NewPriceCommand creates the price command.
func NewPriceCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price <draft-file>",
		Short: "Render the pricing narrative for a draft",
		Long: `Render only the pricing narrative and totals for a draft file.

Useful for iterating on fees without assembling the whole document.
Totals are always computed from the selected services, regardless of
pricing mode.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrice(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runPrice(opts *RootOptions, draftPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	df, err := LoadDraftFile(draftPath)
	if err != nil {
		return WrapExitError(ExitFailure, "invalid draft file", err)
	}

	d := df.toScenario(draftPath).BuildDraft()
	engine := pricing.NewEngine()

	narrative, warnings, err := engine.RenderNarrative(d.Pricing, d.Services, d.Client.Objective)
	if err != nil {
		if formatErr := formatter.Error(ErrCodeDraftInvalid, err.Error(), nil); formatErr != nil {
			return formatErr
		}
		return NewExitError(ExitFailure, err.Error())
	}

	totals := pricing.ComputeTotals(d.Services)
	data := PriceData{
		Mode:      string(d.Pricing.Mode),
		Narrative: narrative,
		OneTime:   totals.OneTime.String(),
		Monthly:   totals.Monthly.String(),
	}
	for _, w := range warnings {
		data.Warnings = append(data.Warnings, w.Message)
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w.Message)
	}

	if opts.Format == "json" {
		return formatter.Success(data)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, narrative)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Totals: %s one-time, %s monthly\n", data.OneTime, data.Monthly)
	return nil
}
