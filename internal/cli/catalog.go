package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexdraft/lexdraft/internal/catalog"
	"github.com/lexdraft/lexdraft/internal/draft"
)

// CatalogOptions holds flags for the catalog command.
type CatalogOptions struct {
	*RootOptions
	Matter string
}

// CatalogServiceData is one catalog entry in the command's output,
// with its confidence score when a matter was given.
type CatalogServiceData struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	FeeType    string `json:"fee_type"`
	Fee        string `json:"suggested_fee"`
	MonthlyFee string `json:"suggested_monthly_fee"`
	Confidence int    `json:"confidence,omitempty"`
	Selected   bool   `json:"selected,omitempty"`
}

// CatalogData is the JSON payload for catalog results.
type CatalogData struct {
	Services  []CatalogServiceData `json:"services"`
	Templates []string             `json:"templates"`
}

// NewCatalogCommand creates the catalog command.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CatalogOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "catalog <catalog-dir>",
		Short: "Inspect a service catalog",
		Long: `Load a CUE service catalog and list its services and pricing
templates. With --matter, services are scored against the matter
description the way a new draft would score them, showing which would
start selected.

Examples:
  lexdraft catalog ./catalog
  lexdraft catalog ./catalog --matter "incorporate a holding company"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Matter, "matter", "", "score services against this matter description")

	return cmd
}

func runCatalog(opts *CatalogOptions, dir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cat, err := catalog.Load(dir)
	if err != nil {
		code := ErrCodeCatalogInvalid
		message := err.Error()
		var loadErr *catalog.LoadError
		if errors.As(err, &loadErr) {
			code = loadErr.Code
			message = loadErr.Message
		}
		if formatErr := formatter.Error(code, message, nil); formatErr != nil {
			return formatErr
		}
		return NewExitError(ExitCommandError, "catalog load failed")
	}

	data := CatalogData{Templates: []string{}}
	for _, t := range cat.Templates {
		data.Templates = append(data.Templates, t.Name)
	}

	var selections []draft.ServiceSelection
	if opts.Matter != "" {
		selections = catalog.NewSelections(cat, draft.Client{Matter: opts.Matter})
	}
	for i, s := range cat.Services {
		entry := CatalogServiceData{
			ID:         s.ID,
			Name:       s.Name,
			FeeType:    string(s.FeeType),
			Fee:        draft.FromUnits(s.SuggestedFee).String(),
			MonthlyFee: draft.FromUnits(s.SuggestedMonthlyFee).String(),
		}
		if selections != nil {
			entry.Confidence = selections[i].Confidence
			entry.Selected = selections[i].Selected
		}
		data.Services = append(data.Services, entry)
	}

	if opts.Format == "json" {
		return formatter.Success(data)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Services (%d):\n", len(data.Services))
	for _, s := range data.Services {
		line := fmt.Sprintf("  %-16s %s [%s, %s one-time, %s monthly]", s.ID, s.Name, s.FeeType, s.Fee, s.MonthlyFee)
		if selections != nil {
			marker := " "
			if s.Selected {
				marker = "*"
			}
			line += fmt.Sprintf("  %s confidence %d", marker, s.Confidence)
		}
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "Templates (%d):\n", len(data.Templates))
	for _, name := range data.Templates {
		fmt.Fprintf(out, "  %s\n", name)
	}
	return nil
}
