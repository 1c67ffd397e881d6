package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lexdraft/lexdraft/internal/cache"
	"github.com/lexdraft/lexdraft/internal/draft"
	"github.com/lexdraft/lexdraft/internal/harness"
	"github.com/lexdraft/lexdraft/internal/store"
)

// AssembleOptions holds flags for the assemble command.
type AssembleOptions struct {
	*RootOptions
	Out   string // write markup to this file instead of stdout
	DB    string // record a snapshot and the override log in this SQLite database
	Cache string // Redis address for render memoization
}

// AssembleData is the JSON payload for assemble results.
type AssembleData struct {
	Fingerprint string   `json:"fingerprint"`
	Markup      string   `json:"markup"`
	Sections    int      `json:"sections"`
	Warnings    []string `json:"warnings,omitempty"`
	CacheHit    bool     `json:"cache_hit,omitempty"`
}

// NewAssembleCommand creates the assemble command.
func NewAssembleCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AssembleOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "assemble <draft-file>",
		Short: "Assemble a draft into anchored proposal markup",
		Long: `Assemble a proposal document from a draft YAML file.

Applies the draft's overrides, assembles the canonical section
sequence, and renders anchored markup. Warnings (for example an
installment schedule that does not total 100%) go to stderr; the
document still renders.

Examples:
  lexdraft assemble proposal.yaml
  lexdraft assemble proposal.yaml --out proposal.html
  lexdraft assemble proposal.yaml --db proposals.db
  lexdraft assemble proposal.yaml --cache localhost:6379 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssemble(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Out, "out", "", "write markup to file instead of stdout")
	cmd.Flags().StringVar(&opts.DB, "db", "", "record snapshot and override log in this database")
	cmd.Flags().StringVar(&opts.Cache, "cache", "", "Redis address for render caching")

	return cmd
}

func runAssemble(opts *AssembleOptions, draftPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	result, fingerprint, err := assembleDraftFile(opts, draftPath, formatter)
	if err != nil {
		return err
	}

	data := AssembleData{
		Fingerprint: fingerprint,
		Markup:      result.Markup,
		Sections:    len(result.Sections),
		Warnings:    result.Warnings,
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}

	if opts.DB != "" {
		if err := persistAssembly(cmd, result, fingerprint, opts.DB); err != nil {
			return WrapExitError(ExitCommandError, "failed to record assembly", err)
		}
		formatter.VerboseLog("recorded snapshot %s in %s", fingerprint, opts.DB)
	}

	if opts.Out != "" {
		if err := os.WriteFile(opts.Out, []byte(result.Markup), 0o644); err != nil {
			return WrapExitError(ExitCommandError, "failed to write output file", err)
		}
		if opts.Format == "json" {
			return formatter.Success(data)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d sections to %s (fingerprint %s)\n",
			len(result.Sections), opts.Out, fingerprint)
		return nil
	}

	if opts.Format == "json" {
		return formatter.Success(data)
	}
	fmt.Fprint(cmd.OutOrStdout(), result.Markup)
	return nil
}

// assembleDraftFile loads, assembles and (optionally) memoizes a draft
// file's rendering. The fingerprint covers draft content plus active
// overrides, so a cache hit is always the correct document.
func assembleDraftFile(opts *AssembleOptions, draftPath string, formatter *OutputFormatter) (*harness.Result, string, error) {
	df, err := LoadDraftFile(draftPath)
	if err != nil {
		return nil, "", WrapExitError(ExitFailure, "invalid draft file", err)
	}

	result, err := harness.Run(df.toScenario(draftPath))
	if err != nil {
		return nil, "", WrapExitError(ExitFailure, "assembly failed", err)
	}

	fingerprint, err := draft.Fingerprint(result.Draft, result.Overrides)
	if err != nil {
		return nil, "", WrapExitError(ExitFailure, "fingerprint failed", err)
	}

	if opts.Cache != "" {
		c := cache.NewRedisCache(opts.Cache, 24*time.Hour)
		defer c.Close()
		ctx := context.Background()
		if markup, ok := c.Get(ctx, fingerprint); ok {
			formatter.VerboseLog("cache hit for %s", fingerprint)
			result.Markup = markup
			return result, fingerprint, nil
		}
		if err := c.Set(ctx, fingerprint, result.Markup); err != nil {
			// Cache failures never fail the command.
			formatter.VerboseLog("cache set failed: %v", err)
		}
	}

	return result, fingerprint, nil
}

// persistAssembly records the applied overrides and the snapshot.
func persistAssembly(cmd *cobra.Command, result *harness.Result, fingerprint, dbPath string) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	for _, ov := range result.Overrides {
		if err := st.AppendOverrideSet(ctx, result.Draft.Token, ov); err != nil {
			return err
		}
	}

	return st.WriteSnapshot(ctx, store.Snapshot{
		ID:         fingerprint,
		DraftToken: result.Draft.Token,
		Pricing:    result.Draft.Pricing,
		Selections: result.Draft.Services,
		Overrides:  result.Overrides,
		Markup:     result.Markup,
		CreatedAt:  time.Now().UTC(),
	})
}
