package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/lexdraft/lexdraft/internal/codec"
	"github.com/lexdraft/lexdraft/internal/draft"
)

// ExtractedSection is one section pulled back out of edited markup.
type ExtractedSection struct {
	Section string `json:"section"`
	Text    string `json:"text"`
}

// NewExtractCommand creates the extract command.
func NewExtractCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <markup-file>",
		Short: "Extract section text from edited proposal markup",
		Long: `Parse anchored proposal markup and print the current text of every
overridable section. Fixed sections (letterhead, date, signature
blocks) are skipped. Text comes back whitespace-normalized, exactly as
an editor round-trip would store it.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runExtract(opts *RootOptions, markupPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	data, err := os.ReadFile(markupPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read markup file", err)
	}

	parsed := codec.Parse(string(data))
	formatter.VerboseLog("found %d overridable sections", len(parsed))

	// Canonical document order keeps output stable across runs.
	sections := make([]ExtractedSection, 0, len(parsed))
	for id, text := range parsed {
		sections = append(sections, ExtractedSection{Section: string(id), Text: text})
	}
	sort.Slice(sections, func(i, j int) bool {
		ri, rj := draft.SectionID(sections[i].Section).Rank(), draft.SectionID(sections[j].Section).Rank()
		if ri != rj {
			return ri < rj
		}
		return sections[i].Section < sections[j].Section
	})

	if opts.Format == "json" {
		return formatter.Success(sections)
	}

	out := cmd.OutOrStdout()
	for _, s := range sections {
		fmt.Fprintf(out, "== %s ==\n%s\n\n", s.Section, s.Text)
	}
	return nil
}
