package harness

import (
	"fmt"
	"time"

	"github.com/lexdraft/lexdraft/internal/assemble"
	"github.com/lexdraft/lexdraft/internal/codec"
	"github.com/lexdraft/lexdraft/internal/draft"
	"github.com/lexdraft/lexdraft/internal/override"
	"github.com/lexdraft/lexdraft/internal/testutil"
)

// Result is the outcome of a scenario execution.
type Result struct {
	// ScenarioName echoes the scenario for reporting.
	ScenarioName string `json:"scenario_name"`

	// Sections is the assembled document in canonical order.
	Sections []draft.DocumentSection `json:"sections"`

	// Markup is the anchored document rendering of Sections.
	Markup string `json:"markup"`

	// Warnings are the assembly warnings, as messages.
	Warnings []string `json:"warnings,omitempty"`

	// Draft and Overrides are the assembled inputs, kept for callers
	// that need fingerprints or persistence. Not part of the reported
	// result.
	Draft     draft.Draft          `json:"-"`
	Overrides []draft.TextOverride `json:"-"`
}

// Section returns the text of a section by id.
func (r *Result) Section(id draft.SectionID) (string, bool) {
	for _, s := range r.Sections {
		if s.ID == id {
			return s.Text, true
		}
	}
	return "", false
}

// overrideClockBase anchors override timestamps so repeated runs of the
// same scenario produce identical override state.
var overrideClockBase = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// Run executes a scenario: build the draft, apply its overrides and
// restores, assemble, and render.
//
// Run itself only fails on unusable input (an unparseable date slips
// past validation only if the scenario was built in code). Assertion
// failures are reported by CheckAssertions, not here.
func Run(scenario *Scenario) (*Result, error) {
	docDate, err := time.Parse("2006-01-02", scenario.DocumentDate)
	if err != nil {
		return nil, fmt.Errorf("document_date: %w", err)
	}

	d := scenario.BuildDraft()

	store := override.NewStore()
	clock := testutil.NewSteppedClock(overrideClockBase, time.Second)

	// Overrides need the pre-edit text so restore has something to
	// return to. Assemble once without overrides to capture it.
	base := assemble.Assemble(assemble.Input{Draft: d, Overrides: store, DocumentDate: docDate})
	baseText := make(map[draft.SectionID]string, len(base.Sections))
	for _, s := range base.Sections {
		baseText[s.ID] = s.Text
	}

	for _, ov := range scenario.Overrides {
		id := draft.SectionID(ov.Section)
		store.Set(draft.TextOverride{
			SectionID:    id,
			OriginalText: baseText[id],
			NewText:      ov.Text,
			AIGenerated:  ov.AIGenerated,
			Instruction:  ov.Instruction,
			Timestamp:    clock.Now(),
		})
	}
	for _, section := range scenario.Restores {
		store.Restore(draft.SectionID(section))
	}

	assembled := assemble.Assemble(assemble.Input{Draft: d, Overrides: store, DocumentDate: docDate})

	result := &Result{
		ScenarioName: scenario.Name,
		Sections:     assembled.Sections,
		Markup:       codec.Render(assembled.Sections),
		Draft:        d,
		Overrides:    store.List(),
	}
	for _, w := range assembled.Warnings {
		result.Warnings = append(result.Warnings, w.Message)
	}
	return result, nil
}
