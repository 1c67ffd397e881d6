// Package assemble merges client, service, pricing and AI data plus
// active overrides into the canonical ordered list of document sections.
//
// Assembly is deterministic: identical inputs (including the override
// snapshot and the explicit document date) always produce byte-identical
// output. Nothing here reads the wall clock or any other ambient state.
package assemble

import (
	"fmt"
	"strings"
	"time"

	"github.com/lexdraft/lexdraft/internal/draft"
	"github.com/lexdraft/lexdraft/internal/pricing"
)

// Overrides is the lookup the assembler consults for substituted text.
// *override.Store satisfies it; tests may pass a nil-safe fake.
type Overrides interface {
	Get(draft.SectionID) (draft.TextOverride, bool)
}

// Input carries everything assembly depends on. DocumentDate is the
// only time-like input and is always passed explicitly.
type Input struct {
	Draft        draft.Draft
	Overrides    Overrides
	DocumentDate time.Time
}

// Result is the assembled document plus any non-fatal validation
// findings the caller must surface.
type Result struct {
	Sections []draft.DocumentSection
	Warnings []pricing.Warning
}

// Assemble renders the canonical section sequence for a draft.
//
// For every well-known section the assembler first computes a default
// text (from generated content when present, else a deterministic
// fallback built from client and service data), then overwrites it with
// an active override's text. Sections with no content are omitted
// entirely, never rendered empty.
//
// A global pricing configuration with zero amounts does not fail
// assembly: the pricing narrative is refused per its precondition and
// the refusal is reported as a warning alongside the rest of the
// document.
func Assemble(in Input) Result {
	d := in.Draft
	engine := pricing.NewEngine()

	// Exclusions render as their own overridable section, so the
	// narrative must not append them a second time.
	narrativeCfg := d.Pricing
	narrativeCfg.Exclusions = ""

	narrative, warnings, err := engine.RenderNarrative(narrativeCfg, d.Services, d.Client.Objective)
	if err != nil {
		if pricing.IsPreconditionError(err) {
			warnings = append(warnings, pricing.Warning{
				Code:    pricing.WarningCode(pricing.ErrCodeGlobalAmountsZero),
				Message: err.Error(),
			})
			narrative = ""
		} else {
			narrative = ""
		}
	}

	var sections []draft.DocumentSection
	add := func(id draft.SectionID, text string) {
		if ov, ok := lookupOverride(in.Overrides, id); ok && id.Kind() != draft.KindFixed {
			text = ov.NewText
		}
		if strings.TrimSpace(text) == "" {
			return
		}
		sections = append(sections, draft.DocumentSection{ID: id, Kind: id.Kind(), Text: text})
	}

	add(draft.SectionLetterhead, letterheadText(d.Firm))
	add(draft.SectionDate, dateLine(d.Firm, in.DocumentDate))
	add(draft.SectionRecipient, recipientBlock(d.Client))
	add(draft.SectionSalutation, salutation(d.Client))
	add(draft.SectionBackground, DefaultBackground(d.Client))

	for _, s := range d.SelectedServices() {
		add(draft.ServiceSection(s.ServiceID), serviceText(s, d.Generated))
	}

	if len(d.SelectedServices()) > 0 {
		add(draft.SectionTransition, transitionText(d.Generated))
	}
	add(draft.SectionPricingIntro, pricingIntro(d))
	add(draft.SectionPricingLines, narrative)
	add(draft.SectionInstallments, installmentBreakdown(d.Pricing))
	add(draft.SectionRetainer, retainerClause(d))
	add(draft.SectionExclusions, d.Pricing.Exclusions)
	add(draft.SectionGuarantees, d.Pricing.Guarantees)
	add(draft.SectionClosing, closingText(d.Firm, d.Generated))
	add(draft.SectionAcceptance, acceptanceBlock(d.Client))

	return Result{Sections: sections, Warnings: warnings}
}

func lookupOverride(ov Overrides, id draft.SectionID) (draft.TextOverride, bool) {
	if ov == nil {
		return draft.TextOverride{}, false
	}
	return ov.Get(id)
}

func letterheadText(f draft.Firm) string {
	parts := nonEmpty(f.Name, f.Address)
	return strings.Join(parts, "\n")
}

func dateLine(f draft.Firm, date time.Time) string {
	if date.IsZero() {
		return ""
	}
	formatted := date.Format("January 2, 2006")
	if f.City != "" {
		return f.City + ", " + formatted
	}
	return formatted
}

func recipientBlock(c draft.Client) string {
	parts := nonEmpty(c.Name, c.ContactName, c.Address)
	return strings.Join(parts, "\n")
}

func salutation(c draft.Client) string {
	if c.ContactName != "" {
		return "Dear " + c.ContactName + ":"
	}
	return "To whom it may concern:"
}

// DefaultBackground is the deterministic fallback for the background
// section: a templated sentence built from client data. It is exported
// because the AI rewrite flow needs the pre-override text to snapshot.
func DefaultBackground(c draft.Client) string {
	if c.Name == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(c.Name)
	if c.Industry != "" {
		fmt.Fprintf(&b, " operates in the %s sector", c.Industry)
		if c.EntityCount > 1 {
			fmt.Fprintf(&b, " through %d related entities", c.EntityCount)
		}
	} else {
		b.WriteString(" has requested our professional services")
	}
	b.WriteString(". ")
	if c.Matter != "" {
		fmt.Fprintf(&b, "This proposal sets out the professional services required to address %s.", c.Matter)
	} else {
		b.WriteString("This proposal sets out the professional services required to address its current legal needs.")
	}
	return b.String()
}

// serviceText resolves a service description: the user's custom text
// wins, then AI-expanded prose, then the catalog default, then a
// minimal deterministic sentence.
func serviceText(s draft.ServiceSelection, generated *draft.GeneratedContent) string {
	if s.CustomText != "" {
		return s.CustomText
	}
	if desc, ok := generated.Description(s.ServiceID); ok && desc.ExpandedText != "" {
		var parts []string
		parts = append(parts, desc.ExpandedText)
		if len(desc.Objectives) > 0 {
			parts = append(parts, "Objectives: "+strings.Join(desc.Objectives, "; ")+".")
		}
		if len(desc.Deliverables) > 0 {
			parts = append(parts, "Deliverables: "+strings.Join(desc.Deliverables, "; ")+".")
		}
		return strings.Join(parts, "\n\n")
	}
	if s.DefaultText != "" {
		return s.DefaultText
	}
	return fmt.Sprintf("We will provide %s services as described in our engagement terms.", s.Name)
}

func transitionText(generated *draft.GeneratedContent) string {
	if generated != nil && generated.TransitionText != "" {
		return generated.TransitionText
	}
	return "Having described the scope of our engagement, we set out below the economic terms of our proposal."
}

func pricingIntro(d draft.Draft) string {
	if len(d.SelectedServices()) == 0 && d.Pricing.Mode != draft.ModeGlobal {
		return ""
	}
	return "Our professional fees for this engagement are as follows:"
}

// installmentBreakdown lists the schedule one slice per line. In global
// mode the schedule is already narrated in prose, so the breakdown is
// omitted. An invalid schedule still renders, with a leading warning
// marker the editor surfaces.
func installmentBreakdown(p draft.PricingConfig) string {
	if p.Mode == draft.ModeGlobal || len(p.Installments) == 0 {
		return ""
	}
	var paragraphs []string
	if w := pricing.ValidateInstallments(p.Installments); w != nil {
		paragraphs = append(paragraphs, "[WARNING: "+w.Message+"]")
	}
	paragraphs = append(paragraphs, "The initial fees are payable as follows:")
	for _, inst := range p.Installments {
		paragraphs = append(paragraphs, fmt.Sprintf("%d%% %s", inst.Percentage, inst.Description))
	}
	return strings.Join(paragraphs, "\n\n")
}

func retainerClause(d draft.Draft) string {
	if d.Pricing.Mode == draft.ModeGlobal {
		return ""
	}
	totals := pricing.ComputeTotals(d.Services)
	if totals.Monthly.IsZero() || d.Pricing.RetainerMonths == 0 {
		return ""
	}
	return fmt.Sprintf("The monthly fees indicated above constitute a retainer payable for a period of %d months.",
		d.Pricing.RetainerMonths)
}

func closingText(f draft.Firm, generated *draft.GeneratedContent) string {
	if generated != nil && generated.ClosingText != "" {
		return generated.ClosingText
	}
	closing := "We appreciate the opportunity to be of service and remain available to discuss any aspect of this proposal."
	if f.Name != "" {
		closing += "\n\nSincerely,\n\n" + f.Name
	}
	return closing
}

func acceptanceBlock(c draft.Client) string {
	if c.Name == "" {
		return ""
	}
	return "Agreed and accepted:\n\n_________________________\n" + c.Name
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
