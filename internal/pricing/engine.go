package pricing

import (
	"fmt"
	"strings"

	"github.com/lexdraft/lexdraft/internal/draft"
)

// Engine renders pricing narratives. It is stateless and safe for
// concurrent use; the struct exists so callers hold one dispatch point
// instead of branching on the pricing mode themselves.
type Engine struct{}

// NewEngine creates a pricing engine.
func NewEngine() *Engine {
	return &Engine{}
}

// RenderNarrative produces the pricing narrative for the configured
// mode. Paragraphs are separated by blank lines; the codec renders each
// paragraph as its own markup block.
//
// PRECONDITION: in global mode at least one of InitialPayment and
// MonthlyRetainer must be non-zero; violating it returns a
// PreconditionError and no text.
//
// An installment schedule that does not total 100% does NOT block
// generation: the narrative is still produced and the mismatch comes
// back as a Warning the caller must surface.
func (e *Engine) RenderNarrative(cfg draft.PricingConfig, services []draft.ServiceSelection, clientObjective string) (string, []Warning, error) {
	var warnings []Warning
	if w := ValidateInstallments(cfg.Installments); w != nil {
		warnings = append(warnings, *w)
	}

	switch cfg.Mode {
	case draft.ModePerService:
		return e.renderPerService(services), warnings, nil
	case draft.ModeSummed:
		return e.renderSummed(cfg, services), warnings, nil
	case draft.ModeGlobal:
		if cfg.InitialPayment.IsZero() && cfg.MonthlyRetainer.IsZero() {
			return "", nil, &PreconditionError{
				Code:    ErrCodeGlobalAmountsZero,
				Message: "global pricing requires an initial payment or a monthly retainer",
			}
		}
		return e.renderGlobal(cfg, clientObjective), warnings, nil
	default:
		return "", nil, &PreconditionError{
			Code:    "UNKNOWN_PRICING_MODE",
			Message: fmt.Sprintf("unknown pricing mode %q", cfg.Mode),
		}
	}
}

// renderPerService itemizes each selected service on its own lettered
// line, then appends a totals block summing all lines.
func (e *Engine) renderPerService(services []draft.ServiceSelection) string {
	var paragraphs []string
	idx := 0
	for _, s := range services {
		if !s.Selected {
			continue
		}
		paragraphs = append(paragraphs, fmt.Sprintf("%s) %s: %s", letterLabel(idx), s.Name, feeClause(s)))
		idx++
	}
	if idx == 0 {
		return ""
	}

	totals := ComputeTotals(services)
	paragraphs = append(paragraphs, fmt.Sprintf("Total initial fees: %s", totals.OneTime))
	if !totals.Monthly.IsZero() {
		paragraphs = append(paragraphs, fmt.Sprintf("Total monthly fees: %s", totals.Monthly))
	}
	return strings.Join(paragraphs, "\n\n")
}

// renderSummed lists service names only, then one combined total line.
// The monthly amount appears on the total line only when a retainer
// period is configured.
func (e *Engine) renderSummed(cfg draft.PricingConfig, services []draft.ServiceSelection) string {
	var names []string
	for _, s := range services {
		if s.Selected {
			names = append(names, "- "+s.Name)
		}
	}
	if len(names) == 0 {
		return ""
	}

	totals := ComputeTotals(services)
	total := fmt.Sprintf("Combined initial fee for the services above: %s.", totals.OneTime)
	if cfg.RetainerMonths > 0 && !totals.Monthly.IsZero() {
		total = fmt.Sprintf("Combined initial fee for the services above: %s, plus a monthly fee of %s for %d months.",
			totals.OneTime, totals.Monthly, cfg.RetainerMonths)
	}
	return strings.Join(names, "\n\n") + "\n\n" + total
}

// renderGlobal narrates the manually configured amounts as prose,
// ignoring per-service fees entirely. The initial payment is spelled
// out in words, the installment schedule becomes one sentence joined
// with commas and a final "and", and any template exclusions text is
// appended verbatim.
func (e *Engine) renderGlobal(cfg draft.PricingConfig, clientObjective string) string {
	var paragraphs []string

	if !cfg.InitialPayment.IsZero() {
		var b strings.Builder
		if clientObjective != "" {
			fmt.Fprintf(&b, "In order to %s, our firm proposes an initial payment of %s (%s)",
				clientObjective, AmountInWords(cfg.InitialPayment), cfg.InitialPayment)
		} else {
			fmt.Fprintf(&b, "Our firm proposes an initial payment of %s (%s)",
				AmountInWords(cfg.InitialPayment), cfg.InitialPayment)
		}
		if len(cfg.Installments) > 0 {
			b.WriteString(", payable ")
			b.WriteString(installmentSentence(cfg.Installments))
		}
		b.WriteString(".")
		paragraphs = append(paragraphs, b.String())
	}

	if !cfg.MonthlyRetainer.IsZero() {
		if cfg.RetainerMonths > 0 {
			paragraphs = append(paragraphs, fmt.Sprintf(
				"In addition, a monthly retainer of %s will apply for a period of %d months.",
				cfg.MonthlyRetainer, cfg.RetainerMonths))
		} else {
			paragraphs = append(paragraphs, fmt.Sprintf(
				"In addition, a monthly retainer of %s will apply on an ongoing basis.",
				cfg.MonthlyRetainer))
		}
	}

	if cfg.Exclusions != "" {
		paragraphs = append(paragraphs, cfg.Exclusions)
	}
	return strings.Join(paragraphs, "\n\n")
}

// feeClause renders a single service's fee components.
func feeClause(s draft.ServiceSelection) string {
	hasOneTime := s.FeeType.HasOneTime()
	hasMonthly := s.FeeType.HasMonthly()
	switch {
	case hasOneTime && hasMonthly:
		return fmt.Sprintf("initial fee of %s and monthly fee of %s", s.EffectiveFee(), s.EffectiveMonthlyFee())
	case hasMonthly:
		return fmt.Sprintf("monthly fee of %s", s.EffectiveMonthlyFee())
	default:
		return fmt.Sprintf("initial fee of %s", s.EffectiveFee())
	}
}

// installmentSentence joins installment clauses with commas, the last
// one with "and": "60% upon execution and 40% upon filing".
func installmentSentence(installments []draft.Installment) string {
	clauses := make([]string, len(installments))
	for i, inst := range installments {
		clauses[i] = fmt.Sprintf("%d%% %s", inst.Percentage, inst.Description)
	}
	return joinWithAnd(clauses)
}

// joinWithAnd joins items with commas and a final "and".
func joinWithAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

// letterLabel produces a, b, ..., z, aa, ab, ... for itemized lines.
func letterLabel(i int) string {
	label := ""
	for {
		label = string(rune('a'+i%26)) + label
		i = i/26 - 1
		if i < 0 {
			return label
		}
	}
}
