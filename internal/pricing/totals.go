package pricing

import "github.com/lexdraft/lexdraft/internal/draft"

// Totals holds the monetary figures derived from service selections.
type Totals struct {
	OneTime draft.Money `json:"one_time"`
	Monthly draft.Money `json:"monthly"`
}

// ComputeTotals sums fees across selected services.
//
// Per selected service, the custom fee (falling back to the catalog
// suggestion) contributes to OneTime when the fee type includes an
// initial component, and the monthly fee contributes to Monthly when it
// includes a recurring component. Unselected services contribute
// nothing.
func ComputeTotals(services []draft.ServiceSelection) Totals {
	var t Totals
	for _, s := range services {
		if !s.Selected {
			continue
		}
		if s.FeeType.HasOneTime() {
			t.OneTime += s.EffectiveFee()
		}
		if s.FeeType.HasMonthly() {
			t.Monthly += s.EffectiveMonthlyFee()
		}
	}
	return t
}
