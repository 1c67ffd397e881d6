package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lexdraft/lexdraft/internal/draft"
)

func money(units int64) *draft.Money {
	m := draft.FromUnits(units)
	return &m
}

func TestComputeTotalsSumsCustomOverSuggested(t *testing.T) {
	services := []draft.ServiceSelection{
		{ServiceID: "a", Selected: true, CustomFee: money(10000), SuggestedFee: draft.FromUnits(1), FeeType: draft.FeeOneTime},
		{ServiceID: "b", Selected: true, SuggestedFee: draft.FromUnits(5000), FeeType: draft.FeeOneTime},
	}
	totals := ComputeTotals(services)
	assert.Equal(t, draft.FromUnits(15000), totals.OneTime)
	assert.Equal(t, draft.Money(0), totals.Monthly)
}

func TestComputeTotalsDeselectionRemovesExactContribution(t *testing.T) {
	services := []draft.ServiceSelection{
		{ServiceID: "a", Selected: true, CustomFee: money(10000), FeeType: draft.FeeOneTime},
		{ServiceID: "b", Selected: true, CustomFee: money(5000), FeeType: draft.FeeOneTime},
		{ServiceID: "c", Selected: true, CustomFee: money(3000), FeeType: draft.FeeOneTime},
	}
	full := ComputeTotals(services)

	services[1].Selected = false
	without := ComputeTotals(services)
	assert.Equal(t, full.OneTime-draft.FromUnits(5000), without.OneTime)
}

func TestComputeTotalsFeeTypeRouting(t *testing.T) {
	services := []draft.ServiceSelection{
		{ServiceID: "one", Selected: true, CustomFee: money(100), CustomMonthlyFee: money(999), FeeType: draft.FeeOneTime},
		{ServiceID: "mon", Selected: true, CustomFee: money(999), CustomMonthlyFee: money(200), FeeType: draft.FeeMonthly},
		{ServiceID: "both", Selected: true, CustomFee: money(300), CustomMonthlyFee: money(400), FeeType: draft.FeeBoth},
	}
	totals := ComputeTotals(services)
	// one_time ignores its monthly fee; monthly ignores its initial fee.
	assert.Equal(t, draft.FromUnits(400), totals.OneTime)
	assert.Equal(t, draft.FromUnits(600), totals.Monthly)
}

func TestComputeTotalsUnselectedContributeNothing(t *testing.T) {
	services := []draft.ServiceSelection{
		{ServiceID: "a", Selected: false, CustomFee: money(10000), FeeType: draft.FeeOneTime},
	}
	assert.Equal(t, Totals{}, ComputeTotals(services))
}

func TestComputeTotalsMissingSuggestedFeesDefaultToZero(t *testing.T) {
	services := []draft.ServiceSelection{
		{ServiceID: "a", Selected: true, FeeType: draft.FeeBoth},
	}
	assert.Equal(t, Totals{}, ComputeTotals(services))
}
