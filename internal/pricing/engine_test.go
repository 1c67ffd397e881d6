package pricing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexdraft/lexdraft/internal/draft"
)

// scenarioServices mirrors the standard two-service setup: A with a
// one-time fee of 10,000 and B with 5,000 initial plus 2,000 monthly.
func scenarioServices() []draft.ServiceSelection {
	return []draft.ServiceSelection{
		{ServiceID: "a", Name: "Incorporation", Selected: true, CustomFee: money(10000), FeeType: draft.FeeOneTime},
		{ServiceID: "b", Name: "Compliance Program", Selected: true, CustomFee: money(5000), CustomMonthlyFee: money(2000), FeeType: draft.FeeBoth},
	}
}

func TestScenarioTotals(t *testing.T) {
	totals := ComputeTotals(scenarioServices())
	assert.Equal(t, draft.FromUnits(15000), totals.OneTime)
	assert.Equal(t, draft.FromUnits(2000), totals.Monthly)
}

func TestRenderPerServiceNarrative(t *testing.T) {
	engine := NewEngine()
	cfg := draft.PricingConfig{Mode: draft.ModePerService}

	narrative, warnings, err := engine.RenderNarrative(cfg, scenarioServices(), "")
	require.NoError(t, err)
	assert.Empty(t, warnings)

	// Two lettered lines in selection order.
	assert.Contains(t, narrative, "a) Incorporation: initial fee of $10,000.00")
	assert.Contains(t, narrative, "b) Compliance Program: initial fee of $5,000.00 and monthly fee of $2,000.00")
	assert.Less(t, strings.Index(narrative, "a) Incorporation"), strings.Index(narrative, "b) Compliance"))

	// Totals block summing all lines.
	assert.Contains(t, narrative, "Total initial fees: $15,000.00")
	assert.Contains(t, narrative, "Total monthly fees: $2,000.00")
}

func TestRenderPerServiceOmitsMonthlyTotalWhenZero(t *testing.T) {
	engine := NewEngine()
	services := []draft.ServiceSelection{
		{ServiceID: "a", Name: "Incorporation", Selected: true, CustomFee: money(10000), FeeType: draft.FeeOneTime},
	}
	narrative, _, err := engine.RenderNarrative(draft.PricingConfig{Mode: draft.ModePerService}, services, "")
	require.NoError(t, err)
	assert.NotContains(t, narrative, "Total monthly fees")
}

func TestRenderSummedNarrativeNamesOnly(t *testing.T) {
	engine := NewEngine()
	cfg := draft.PricingConfig{Mode: draft.ModeSummed, RetainerMonths: 12}

	narrative, warnings, err := engine.RenderNarrative(cfg, scenarioServices(), "")
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Contains(t, narrative, "- Incorporation")
	assert.Contains(t, narrative, "- Compliance Program")
	// Names only: no per-line amounts.
	assert.NotContains(t, narrative, "Incorporation: initial")
	assert.NotContains(t, narrative, "a)")

	assert.Contains(t, narrative, "$15,000.00")
	assert.Contains(t, narrative, "monthly fee of $2,000.00 for 12 months")
}

func TestRenderSummedNoRetainerPeriodOmitsMonthly(t *testing.T) {
	engine := NewEngine()
	cfg := draft.PricingConfig{Mode: draft.ModeSummed}

	narrative, _, err := engine.RenderNarrative(cfg, scenarioServices(), "")
	require.NoError(t, err)
	assert.Contains(t, narrative, "$15,000.00")
	assert.NotContains(t, narrative, "monthly")
}

func TestRenderGlobalNarrative(t *testing.T) {
	engine := NewEngine()
	cfg := draft.PricingConfig{
		Mode:            draft.ModeGlobal,
		InitialPayment:  draft.FromUnits(15000),
		MonthlyRetainer: draft.FromUnits(2000),
		RetainerMonths:  12,
		Installments: []draft.Installment{
			{Percentage: 60, Description: "upon execution of this agreement"},
			{Percentage: 40, Description: "upon filing"},
		},
		Exclusions: "Court costs and filing fees are not included.",
	}

	narrative, warnings, err := engine.RenderNarrative(cfg, scenarioServices(), "consolidate its corporate structure")
	require.NoError(t, err)
	assert.Empty(t, warnings)

	// Amount spelled out in words, with the figure alongside.
	assert.Contains(t, narrative, "FIFTEEN THOUSAND AND 00/100 DOLLARS ($15,000.00)")
	// Per-service fees are ignored entirely in global mode.
	assert.NotContains(t, narrative, "$10,000.00")
	// Objective woven into the opening sentence.
	assert.Contains(t, narrative, "consolidate its corporate structure")
	// Installments joined with a final "and".
	assert.Contains(t, narrative, "60% upon execution of this agreement and 40% upon filing")
	// Retainer sentence with the retention period.
	assert.Contains(t, narrative, "monthly retainer of $2,000.00 will apply for a period of 12 months")
	// Exclusions appended verbatim.
	assert.True(t, strings.HasSuffix(narrative, "Court costs and filing fees are not included."))
}

func TestRenderGlobalThreeInstallmentsCommaJoin(t *testing.T) {
	engine := NewEngine()
	cfg := draft.PricingConfig{
		Mode:           draft.ModeGlobal,
		InitialPayment: draft.FromUnits(9000),
		Installments: []draft.Installment{
			{Percentage: 50, Description: "upon signing"},
			{Percentage: 30, Description: "upon first hearing"},
			{Percentage: 20, Description: "upon resolution"},
		},
	}
	narrative, _, err := engine.RenderNarrative(cfg, nil, "")
	require.NoError(t, err)
	assert.Contains(t, narrative, "50% upon signing, 30% upon first hearing and 20% upon resolution")
}

func TestRenderGlobalZeroAmountsRefused(t *testing.T) {
	engine := NewEngine()
	cfg := draft.PricingConfig{Mode: draft.ModeGlobal}

	narrative, warnings, err := engine.RenderNarrative(cfg, scenarioServices(), "")
	require.Error(t, err)
	assert.True(t, IsPreconditionError(err))
	assert.Empty(t, narrative)
	assert.Empty(t, warnings)
}

func TestRenderNarrativeCarriesInstallmentWarning(t *testing.T) {
	engine := NewEngine()
	cfg := draft.PricingConfig{
		Mode:           draft.ModeGlobal,
		InitialPayment: draft.FromUnits(1000),
		Installments: []draft.Installment{
			{Percentage: 60, Description: "upon signing"},
			{Percentage: 30, Description: "upon delivery"},
		},
	}

	narrative, warnings, err := engine.RenderNarrative(cfg, nil, "")
	require.NoError(t, err)
	// Generation proceeds despite the mismatch.
	assert.NotEmpty(t, narrative)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarnInstallmentSum, warnings[0].Code)
}

func TestRenderNarrativeNoSelectedServices(t *testing.T) {
	engine := NewEngine()
	narrative, _, err := engine.RenderNarrative(draft.PricingConfig{Mode: draft.ModePerService}, nil, "")
	require.NoError(t, err)
	assert.Empty(t, narrative)
}

func TestLetterLabel(t *testing.T) {
	assert.Equal(t, "a", letterLabel(0))
	assert.Equal(t, "z", letterLabel(25))
	assert.Equal(t, "aa", letterLabel(26))
	assert.Equal(t, "ab", letterLabel(27))
}

func TestJoinWithAnd(t *testing.T) {
	assert.Equal(t, "", joinWithAnd(nil))
	assert.Equal(t, "a", joinWithAnd([]string{"a"}))
	assert.Equal(t, "a and b", joinWithAnd([]string{"a", "b"}))
	assert.Equal(t, "a, b and c", joinWithAnd([]string{"a", "b", "c"}))
}
