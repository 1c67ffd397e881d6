package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "$0.00", Money(0).String())
	assert.Equal(t, "$15,000.00", FromUnits(15000).String())
	assert.Equal(t, "$1,234.56", Money(123456).String())
	assert.Equal(t, "$999.00", FromUnits(999).String())
}

func TestMoneyUnitsAndCents(t *testing.T) {
	m := Money(123456)
	assert.Equal(t, int64(1234), m.Units())
	assert.Equal(t, int64(56), m.Cents())
	assert.False(t, m.IsZero())
	assert.True(t, Money(0).IsZero())
}

func TestFeeTypeComponents(t *testing.T) {
	assert.True(t, FeeOneTime.HasOneTime())
	assert.False(t, FeeOneTime.HasMonthly())

	assert.False(t, FeeMonthly.HasOneTime())
	assert.True(t, FeeMonthly.HasMonthly())

	assert.True(t, FeeBoth.HasOneTime())
	assert.True(t, FeeBoth.HasMonthly())
}

func TestEffectiveFeeFallsBackToSuggested(t *testing.T) {
	s := ServiceSelection{SuggestedFee: FromUnits(3000), SuggestedMonthlyFee: FromUnits(500)}
	assert.Equal(t, FromUnits(3000), s.EffectiveFee())
	assert.Equal(t, FromUnits(500), s.EffectiveMonthlyFee())

	custom := FromUnits(2500)
	s.CustomFee = &custom
	assert.Equal(t, FromUnits(2500), s.EffectiveFee())
	assert.Equal(t, FromUnits(500), s.EffectiveMonthlyFee())
}

func TestEffectiveFeeMissingSuggestedDefaultsToZero(t *testing.T) {
	s := ServiceSelection{}
	assert.Equal(t, Money(0), s.EffectiveFee())
	assert.Equal(t, Money(0), s.EffectiveMonthlyFee())
}

func TestServiceSectionRoundTrip(t *testing.T) {
	id := ServiceSection("incorporation")
	assert.Equal(t, SectionID("service-incorporation"), id)
	assert.True(t, id.IsService())

	svc, ok := id.ServiceID()
	assert.True(t, ok)
	assert.Equal(t, "incorporation", svc)

	_, ok = SectionBackground.ServiceID()
	assert.False(t, ok)
}

func TestSectionKinds(t *testing.T) {
	assert.Equal(t, KindFixed, SectionLetterhead.Kind())
	assert.Equal(t, KindFixed, SectionAcceptance.Kind())
	assert.Equal(t, KindGenerated, SectionBackground.Kind())
	assert.Equal(t, KindGenerated, ServiceSection("x").Kind())
	assert.Equal(t, KindEditable, SectionPricingIntro.Kind())
	assert.Equal(t, KindEditable, SectionExclusions.Kind())
	// Unknown sections classify as editable so parsed user text survives.
	assert.Equal(t, KindEditable, SectionID("appendix").Kind())
}

func TestSectionRankOrdering(t *testing.T) {
	order := []SectionID{
		SectionLetterhead,
		SectionDate,
		SectionRecipient,
		SectionSalutation,
		SectionBackground,
		ServiceSection("a"),
		SectionTransition,
		SectionPricingIntro,
		SectionPricingLines,
		SectionInstallments,
		SectionRetainer,
		SectionExclusions,
		SectionGuarantees,
		SectionClosing,
		SectionAcceptance,
	}
	for i := 1; i < len(order); i++ {
		assert.LessOrEqual(t, order[i-1].Rank(), order[i].Rank(),
			"%s must not rank after %s", order[i-1], order[i])
	}
	assert.Equal(t, rankUnknown, SectionID("appendix").Rank())
}

func TestGeneratedContentDescriptionLookup(t *testing.T) {
	var nilContent *GeneratedContent
	_, ok := nilContent.Description("a")
	assert.False(t, ok)

	g := &GeneratedContent{ServiceDescriptions: []ServiceDescription{
		{ServiceID: "a", ExpandedText: "text a"},
		{ServiceID: "b", ExpandedText: "text b"},
	}}
	d, ok := g.Description("b")
	assert.True(t, ok)
	assert.Equal(t, "text b", d.ExpandedText)

	_, ok = g.Description("c")
	assert.False(t, ok)
}
