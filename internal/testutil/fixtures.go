package testutil

import "github.com/lexdraft/lexdraft/internal/draft"

// SampleFirm returns the firm used across test fixtures.
func SampleFirm() draft.Firm {
	return draft.Firm{
		Name:    "Whitfield & Associates LLP",
		Address: "500 Congress Ave, Suite 1200",
		City:    "Austin",
	}
}

// SampleClient returns a client with every contact field populated.
func SampleClient() draft.Client {
	return draft.Client{
		Name:        "Acme Holdings LLC",
		ContactName: "Jordan Reyes",
		Industry:    "manufacturing",
		EntityCount: 3,
		Address:     "1 Factory Rd, Dallas, TX",
		Matter:      "multi-entity restructuring",
		Objective:   "consolidate three operating entities under a single holding company",
	}
}

// SampleServices returns two selected services and one deselected one,
// covering all three fee types.
func SampleServices() []draft.ServiceSelection {
	return []draft.ServiceSelection{
		{
			ServiceID:    "incorporation",
			Name:         "Entity Incorporation",
			Selected:     true,
			Confidence:   90,
			DefaultText:  "We will form the new holding entity and prepare its governing documents.",
			SuggestedFee: draft.FromUnits(12000),
			FeeType:      draft.FeeOneTime,
		},
		{
			ServiceID:           "compliance",
			Name:                "Regulatory Compliance Review",
			Selected:            true,
			Confidence:          75,
			DefaultText:         "We will review ongoing regulatory obligations across all entities.",
			SuggestedFee:        draft.FromUnits(5000),
			SuggestedMonthlyFee: draft.FromUnits(1500),
			FeeType:             draft.FeeBoth,
		},
		{
			ServiceID:           "labor",
			Name:                "Labor Advisory",
			Selected:            false,
			Confidence:          30,
			DefaultText:         "We will advise on employment matters as they arise.",
			SuggestedMonthlyFee: draft.FromUnits(900),
			FeeType:             draft.FeeMonthly,
		},
	}
}

// SampleDraft returns a complete per-service-mode draft with a fixed
// token, suitable for golden comparison.
func SampleDraft() draft.Draft {
	return draft.Draft{
		Token:    "draft-00000000-0000-0000-0000-000000000001",
		Client:   SampleClient(),
		Firm:     SampleFirm(),
		Services: SampleServices(),
		Pricing: draft.PricingConfig{
			Mode:           draft.ModePerService,
			RetainerMonths: 6,
		},
	}
}
