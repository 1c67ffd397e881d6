package harness

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lexdraft/lexdraft/internal/draft"
)

// Scenario describes one proposal draft and the checks to run against
// its assembled document.
type Scenario struct {
	// Name uniquely identifies this scenario. It doubles as the golden
	// file name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// DocumentDate is the date printed on the proposal, "2006-01-02".
	DocumentDate string `yaml:"document_date"`

	// Token is an optional fixed draft token. Defaults to
	// "scenario-draft-default" so golden output stays stable.
	Token string `yaml:"token,omitempty"`

	Client ClientSpec `yaml:"client"`
	Firm   FirmSpec   `yaml:"firm"`

	// Services lists the catalog selections for the draft.
	Services []ServiceSpec `yaml:"services"`

	Pricing PricingSpec `yaml:"pricing"`

	// Overrides are applied in order before assembly. A later override
	// for the same section replaces the earlier one.
	Overrides []OverrideSpec `yaml:"overrides,omitempty"`

	// Restores removes overrides again, by section id, after all
	// overrides were applied.
	Restores []string `yaml:"restores,omitempty"`

	// Assertions validate the assembled document.
	// Supported types: section_contains, section_absent, section_order,
	// warning_contains.
	Assertions []Assertion `yaml:"assertions"`
}

// ClientSpec mirrors draft.Client for YAML decoding.
type ClientSpec struct {
	Name        string `yaml:"name"`
	ContactName string `yaml:"contact_name,omitempty"`
	Industry    string `yaml:"industry,omitempty"`
	EntityCount int    `yaml:"entity_count,omitempty"`
	Address     string `yaml:"address,omitempty"`
	Matter      string `yaml:"matter,omitempty"`
	Objective   string `yaml:"objective,omitempty"`
}

// FirmSpec mirrors draft.Firm for YAML decoding.
type FirmSpec struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address,omitempty"`
	City    string `yaml:"city,omitempty"`
}

// ServiceSpec is one service selection. Fees are whole currency units;
// pointer fields distinguish "not set" from zero.
type ServiceSpec struct {
	ServiceID           string `yaml:"service_id"`
	Name                string `yaml:"name"`
	Selected            bool   `yaml:"selected"`
	FeeType             string `yaml:"fee_type"`
	DefaultText         string `yaml:"default_text,omitempty"`
	CustomText          string `yaml:"custom_text,omitempty"`
	SuggestedFee        int64  `yaml:"suggested_fee,omitempty"`
	SuggestedMonthlyFee int64  `yaml:"suggested_monthly_fee,omitempty"`
	CustomFee           *int64 `yaml:"custom_fee,omitempty"`
	CustomMonthlyFee    *int64 `yaml:"custom_monthly_fee,omitempty"`
}

// PricingSpec mirrors draft.PricingConfig, fees in whole units.
type PricingSpec struct {
	Mode            string              `yaml:"mode"`
	InitialPayment  int64               `yaml:"initial_payment,omitempty"`
	MonthlyRetainer int64               `yaml:"monthly_retainer,omitempty"`
	RetainerMonths  int                 `yaml:"retainer_months,omitempty"`
	Installments    []draft.Installment `yaml:"installments,omitempty"`
	Exclusions      string              `yaml:"exclusions,omitempty"`
	Guarantees      string              `yaml:"guarantees,omitempty"`
}

// OverrideSpec is one text substitution to apply before assembly.
type OverrideSpec struct {
	Section     string `yaml:"section"`
	Text        string `yaml:"text"`
	AIGenerated bool   `yaml:"ai_generated,omitempty"`
	Instruction string `yaml:"instruction,omitempty"`
}

// Assertion validates the assembled document.
type Assertion struct {
	// Type specifies the assertion type:
	// - "section_contains": section is present and its text contains Substring
	// - "section_absent": section was omitted
	// - "section_order": sections appear in this relative order
	// - "warning_contains": some warning message contains Substring
	Type string `yaml:"type"`

	// Section is the section id (section_contains, section_absent).
	Section string `yaml:"section,omitempty"`

	// Substring is the expected text fragment (section_contains,
	// warning_contains).
	Substring string `yaml:"substring,omitempty"`

	// Sections is the expected relative order (section_order).
	Sections []string `yaml:"sections,omitempty"`
}

// Assertion type constants.
const (
	AssertSectionContains = "section_contains"
	AssertSectionAbsent   = "section_absent"
	AssertSectionOrder    = "section_order"
	AssertWarningContains = "warning_contains"
)

const defaultToken = "scenario-draft-default"

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "assertion:" vs "assertions:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if err := s.ValidateDraft(); err != nil {
		return err
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}
	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// ValidateDraft checks the draft-describing fields only, ignoring
// assertions. The CLI uses this to validate standalone draft files.
func (s *Scenario) ValidateDraft() error {
	if s.DocumentDate == "" {
		return fmt.Errorf("document_date is required")
	}
	if _, err := time.Parse("2006-01-02", s.DocumentDate); err != nil {
		return fmt.Errorf("document_date must be YYYY-MM-DD: %w", err)
	}

	if s.Client.Name == "" {
		return fmt.Errorf("client.name is required")
	}
	if s.Firm.Name == "" {
		return fmt.Errorf("firm.name is required")
	}

	switch draft.PricingMode(s.Pricing.Mode) {
	case draft.ModePerService, draft.ModeSummed, draft.ModeGlobal:
	default:
		return fmt.Errorf("pricing.mode must be per_service, summed or global, got %q", s.Pricing.Mode)
	}

	for i, svc := range s.Services {
		if svc.ServiceID == "" {
			return fmt.Errorf("services[%d]: service_id is required", i)
		}
		if svc.Name == "" {
			return fmt.Errorf("services[%d]: name is required", i)
		}
		switch draft.FeeType(svc.FeeType) {
		case draft.FeeOneTime, draft.FeeMonthly, draft.FeeBoth:
		default:
			return fmt.Errorf("services[%d]: fee_type must be one_time, monthly or both, got %q", i, svc.FeeType)
		}
	}

	for i, ov := range s.Overrides {
		if ov.Section == "" {
			return fmt.Errorf("overrides[%d]: section is required", i)
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertSectionContains:
		if a.Section == "" {
			return fmt.Errorf("assertions[%d]: section is required for section_contains", index)
		}
		if a.Substring == "" {
			return fmt.Errorf("assertions[%d]: substring is required for section_contains", index)
		}
	case AssertSectionAbsent:
		if a.Section == "" {
			return fmt.Errorf("assertions[%d]: section is required for section_absent", index)
		}
	case AssertSectionOrder:
		if len(a.Sections) < 2 {
			return fmt.Errorf("assertions[%d]: sections list with at least two entries is required for section_order", index)
		}
	case AssertWarningContains:
		if a.Substring == "" {
			return fmt.Errorf("assertions[%d]: substring is required for warning_contains", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}

// BuildDraft converts the scenario into a draft value.
func (s *Scenario) BuildDraft() draft.Draft {
	token := s.Token
	if token == "" {
		token = defaultToken
	}

	services := make([]draft.ServiceSelection, len(s.Services))
	for i, svc := range s.Services {
		services[i] = draft.ServiceSelection{
			ServiceID:           svc.ServiceID,
			Name:                svc.Name,
			Selected:            svc.Selected,
			DefaultText:         svc.DefaultText,
			CustomText:          svc.CustomText,
			SuggestedFee:        draft.FromUnits(svc.SuggestedFee),
			SuggestedMonthlyFee: draft.FromUnits(svc.SuggestedMonthlyFee),
			FeeType:             draft.FeeType(svc.FeeType),
		}
		if svc.CustomFee != nil {
			fee := draft.FromUnits(*svc.CustomFee)
			services[i].CustomFee = &fee
		}
		if svc.CustomMonthlyFee != nil {
			fee := draft.FromUnits(*svc.CustomMonthlyFee)
			services[i].CustomMonthlyFee = &fee
		}
	}

	return draft.Draft{
		Token: token,
		Client: draft.Client{
			Name:        s.Client.Name,
			ContactName: s.Client.ContactName,
			Industry:    s.Client.Industry,
			EntityCount: s.Client.EntityCount,
			Address:     s.Client.Address,
			Matter:      s.Client.Matter,
			Objective:   s.Client.Objective,
		},
		Firm: draft.Firm{
			Name:    s.Firm.Name,
			Address: s.Firm.Address,
			City:    s.Firm.City,
		},
		Services: services,
		Pricing: draft.PricingConfig{
			Mode:            draft.PricingMode(s.Pricing.Mode),
			InitialPayment:  draft.FromUnits(s.Pricing.InitialPayment),
			MonthlyRetainer: draft.FromUnits(s.Pricing.MonthlyRetainer),
			RetainerMonths:  s.Pricing.RetainerMonths,
			Installments:    s.Pricing.Installments,
			Exclusions:      s.Pricing.Exclusions,
			Guarantees:      s.Pricing.Guarantees,
		},
	}
}
