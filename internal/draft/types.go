package draft

import "time"

// FeeType declares which fee components a service charges.
type FeeType string

const (
	FeeOneTime FeeType = "one_time"
	FeeMonthly FeeType = "monthly"
	FeeBoth    FeeType = "both"
)

// HasOneTime reports whether the fee type includes an initial component.
func (f FeeType) HasOneTime() bool {
	return f == FeeOneTime || f == FeeBoth
}

// HasMonthly reports whether the fee type includes a recurring component.
func (f FeeType) HasMonthly() bool {
	return f == FeeMonthly || f == FeeBoth
}

// ServiceSelection is one catalog service as configured for a draft.
//
// Selections are created when the catalog loads and are never deleted,
// only deselected. Confidence is advisory: it drives the default
// Selected value and nothing else.
type ServiceSelection struct {
	ServiceID           string  `json:"service_id"`
	Name                string  `json:"name"`
	Selected            bool    `json:"selected"`
	Confidence          int     `json:"confidence"` // 0-100
	DefaultText         string  `json:"default_text,omitempty"`
	CustomText          string  `json:"custom_text,omitempty"`
	CustomFee           *Money  `json:"custom_fee,omitempty"`
	CustomMonthlyFee    *Money  `json:"custom_monthly_fee,omitempty"`
	SuggestedFee        Money   `json:"suggested_fee"`
	SuggestedMonthlyFee Money   `json:"suggested_monthly_fee"`
	FeeType             FeeType `json:"fee_type"`
}

// EffectiveFee resolves the initial fee: the custom fee when set,
// otherwise the catalog's suggestion (0 when the catalog has none).
func (s ServiceSelection) EffectiveFee() Money {
	if s.CustomFee != nil {
		return *s.CustomFee
	}
	return s.SuggestedFee
}

// EffectiveMonthlyFee resolves the monthly fee the same way.
func (s ServiceSelection) EffectiveMonthlyFee() Money {
	if s.CustomMonthlyFee != nil {
		return *s.CustomMonthlyFee
	}
	return s.SuggestedMonthlyFee
}

// PricingMode selects how monetary figures are derived and narrated.
type PricingMode string

const (
	// ModePerService itemizes each selected service with its own fees.
	ModePerService PricingMode = "per_service"
	// ModeSummed lists service names and a single combined total.
	ModeSummed PricingMode = "summed"
	// ModeGlobal narrates manually configured amounts, ignoring
	// per-service fees entirely.
	ModeGlobal PricingMode = "global"
)

// Installment is a named percentage slice of the initial payment.
type Installment struct {
	Percentage  int    `json:"percentage" yaml:"percentage"` // 0-100
	Description string `json:"description" yaml:"description"`
}

// PricingConfig holds the pricing state for a draft.
//
// TemplateRef, Exclusions and Guarantees come from a selected pricing
// template and only apply in global mode; leaving global mode clears
// the template reference.
type PricingConfig struct {
	Mode            PricingMode   `json:"mode"`
	InitialPayment  Money         `json:"initial_payment"`
	MonthlyRetainer Money         `json:"monthly_retainer"`
	RetainerMonths  int           `json:"retainer_months"`
	Installments    []Installment `json:"installments,omitempty"`
	TemplateRef     string        `json:"template_ref,omitempty"`
	Exclusions      string        `json:"exclusions,omitempty"`
	Guarantees      string        `json:"guarantees,omitempty"`
}

// TextOverride records one substitution of a section's generated text.
//
// INVARIANT: at most one override exists per section at any time. A new
// override for the same section replaces the prior one, but OriginalText
// always remains the pre-any-edit text so restore never drifts.
type TextOverride struct {
	SectionID    SectionID `json:"section_id"`
	OriginalText string    `json:"original_text"`
	NewText      string    `json:"new_text"`
	AIGenerated  bool      `json:"ai_generated"`
	Instruction  string    `json:"instruction,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// ServiceDescription is AI-expanded prose for one service.
type ServiceDescription struct {
	ServiceID    string   `json:"service_id"`
	ExpandedText string   `json:"expanded_text"`
	Objectives   []string `json:"objectives,omitempty"`
	Deliverables []string `json:"deliverables,omitempty"`
}

// GeneratedContent is optional AI output used as default section text.
// It is override-able like any other generated text.
type GeneratedContent struct {
	ServiceDescriptions []ServiceDescription `json:"service_descriptions,omitempty"`
	TransitionText      string               `json:"transition_text,omitempty"`
	ClosingText         string               `json:"closing_text,omitempty"`
}

// Description returns the generated description for a service, if any.
func (g *GeneratedContent) Description(serviceID string) (ServiceDescription, bool) {
	if g == nil {
		return ServiceDescription{}, false
	}
	for _, d := range g.ServiceDescriptions {
		if d.ServiceID == serviceID {
			return d, true
		}
	}
	return ServiceDescription{}, false
}

// Client identifies the proposal recipient.
type Client struct {
	Name        string `json:"name"`
	ContactName string `json:"contact_name,omitempty"`
	Industry    string `json:"industry,omitempty"`
	EntityCount int    `json:"entity_count,omitempty"`
	Address     string `json:"address,omitempty"`
	Matter      string `json:"matter,omitempty"` // free-text matter description
	Objective   string `json:"objective,omitempty"`
}

// Firm identifies the issuing law firm for letterhead and date lines.
type Firm struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
}
