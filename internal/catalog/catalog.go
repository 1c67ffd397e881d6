// Package catalog loads the firm's service catalog and pricing
// templates from CUE files and scores services against a client's
// matter description.
//
// CUE gives the catalog schema-checked authoring: malformed entries
// fail at load time with file positions, not at assembly time.
package catalog

import (
	"fmt"
	"strings"

	"github.com/lexdraft/lexdraft/internal/draft"
)

// Service is one catalog entry a proposal can offer.
type Service struct {
	ID                  string        `json:"id"`
	Name                string        `json:"name"`
	SuggestedFee        int64         `json:"suggested_fee"`         // whole currency units
	SuggestedMonthlyFee int64         `json:"suggested_monthly_fee"` // whole currency units
	FeeType             draft.FeeType `json:"fee_type"`
	DefaultText         string        `json:"default_text"`
	Keywords            []string      `json:"keywords"`
}

// Template is a reusable global-mode pricing configuration.
type Template struct {
	Name            string              `json:"name"`
	InitialPayment  int64               `json:"initial_payment"` // whole currency units
	MonthlyRetainer int64               `json:"monthly_retainer"`
	RetainerMonths  int                 `json:"retainer_months"`
	Installments    []draft.Installment `json:"installments"`
	Exclusions      string              `json:"exclusions"`
	Guarantees      string              `json:"guarantees"`
}

// Catalog is the loaded service catalog plus pricing templates.
type Catalog struct {
	Services  []Service  `json:"services"`
	Templates []Template `json:"templates"`
}

// Validate checks invariants CUE's schema cannot express across
// entries: unique ids and names, known fee types, sane percentages.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool)
	for _, s := range c.Services {
		if s.ID == "" {
			return fmt.Errorf("catalog service %q: empty id", s.Name)
		}
		if seen[s.ID] {
			return fmt.Errorf("catalog service id %q appears twice", s.ID)
		}
		seen[s.ID] = true
		switch s.FeeType {
		case draft.FeeOneTime, draft.FeeMonthly, draft.FeeBoth:
		default:
			return fmt.Errorf("catalog service %q: unknown fee type %q", s.ID, s.FeeType)
		}
		if s.SuggestedFee < 0 || s.SuggestedMonthlyFee < 0 {
			return fmt.Errorf("catalog service %q: negative fee", s.ID)
		}
	}

	names := make(map[string]bool)
	for _, t := range c.Templates {
		if t.Name == "" {
			return fmt.Errorf("pricing template with empty name")
		}
		if names[t.Name] {
			return fmt.Errorf("pricing template %q appears twice", t.Name)
		}
		names[t.Name] = true
		for _, inst := range t.Installments {
			if inst.Percentage < 0 || inst.Percentage > 100 {
				return fmt.Errorf("pricing template %q: installment percentage %d out of range", t.Name, inst.Percentage)
			}
		}
	}
	return nil
}

// TemplateByName finds a pricing template.
func (c *Catalog) TemplateByName(name string) (Template, bool) {
	for _, t := range c.Templates {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}

// ApplyTemplate returns a global-mode pricing config populated from a
// template.
func ApplyTemplate(t Template) draft.PricingConfig {
	installments := make([]draft.Installment, len(t.Installments))
	copy(installments, t.Installments)
	return draft.PricingConfig{
		Mode:            draft.ModeGlobal,
		InitialPayment:  draft.FromUnits(t.InitialPayment),
		MonthlyRetainer: draft.FromUnits(t.MonthlyRetainer),
		RetainerMonths:  t.RetainerMonths,
		Installments:    installments,
		TemplateRef:     t.Name,
		Exclusions:      t.Exclusions,
		Guarantees:      t.Guarantees,
	}
}

// NewSelections builds the draft's service selections from the catalog:
// one selection per service in catalog order, never fewer. Confidence
// comes from keyword scoring against the client's matter description
// and drives the default Selected flag; it is advisory after that.
func NewSelections(c *Catalog, client draft.Client) []draft.ServiceSelection {
	selections := make([]draft.ServiceSelection, len(c.Services))
	for i, s := range c.Services {
		confidence := Score(client.Matter, s.Keywords)
		selections[i] = draft.ServiceSelection{
			ServiceID:           s.ID,
			Name:                s.Name,
			Selected:            confidence >= SelectThreshold,
			Confidence:          confidence,
			DefaultText:         s.DefaultText,
			SuggestedFee:        draft.FromUnits(s.SuggestedFee),
			SuggestedMonthlyFee: draft.FromUnits(s.SuggestedMonthlyFee),
			FeeType:             s.FeeType,
		}
	}
	return selections
}

// SelectThreshold is the confidence at which a service defaults to
// selected.
const SelectThreshold = 50

// Score rates how strongly a matter description suggests a service,
// 0-100, by the fraction of the service's keywords present in the
// matter text. No keywords means no signal, scored zero.
func Score(matter string, keywords []string) int {
	if len(keywords) == 0 || strings.TrimSpace(matter) == "" {
		return 0
	}
	lowered := strings.ToLower(matter)
	hits := 0
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lowered, strings.ToLower(kw)) {
			hits++
		}
	}
	return hits * 100 / len(keywords)
}
