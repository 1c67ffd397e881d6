package draft

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity. The version suffix
// enables future algorithm migration without colliding with old keys.
const (
	DomainDraft    = "lexdraft/draft/v1"
	DomainSnapshot = "lexdraft/snapshot/v1"
)

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data). The null byte separator
// prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Fingerprint computes a content-addressed identity for a draft plus
// its active overrides. Two drafts that would assemble to the same
// document always share a fingerprint; the render cache keys on it.
//
// The draft token is intentionally EXCLUDED: the fingerprint represents
// "what the document says", not "which editing session said it", so a
// re-opened session with identical state hits the same cache entry.
func Fingerprint(d Draft, overrides []TextOverride) (string, error) {
	obj := map[string]any{
		"client":    clientMap(d.Client),
		"firm":      firmMap(d.Firm),
		"services":  servicesList(d.Services),
		"pricing":   pricingMap(d.Pricing),
		"overrides": overridesList(overrides),
	}
	if d.Generated != nil {
		obj["generated"] = generatedMap(d.Generated)
	}

	canonical, err := MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	return hashWithDomain(DomainDraft, canonical), nil
}

func clientMap(c Client) map[string]any {
	return map[string]any{
		"name":         c.Name,
		"contact_name": c.ContactName,
		"industry":     c.Industry,
		"entity_count": c.EntityCount,
		"address":      c.Address,
		"matter":       c.Matter,
		"objective":    c.Objective,
	}
}

func firmMap(f Firm) map[string]any {
	return map[string]any{
		"name":    f.Name,
		"address": f.Address,
		"city":    f.City,
	}
}

func servicesList(services []ServiceSelection) []any {
	out := make([]any, len(services))
	for i, s := range services {
		m := map[string]any{
			"service_id":            s.ServiceID,
			"name":                  s.Name,
			"selected":              s.Selected,
			"confidence":            s.Confidence,
			"default_text":          s.DefaultText,
			"custom_text":           s.CustomText,
			"suggested_fee":         s.SuggestedFee,
			"suggested_monthly_fee": s.SuggestedMonthlyFee,
			"fee_type":              string(s.FeeType),
		}
		if s.CustomFee != nil {
			m["custom_fee"] = *s.CustomFee
		}
		if s.CustomMonthlyFee != nil {
			m["custom_monthly_fee"] = *s.CustomMonthlyFee
		}
		out[i] = m
	}
	return out
}

func pricingMap(p PricingConfig) map[string]any {
	installments := make([]any, len(p.Installments))
	for i, inst := range p.Installments {
		installments[i] = map[string]any{
			"percentage":  inst.Percentage,
			"description": inst.Description,
		}
	}
	return map[string]any{
		"mode":             string(p.Mode),
		"initial_payment":  p.InitialPayment,
		"monthly_retainer": p.MonthlyRetainer,
		"retainer_months":  p.RetainerMonths,
		"installments":     installments,
		"template_ref":     p.TemplateRef,
		"exclusions":       p.Exclusions,
		"guarantees":       p.Guarantees,
	}
}

func overridesList(overrides []TextOverride) []any {
	out := make([]any, len(overrides))
	for i, ov := range overrides {
		out[i] = map[string]any{
			"section_id":    ov.SectionID,
			"original_text": ov.OriginalText,
			"new_text":      ov.NewText,
			"ai_generated":  ov.AIGenerated,
			"instruction":   ov.Instruction,
			// RFC 3339 keeps the timestamp canonical and sortable.
			"timestamp": ov.Timestamp.UTC().Format("2006-01-02T15:04:05Z07:00"),
		}
	}
	return out
}

func generatedMap(g *GeneratedContent) map[string]any {
	descs := make([]any, len(g.ServiceDescriptions))
	for i, d := range g.ServiceDescriptions {
		descs[i] = map[string]any{
			"service_id":    d.ServiceID,
			"expanded_text": d.ExpandedText,
			"objectives":    stringList(d.Objectives),
			"deliverables":  stringList(d.Deliverables),
		}
	}
	return map[string]any{
		"service_descriptions": descs,
		"transition_text":      g.TransitionText,
		"closing_text":         g.ClosingText,
	}
}

func stringList(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
