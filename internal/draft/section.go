package draft

import "strings"

// SectionID is a typed reference to a named document section.
// Well-known sections use the constants below; per-service sections
// are built with ServiceSection and never by hand-concatenating strings.
type SectionID string

// Well-known section identifiers, in canonical document order.
const (
	SectionLetterhead   SectionID = "letterhead"
	SectionDate         SectionID = "date"
	SectionRecipient    SectionID = "recipient"
	SectionSalutation   SectionID = "salutation"
	SectionBackground   SectionID = "background"
	SectionTransition   SectionID = "transition"
	SectionPricingIntro SectionID = "pricing-intro"
	SectionPricingLines SectionID = "pricing-lines"
	SectionInstallments SectionID = "installments"
	SectionRetainer     SectionID = "retainer"
	SectionExclusions   SectionID = "exclusions"
	SectionGuarantees   SectionID = "guarantees"
	SectionClosing      SectionID = "closing-farewell"
	SectionAcceptance   SectionID = "acceptance"
)

// servicePrefix namespaces per-service description sections.
const servicePrefix = "service-"

// ServiceSection returns the section identifier for a service description.
func ServiceSection(serviceID string) SectionID {
	return SectionID(servicePrefix + serviceID)
}

// IsService reports whether the identifier names a service description.
func (id SectionID) IsService() bool {
	return strings.HasPrefix(string(id), servicePrefix)
}

// ServiceID returns the service identifier embedded in a service section
// id, or ("", false) for non-service sections.
func (id SectionID) ServiceID() (string, bool) {
	if !id.IsService() {
		return "", false
	}
	return strings.TrimPrefix(string(id), servicePrefix), true
}

// SectionKind classifies how a section's text is produced and whether a
// user may override it.
type SectionKind string

const (
	// KindFixed sections are structural (letterhead, date, signature
	// blocks). They are rendered but never overridden or extracted.
	KindFixed SectionKind = "fixed"
	// KindGenerated sections default to AI or engine output and accept
	// overrides.
	KindGenerated SectionKind = "generated"
	// KindEditable sections default to deterministic templates and
	// accept overrides.
	KindEditable SectionKind = "editable"
)

// Kind returns the classification for a section identifier.
// Unknown identifiers classify as editable so that parsing an edited
// document never silently drops user text.
func (id SectionID) Kind() SectionKind {
	if id.IsService() {
		return KindGenerated
	}
	switch id {
	case SectionLetterhead, SectionDate, SectionRecipient, SectionSalutation, SectionAcceptance:
		return KindFixed
	case SectionBackground, SectionTransition, SectionClosing, SectionPricingLines:
		return KindGenerated
	default:
		return KindEditable
	}
}

// Rank returns the section's position in the canonical document order.
// Service sections share a rank band; their relative order is the
// service selection order, which the assembler preserves.
func (id SectionID) Rank() int {
	if id.IsService() {
		return rankService
	}
	if r, ok := sectionRanks[id]; ok {
		return r
	}
	// Unknown sections sort after everything well-known.
	return rankUnknown
}

const (
	rankService = 5
	rankUnknown = 99
)

var sectionRanks = map[SectionID]int{
	SectionLetterhead:   0,
	SectionDate:         1,
	SectionRecipient:    2,
	SectionSalutation:   3,
	SectionBackground:   4,
	SectionTransition:   6,
	SectionPricingIntro: 7,
	SectionPricingLines: 8,
	SectionInstallments: 9,
	SectionRetainer:     10,
	SectionExclusions:   11,
	SectionGuarantees:   12,
	SectionClosing:      13,
	SectionAcceptance:   14,
}

// DocumentSection is one named, independently addressable block of the
// rendered proposal.
type DocumentSection struct {
	ID   SectionID   `json:"id"`
	Kind SectionKind `json:"kind"`
	Text string      `json:"text"`
}
