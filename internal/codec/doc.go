// Package codec serializes document sections to anchored markup and
// parses edited markup back into section text.
//
// # Markup shape
//
// Each section renders as one block-level element carrying its id:
//
//	<section data-section-id="background">
//	<p>First paragraph.</p>
//	<p>Second paragraph.</p>
//	</section>
//
// The codec's correctness depends on anchor uniqueness: one anchor per
// section id. Duplicate anchors for the same id are a caller error;
// the first occurrence wins.
//
// # Round-trip law
//
// For any section whose text contains no markup-reserved characters,
//
//	Parse(Render([]draft.DocumentSection{s}))[s.ID] == NormalizeWhitespace(s.Text)
//
// Parsing is whitespace-insensitive: runs of whitespace collapse to
// single spaces, but explicit paragraph breaks are preserved.
package codec
