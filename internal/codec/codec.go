package codec

import (
	"html"
	"strings"

	"github.com/lexdraft/lexdraft/internal/draft"
)

const (
	anchorOpen  = `<section data-section-id="`
	anchorClose = `</section>`
)

// Render serializes sections into anchored markup in the order given.
// Each section becomes one <section> element tagged with its id; the
// section text splits into <p> blocks on blank lines. Sections with
// empty text are skipped, never rendered empty.
func Render(sections []draft.DocumentSection) string {
	var b strings.Builder
	for _, s := range sections {
		if strings.TrimSpace(s.Text) == "" {
			continue
		}
		b.WriteString(renderFragment(s.ID, s.Text))
	}
	return b.String()
}

// renderFragment builds the markup block for one section.
func renderFragment(id draft.SectionID, text string) string {
	var b strings.Builder
	b.WriteString(anchorOpen)
	b.WriteString(string(id))
	b.WriteString("\">\n")
	for _, para := range splitParagraphs(text) {
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(strings.TrimSpace(para)))
		b.WriteString("</p>\n")
	}
	b.WriteString(anchorClose)
	b.WriteString("\n")
	return b.String()
}

// Parse extracts the current text of every overridable section anchor
// found in the markup, keyed by section id. Text comes back trimmed
// and whitespace-normalized, with paragraph breaks preserved.
//
// Fixed-kind sections (letterhead, date, signature blocks) are skipped:
// there is nothing to extract an edit from. Anchors missing from the
// markup are simply absent from the result - the assembler's text for
// those sections remains authoritative.
func Parse(markup string) map[draft.SectionID]string {
	out := make(map[draft.SectionID]string)
	for _, a := range findAnchors(markup) {
		if a.id.Kind() == draft.KindFixed {
			continue
		}
		if _, seen := out[a.id]; seen {
			// Duplicate anchors are a caller error; first wins.
			continue
		}
		out[a.id] = extractText(markup[a.innerStart:a.innerEnd])
	}
	return out
}

// InsertIntoSection replaces the inner content of the section's anchor
// with newText, leaving every other byte of the markup untouched. When
// the anchor is missing, the section is appended at its canonical
// position in the document order rather than silently dropped.
func InsertIntoSection(markup string, id draft.SectionID, newText string) string {
	for _, a := range findAnchors(markup) {
		if a.id != id {
			continue
		}
		var b strings.Builder
		b.WriteString("\n")
		for _, para := range splitParagraphs(newText) {
			b.WriteString("<p>")
			b.WriteString(html.EscapeString(strings.TrimSpace(para)))
			b.WriteString("</p>\n")
		}
		return markup[:a.innerStart] + b.String() + markup[a.innerEnd:]
	}

	// Anchor absent: splice a full fragment in canonical order, before
	// the first existing anchor that ranks strictly after this section.
	fragment := renderFragment(id, newText)
	for _, a := range findAnchors(markup) {
		if a.id.Rank() > id.Rank() {
			return markup[:a.start] + fragment + markup[a.start:]
		}
	}
	if markup != "" && !strings.HasSuffix(markup, "\n") {
		markup += "\n"
	}
	return markup + fragment
}

// anchor locates one section element in the markup.
type anchor struct {
	id         draft.SectionID
	start      int // index of "<section"
	innerStart int // index just past the opening tag
	innerEnd   int // index of "</section>"
	end        int // index just past "</section>"
}

// findAnchors scans the markup for section anchors in document order.
// Malformed anchors (unterminated id or missing close tag) end the scan;
// everything located before the damage still parses.
func findAnchors(markup string) []anchor {
	var anchors []anchor
	pos := 0
	for {
		start := strings.Index(markup[pos:], anchorOpen)
		if start < 0 {
			return anchors
		}
		start += pos

		idStart := start + len(anchorOpen)
		idEnd := strings.Index(markup[idStart:], `"`)
		if idEnd < 0 {
			return anchors
		}
		idEnd += idStart

		tagEnd := strings.Index(markup[idEnd:], ">")
		if tagEnd < 0 {
			return anchors
		}
		innerStart := idEnd + tagEnd + 1

		closeRel := strings.Index(markup[innerStart:], anchorClose)
		if closeRel < 0 {
			return anchors
		}
		innerEnd := innerStart + closeRel

		anchors = append(anchors, anchor{
			id:         draft.SectionID(markup[idStart:idEnd]),
			start:      start,
			innerStart: innerStart,
			innerEnd:   innerEnd,
			end:        innerEnd + len(anchorClose),
		})
		pos = innerEnd + len(anchorClose)
	}
}

// extractText converts a section's inner markup back to plain text.
// <p> boundaries become paragraph breaks; any other tags collapse to
// whitespace; entities are unescaped; the result is normalized.
func extractText(inner string) string {
	var paragraphs []string
	rest := inner
	sawP := false
	for {
		open := strings.Index(rest, "<p>")
		if open < 0 {
			break
		}
		closeRel := strings.Index(rest[open:], "</p>")
		if closeRel < 0 {
			break
		}
		sawP = true
		paragraphs = append(paragraphs, rest[open+len("<p>"):open+closeRel])
		rest = rest[open+closeRel+len("</p>"):]
	}
	if !sawP {
		// Raw text pasted without <p> wrappers still extracts.
		paragraphs = []string{inner}
	}

	for i, p := range paragraphs {
		paragraphs[i] = html.UnescapeString(stripTags(p))
	}
	return NormalizeWhitespace(strings.Join(paragraphs, "\n\n"))
}

// stripTags replaces any remaining markup tags with spaces so adjacent
// words do not fuse.
func stripTags(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '<':
			depth++
			b.WriteByte(' ')
		case r == '>' && depth > 0:
			depth--
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
