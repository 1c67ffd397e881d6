package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexdraft/lexdraft/internal/draft"
)

func section(id draft.SectionID, text string) draft.DocumentSection {
	return draft.DocumentSection{ID: id, Kind: id.Kind(), Text: text}
}

func TestRenderAnchorsEachSection(t *testing.T) {
	markup := Render([]draft.DocumentSection{
		section(draft.SectionBackground, "Some background."),
		section(draft.SectionClosing, "Sincerely yours."),
	})

	assert.Contains(t, markup, `<section data-section-id="background">`)
	assert.Contains(t, markup, `<section data-section-id="closing-farewell">`)
	assert.Contains(t, markup, "<p>Some background.</p>")
	assert.Less(t, strings.Index(markup, "background"), strings.Index(markup, "closing-farewell"))
}

func TestRenderSkipsEmptySections(t *testing.T) {
	markup := Render([]draft.DocumentSection{
		section(draft.SectionBackground, "   \n  "),
	})
	assert.Empty(t, markup)
}

func TestRenderSplitsParagraphs(t *testing.T) {
	markup := Render([]draft.DocumentSection{
		section(draft.SectionBackground, "First para.\n\nSecond para."),
	})
	assert.Contains(t, markup, "<p>First para.</p>")
	assert.Contains(t, markup, "<p>Second para.</p>")
}

func TestParseRoundTrip(t *testing.T) {
	texts := []string{
		"Plain sentence.",
		"Spaced   out    words.",
		"First paragraph.\n\nSecond paragraph, longer text here.",
		"Line one\nline two in same paragraph.",
	}
	for _, text := range texts {
		s := section(draft.SectionBackground, text)
		parsed := Parse(Render([]draft.DocumentSection{s}))
		require.Contains(t, parsed, draft.SectionBackground, "text %q", text)
		assert.Equal(t, NormalizeWhitespace(text), parsed[draft.SectionBackground], "text %q", text)
	}
}

func TestParseRoundTripReservedCharacters(t *testing.T) {
	// Reserved characters escape on render and unescape on parse.
	s := section(draft.SectionBackground, "Fees < $5,000 & costs > $100.")
	parsed := Parse(Render([]draft.DocumentSection{s}))
	assert.Equal(t, "Fees < $5,000 & costs > $100.", parsed[draft.SectionBackground])
}

func TestParseSkipsFixedSections(t *testing.T) {
	markup := Render([]draft.DocumentSection{
		section(draft.SectionLetterhead, "Walker & Price LLP"),
		section(draft.SectionBackground, "Background text."),
	})
	parsed := Parse(markup)
	assert.NotContains(t, parsed, draft.SectionLetterhead)
	assert.Contains(t, parsed, draft.SectionBackground)
}

func TestParseMissingAnchorsAbsentNotError(t *testing.T) {
	parsed := Parse(`<p>no anchors at all</p>`)
	assert.Empty(t, parsed)
}

func TestParseDuplicateAnchorFirstWins(t *testing.T) {
	markup := `<section data-section-id="background">
<p>first</p>
</section>
<section data-section-id="background">
<p>second</p>
</section>
`
	parsed := Parse(markup)
	assert.Equal(t, "first", parsed[draft.SectionBackground])
}

func TestParseRawTextWithoutParagraphTags(t *testing.T) {
	markup := `<section data-section-id="background">
pasted   raw text
</section>
`
	parsed := Parse(markup)
	assert.Equal(t, "pasted raw text", parsed[draft.SectionBackground])
}

func TestParseStripsUnknownTags(t *testing.T) {
	markup := `<section data-section-id="background">
<p>kept <strong>bold</strong> words</p>
</section>
`
	parsed := Parse(markup)
	assert.Equal(t, "kept bold words", parsed[draft.SectionBackground])
}

func TestInsertIntoSectionReplacesOnlyTarget(t *testing.T) {
	markup := Render([]draft.DocumentSection{
		section(draft.SectionBackground, "Old background."),
		section(draft.SectionClosing, "Closing text."),
	})

	updated := InsertIntoSection(markup, draft.SectionBackground, "New background.")

	parsed := Parse(updated)
	assert.Equal(t, "New background.", parsed[draft.SectionBackground])
	assert.Equal(t, "Closing text.", parsed[draft.SectionClosing])

	// Surrounding markup stays byte-identical.
	closingFragment := renderFragment(draft.SectionClosing, "Closing text.")
	assert.Contains(t, updated, closingFragment)
}

func TestInsertIntoSectionAppendsMissingAnchorInOrder(t *testing.T) {
	markup := Render([]draft.DocumentSection{
		section(draft.SectionBackground, "Background."),
		section(draft.SectionClosing, "Closing."),
	})

	updated := InsertIntoSection(markup, draft.SectionPricingIntro, "Our fees follow.")

	parsed := Parse(updated)
	assert.Equal(t, "Our fees follow.", parsed[draft.SectionPricingIntro])

	// Spliced between background and closing per canonical order.
	assert.Less(t, strings.Index(updated, `"background"`), strings.Index(updated, `"pricing-intro"`))
	assert.Less(t, strings.Index(updated, `"pricing-intro"`), strings.Index(updated, `"closing-farewell"`))
}

func TestInsertIntoSectionAppendsAtEndWhenLast(t *testing.T) {
	markup := Render([]draft.DocumentSection{
		section(draft.SectionBackground, "Background."),
	})
	updated := InsertIntoSection(markup, draft.SectionClosing, "Farewell.")
	assert.Less(t, strings.Index(updated, `"background"`), strings.Index(updated, `"closing-farewell"`))
}

func TestInsertIntoEmptyMarkup(t *testing.T) {
	updated := InsertIntoSection("", draft.SectionBackground, "Only section.")
	parsed := Parse(updated)
	assert.Equal(t, "Only section.", parsed[draft.SectionBackground])
}

func TestNormalizeWhitespace(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  plain  ", "plain"},
		{"a\tb\nc", "a b c"},
		{"one\n\ntwo", "one\n\ntwo"},
		{"one\n   \n\n\ntwo", "one\n\ntwo"},
		{"\n\n\n", ""},
		{"a\r\n\r\nb", "a\n\nb"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeWhitespace(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeWhitespaceNFC(t *testing.T) {
	assert.Equal(t, NormalizeWhitespace("café"), NormalizeWhitespace("café"))
}
