package codec

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	paragraphBreakRE = regexp.MustCompile(`\n[ \t]*\n+`)
	whitespaceRunRE  = regexp.MustCompile(`[ \t\r\n]+`)
)

// NormalizeWhitespace trims and canonicalizes section text: runs of
// whitespace collapse to single spaces, explicit paragraph breaks
// (blank lines) are preserved as exactly one blank line, and empty
// paragraphs disappear. Text is NFC normalized so that equality checks
// against canonical draft text behave.
func NormalizeWhitespace(s string) string {
	s = norm.NFC.String(strings.ReplaceAll(s, "\r\n", "\n"))

	var out []string
	for _, para := range paragraphBreakRE.Split(s, -1) {
		para = strings.TrimSpace(whitespaceRunRE.ReplaceAllString(para, " "))
		if para != "" {
			out = append(out, para)
		}
	}
	return strings.Join(out, "\n\n")
}

// splitParagraphs breaks text into non-empty paragraphs on blank lines.
// Single newlines stay inside their paragraph.
func splitParagraphs(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	var out []string
	for _, para := range paragraphBreakRE.Split(s, -1) {
		if strings.TrimSpace(para) != "" {
			out = append(out, para)
		}
	}
	return out
}
