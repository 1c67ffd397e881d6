package harness

import (
	"fmt"
	"strings"

	"github.com/lexdraft/lexdraft/internal/draft"
)

// CheckAssertions validates a result against the scenario's assertions.
// It returns one message per failed assertion; an empty slice means all
// assertions passed.
func CheckAssertions(result *Result, assertions []Assertion) []string {
	var failures []string
	for i, a := range assertions {
		if msg := checkAssertion(result, &a); msg != "" {
			failures = append(failures, fmt.Sprintf("assertions[%d] (%s): %s", i, a.Type, msg))
		}
	}
	return failures
}

func checkAssertion(result *Result, a *Assertion) string {
	switch a.Type {
	case AssertSectionContains:
		return checkSectionContains(result, a)
	case AssertSectionAbsent:
		return checkSectionAbsent(result, a)
	case AssertSectionOrder:
		return checkSectionOrder(result, a)
	case AssertWarningContains:
		return checkWarningContains(result, a)
	default:
		return fmt.Sprintf("unknown assertion type %q", a.Type)
	}
}

func checkSectionContains(result *Result, a *Assertion) string {
	text, ok := result.Section(draft.SectionID(a.Section))
	if !ok {
		return fmt.Sprintf("section %q not present in document", a.Section)
	}
	if !strings.Contains(text, a.Substring) {
		return fmt.Sprintf("section %q does not contain %q\ngot: %s", a.Section, a.Substring, text)
	}
	return ""
}

func checkSectionAbsent(result *Result, a *Assertion) string {
	if text, ok := result.Section(draft.SectionID(a.Section)); ok {
		return fmt.Sprintf("section %q unexpectedly present: %s", a.Section, text)
	}
	return ""
}

// checkSectionOrder verifies the listed sections appear as a
// subsequence of the document's section order. Sections not listed may
// appear anywhere.
func checkSectionOrder(result *Result, a *Assertion) string {
	next := 0
	for _, s := range result.Sections {
		if next < len(a.Sections) && string(s.ID) == a.Sections[next] {
			next++
		}
	}
	if next != len(a.Sections) {
		var got []string
		for _, s := range result.Sections {
			got = append(got, string(s.ID))
		}
		return fmt.Sprintf("expected order %v not found; document order: %v", a.Sections, got)
	}
	return ""
}

func checkWarningContains(result *Result, a *Assertion) string {
	for _, w := range result.Warnings {
		if strings.Contains(w, a.Substring) {
			return ""
		}
	}
	return fmt.Sprintf("no warning contains %q; warnings: %v", a.Substring, result.Warnings)
}
