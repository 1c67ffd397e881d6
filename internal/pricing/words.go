package pricing

import (
	"fmt"
	"strings"

	"github.com/lexdraft/lexdraft/internal/draft"
)

// AmountInWords spells an amount the way engagement letters do:
// "FIFTEEN THOUSAND AND 00/100 DOLLARS". The fractional part is always
// written as NN/100, never spelled out.
func AmountInWords(m draft.Money) string {
	words := strings.ToUpper(numberWords(m.Units()))
	return fmt.Sprintf("%s AND %02d/100 DOLLARS", words, m.Cents())
}

var onesWords = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven",
	"eight", "nine", "ten", "eleven", "twelve", "thirteen", "fourteen",
	"fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
}

var tensWords = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety",
}

// scales in descending order; anything above billions is outside any
// plausible engagement amount.
var scaleWords = []struct {
	value int64
	word  string
}{
	{1_000_000_000, "billion"},
	{1_000_000, "million"},
	{1_000, "thousand"},
}

// numberWords renders a non-negative integer in English.
func numberWords(n int64) string {
	if n < 0 {
		n = -n
	}
	if n < 20 {
		return onesWords[n]
	}

	var parts []string
	for _, scale := range scaleWords {
		if n >= scale.value {
			parts = append(parts, numberWords(n/scale.value)+" "+scale.word)
			n %= scale.value
		}
	}
	if n >= 100 {
		parts = append(parts, onesWords[n/100]+" hundred")
		n %= 100
	}
	if n >= 20 {
		word := tensWords[n/10]
		if n%10 != 0 {
			word += "-" + onesWords[n%10]
		}
		parts = append(parts, word)
	} else if n > 0 {
		parts = append(parts, onesWords[n])
	}
	return strings.Join(parts, " ")
}
