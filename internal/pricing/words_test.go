package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lexdraft/lexdraft/internal/draft"
)

func TestNumberWords(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "zero"},
		{7, "seven"},
		{15, "fifteen"},
		{20, "twenty"},
		{21, "twenty-one"},
		{99, "ninety-nine"},
		{100, "one hundred"},
		{215, "two hundred fifteen"},
		{1000, "one thousand"},
		{2500, "two thousand five hundred"},
		{15000, "fifteen thousand"},
		{1_000_000, "one million"},
		{1_250_043, "one million two hundred fifty thousand forty-three"},
		{2_000_000_000, "two billion"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, numberWords(tc.in), "numberWords(%d)", tc.in)
	}
}

func TestAmountInWords(t *testing.T) {
	assert.Equal(t, "FIFTEEN THOUSAND AND 00/100 DOLLARS", AmountInWords(draft.FromUnits(15000)))
	assert.Equal(t, "ONE THOUSAND TWO HUNDRED THIRTY-FOUR AND 56/100 DOLLARS", AmountInWords(draft.Money(123456)))
	assert.Equal(t, "ZERO AND 50/100 DOLLARS", AmountInWords(draft.Money(50)))
}
