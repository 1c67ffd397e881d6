package draft

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money is a monetary amount in minor units (cents).
//
// Using int64 minor units keeps every computation exact and keeps floats
// out of the canonical serialization used for fingerprints. Negative
// amounts are never valid in a proposal; callers clamp at the boundary.
type Money int64

// FromUnits builds a Money from whole currency units.
func FromUnits(units int64) Money {
	return Money(units * 100)
}

// Units returns the whole-unit part of the amount.
func (m Money) Units() int64 {
	return int64(m) / 100
}

// Cents returns the fractional part of the amount, 0-99.
func (m Money) Cents() int64 {
	c := int64(m) % 100
	if c < 0 {
		c = -c
	}
	return c
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m == 0
}

// moneyPrinter formats grouped digits ("15000" -> "15,000").
// message.Printer is safe for concurrent use.
var moneyPrinter = message.NewPrinter(language.AmericanEnglish)

// String renders the amount as "$15,000.00".
func (m Money) String() string {
	return moneyPrinter.Sprintf("$%d.%02d", m.Units(), m.Cents())
}

// GoString makes test failure output readable.
func (m Money) GoString() string {
	return fmt.Sprintf("draft.Money(%d)", int64(m))
}
