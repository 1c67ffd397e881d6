// Package pricing computes monetary totals and narrative text for the
// three pricing modes.
//
// The engine is the single dispatch point for mode-dependent behavior:
// callers never branch on the pricing mode themselves, they call
// RenderNarrative and surface whatever warnings come back.
//
// Everything here is a pure function over its inputs. Validation
// problems (installment percentages not summing to 100) are warning
// values carried alongside results, never errors; the only error is
// the global-mode zero-amount precondition.
package pricing
