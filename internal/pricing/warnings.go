package pricing

import (
	"errors"
	"fmt"

	"github.com/lexdraft/lexdraft/internal/draft"
)

// WarningCode categorizes validation warnings.
type WarningCode string

const (
	// WarnInstallmentSum indicates installment percentages do not total 100.
	WarnInstallmentSum WarningCode = "INSTALLMENT_SUM"
)

// Warning is a non-fatal validation finding. Narrative generation still
// proceeds; callers must surface the warning to the user.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

// InstallmentSum returns the total of the schedule's percentages.
func InstallmentSum(installments []draft.Installment) int {
	sum := 0
	for _, inst := range installments {
		sum += inst.Percentage
	}
	return sum
}

// ValidateInstallments checks that a non-empty schedule totals exactly
// 100 percent. An empty schedule renders no breakdown and is not a
// finding. Violations are soft: the caller renders anyway, with a
// warning marker.
func ValidateInstallments(installments []draft.Installment) *Warning {
	if len(installments) == 0 {
		return nil
	}
	sum := InstallmentSum(installments)
	if sum == 100 {
		return nil
	}
	return &Warning{
		Code:    WarnInstallmentSum,
		Message: fmt.Sprintf("installment percentages total %d%%, expected 100%%", sum),
	}
}

// PreconditionError reports that a narrative precondition does not hold.
// It marks a caller error, not a runtime failure: the caller must not
// have invoked generation in this state.
type PreconditionError struct {
	Code    string
	Message string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrCodeGlobalAmountsZero: global mode with both the initial payment
// and the monthly retainer at zero has nothing to narrate.
const ErrCodeGlobalAmountsZero = "GLOBAL_AMOUNTS_ZERO"

// IsPreconditionError reports whether err is a violated narrative
// precondition. Uses errors.As to handle wrapped errors.
func IsPreconditionError(err error) bool {
	var pe *PreconditionError
	return errors.As(err, &pe)
}
