package pricing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexdraft/lexdraft/internal/draft"
)

func TestValidateInstallmentsExactHundred(t *testing.T) {
	w := ValidateInstallments([]draft.Installment{
		{Percentage: 60, Description: "a"},
		{Percentage: 40, Description: "b"},
	})
	assert.Nil(t, w)
}

func TestValidateInstallmentsMismatchFlagged(t *testing.T) {
	w := ValidateInstallments([]draft.Installment{
		{Percentage: 60, Description: "a"},
		{Percentage: 30, Description: "b"},
	})
	require.NotNil(t, w)
	assert.Equal(t, WarnInstallmentSum, w.Code)
	assert.Contains(t, w.Message, "90%")
}

func TestValidateInstallmentsEmptyScheduleIsValid(t *testing.T) {
	assert.Nil(t, ValidateInstallments(nil))
}

func TestValidateInstallmentsOverHundred(t *testing.T) {
	w := ValidateInstallments([]draft.Installment{
		{Percentage: 70, Description: "a"},
		{Percentage: 50, Description: "b"},
	})
	require.NotNil(t, w)
	assert.Contains(t, w.Message, "120%")
}

func TestIsPreconditionError(t *testing.T) {
	base := &PreconditionError{Code: ErrCodeGlobalAmountsZero, Message: "nothing to narrate"}
	assert.True(t, IsPreconditionError(base))
	assert.True(t, IsPreconditionError(fmt.Errorf("render: %w", base)))
	assert.False(t, IsPreconditionError(fmt.Errorf("plain error")))
}
