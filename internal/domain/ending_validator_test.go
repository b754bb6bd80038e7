package domain

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestEndingValidator_CleanScheduleHasNoWarnings(t *testing.T) {
	v := &EndingValidator{}

	schedule := Schedule{
		op(t, "T1", "R", "x"),
		op(t, "T1", "C", ""),
		op(t, "T2", "W", "x"),
		op(t, "T2", "A", ""),
	}

	warnings, err := v.Validate(schedule)
	assert.NoError(t, err)
	assert.Empty(t, warnings)
}

func Test_GivenCommitAndAbort_WhenValidate_thenContradictionIsReported(t *testing.T) {
	v := &EndingValidator{}

	schedule := Schedule{
		op(t, "T1", "R", "x"),
		op(t, "T1", "C", ""),
		op(t, "T1", "A", ""),
	}

	warnings, err := v.Validate(schedule)
	assert.NoError(t, err)
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "T1")
	assert.Contains(t, warnings[0], "both commits and aborts")
}

func Test_GivenNoTermination_WhenValidate_thenMissingEndingIsReported(t *testing.T) {
	v := &EndingValidator{}

	schedule := Schedule{
		op(t, "T1", "R", "x"),
		op(t, "T1", "W", "x"),
	}

	warnings, err := v.Validate(schedule)
	assert.NoError(t, err)
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "T1")
	assert.Contains(t, warnings[0], "never commits nor aborts")
}

func TestEndingValidator_AbortOnlyTransactionIsNotAnomalous(t *testing.T) {
	v := &EndingValidator{}

	schedule := Schedule{
		op(t, "T1", "A", ""),
	}

	warnings, err := v.Validate(schedule)
	assert.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestEndingValidator_WarningsFollowFirstAppearanceOrder(t *testing.T) {
	v := &EndingValidator{}

	schedule := Schedule{
		op(t, "T2", "W", "y"),
		op(t, "T1", "R", "x"),
		op(t, "T3", "R", "z"),
		op(t, "T3", "C", ""),
	}

	warnings, err := v.Validate(schedule)
	assert.NoError(t, err)
	assert.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "T2")
	assert.Contains(t, warnings[1], "T1")
}

func TestEndingValidator_RejectsMalformedOperations(t *testing.T) {
	v := &EndingValidator{}

	_, err := v.Validate(Schedule{{TransactionId: "T1", Kind: "Q"}})
	assert.ErrorIs(t, err, ErrInvalidOperation)

	_, err = v.Validate(Schedule{{TransactionId: "T1", Kind: Write}})
	assert.ErrorIs(t, err, ErrMissingDataItem)
}
