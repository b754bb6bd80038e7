package domain

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
)

func TestSerializabilityChecker_SerializableSchedule(t *testing.T) {
	checker := NewSerializabilityChecker()

	schedule := Schedule{
		op(t, "T1", "R", "x"),
		op(t, "T2", "R", "x"),
		op(t, "T1", "W", "x"),
		op(t, "T2", "C", ""),
		op(t, "T1", "C", ""),
	}

	result, err := checker.Check(schedule)
	assert.NoError(t, err)
	assert.True(t, result.Serializable, spew.Sdump(result.Graph))
	assert.Empty(t, result.Warnings)
	assert.Equal(t, map[string][]string{
		"T1": {},
		"T2": {"T1"},
	}, result.Graph)
}

func TestSerializabilityChecker_CyclicScheduleIsNotSerializable(t *testing.T) {
	checker := NewSerializabilityChecker()

	schedule := Schedule{
		op(t, "T1", "R", "x"),
		op(t, "T2", "W", "x"),
		op(t, "T2", "R", "y"),
		op(t, "T1", "W", "y"),
		op(t, "T1", "C", ""),
		op(t, "T2", "C", ""),
	}

	result, err := checker.Check(schedule)
	assert.NoError(t, err)
	assert.False(t, result.Serializable, spew.Sdump(result.Graph))
	assert.Empty(t, result.Warnings)
	assert.Equal(t, []string{"T2"}, result.Graph["T1"])
	assert.Equal(t, []string{"T1"}, result.Graph["T2"])
}

func Test_GivenAbortedTransaction_WhenCheck_thenScheduleBecomesSerializable(t *testing.T) {
	checker := NewSerializabilityChecker()

	schedule := Schedule{
		op(t, "T1", "R", "x"),
		op(t, "T2", "W", "x"),
		op(t, "T1", "A", ""),
		op(t, "T2", "C", ""),
	}

	result, err := checker.Check(schedule)
	assert.NoError(t, err)
	assert.True(t, result.Serializable)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, map[string][]string{"T2": {}}, result.Graph)
}

func Test_GivenEndingAnomaly_WhenCheck_thenVerdictIsStillComputed(t *testing.T) {
	checker := NewSerializabilityChecker()

	schedule := Schedule{
		op(t, "T1", "R", "x"),
		op(t, "T1", "W", "x"),
	}

	result, err := checker.Check(schedule)
	assert.NoError(t, err)
	assert.True(t, result.Serializable)
	assert.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "T1")
}

func TestSerializabilityChecker_CheckIsIdempotent(t *testing.T) {
	checker := NewSerializabilityChecker()

	schedule := Schedule{
		op(t, "T1", "R", "x"),
		op(t, "T2", "W", "x"),
		op(t, "T2", "R", "y"),
		op(t, "T1", "W", "y"),
	}

	first, err := checker.Check(schedule)
	assert.NoError(t, err)
	second, err := checker.Check(schedule)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSerializabilityChecker_PropagatesValidationErrors(t *testing.T) {
	checker := NewSerializabilityChecker()

	_, err := checker.Check(Schedule{{TransactionId: "T1", Kind: "Z", DataItem: "x"}})
	assert.ErrorIs(t, err, ErrInvalidOperation)
}
