package message

import (
	"SchedCheck/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduleMessageFrom_PreservesOperationOrder(t *testing.T) {
	read, err := domain.NewOperation("T1", "R", "x")
	assert.NoError(t, err)
	write, err := domain.NewOperation("T2", "W", "x")
	assert.NoError(t, err)
	commit, err := domain.NewOperation("T1", "C", "")
	assert.NoError(t, err)

	msg := ScheduleMessageFrom("sched-1", domain.Schedule{read, write, commit})

	assert.Equal(t, "sched-1", msg.ScheduleId)
	assert.Equal(t, []OperationMessage{
		{TransactionId: "T1", Kind: "R", DataItem: "x"},
		{TransactionId: "T2", Kind: "W", DataItem: "x"},
		{TransactionId: "T1", Kind: "C"},
	}, msg.Operations)
}

func TestReportMessage_MapsBackToReport(t *testing.T) {
	report := domain.NewAnalysisReport("sched-1", domain.AnalysisResult{
		Serializable: false,
		Warnings:     []string{"transaction T1 never commits nor aborts"},
		Graph:        map[string][]string{"T1": {"T2"}, "T2": {"T1"}},
	})

	msg := ReportMessageFrom(report)

	assert.Equal(t, report.Id, msg.Id)
	assert.False(t, msg.Serializable)
	assert.Equal(t, report, msg.ToReport())
}
