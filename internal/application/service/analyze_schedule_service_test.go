package service

import (
	"SchedCheck/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockReportRepository struct {
	saved []domain.AnalysisReport
}

func (m *mockReportRepository) Save(report domain.AnalysisReport) domain.AnalysisReport {
	m.saved = append(m.saved, report)
	return report
}

func (m *mockReportRepository) Get(id string) (domain.AnalysisReport, bool) {
	for _, report := range m.saved {
		if report.Id == id {
			return report, true
		}
	}
	return domain.AnalysisReport{}, false
}

func (m *mockReportRepository) FindAll() []domain.AnalysisReport {
	return m.saved
}

type mockReportBroadcaster struct {
	broadcasted []domain.AnalysisReport
}

func (m *mockReportBroadcaster) BroadcastReport(report domain.AnalysisReport) error {
	m.broadcasted = append(m.broadcasted, report)
	return nil
}

func createAnalyzeService(repo *mockReportRepository, pub *mockReportBroadcaster) *AnalyzeScheduleService {
	return NewAnalyzeScheduleService(domain.NewSerializabilityChecker(), repo, pub)
}

func TestAnalyzeScheduleService_SavesAndBroadcastsReport(t *testing.T) {
	repo := &mockReportRepository{}
	pub := &mockReportBroadcaster{}
	s := createAnalyzeService(repo, pub)

	result, err := s.Execute(AnalyzeScheduleCommand{
		ScheduleId: "sched-1",
		Operations: []OperationInput{
			{TransactionId: "T1", Kind: "R", DataItem: "x"},
			{TransactionId: "T2", Kind: "W", DataItem: "x"},
			{TransactionId: "T1", Kind: "C"},
			{TransactionId: "T2", Kind: "C"},
		},
	})

	assert.NoError(t, err)
	assert.True(t, result.Report.Result.Serializable)
	assert.NotEmpty(t, result.Report.Id)
	assert.Equal(t, "sched-1", result.Report.ScheduleId)
	assert.Len(t, repo.saved, 1)
	assert.Len(t, pub.broadcasted, 1)
	assert.Equal(t, result.Report.Id, pub.broadcasted[0].Id)
}

func Test_GivenCyclicSchedule_WhenExecute_thenReportIsNotSerializable(t *testing.T) {
	repo := &mockReportRepository{}
	pub := &mockReportBroadcaster{}
	s := createAnalyzeService(repo, pub)

	result, err := s.Execute(AnalyzeScheduleCommand{
		Operations: []OperationInput{
			{TransactionId: "T1", Kind: "R", DataItem: "x"},
			{TransactionId: "T2", Kind: "W", DataItem: "x"},
			{TransactionId: "T2", Kind: "R", DataItem: "y"},
			{TransactionId: "T1", Kind: "W", DataItem: "y"},
		},
	})

	assert.NoError(t, err)
	assert.False(t, result.Report.Result.Serializable)
}

func Test_GivenMalformedOperation_WhenExecute_thenNothingIsSaved(t *testing.T) {
	repo := &mockReportRepository{}
	pub := &mockReportBroadcaster{}
	s := createAnalyzeService(repo, pub)

	_, err := s.Execute(AnalyzeScheduleCommand{
		Operations: []OperationInput{
			{TransactionId: "T1", Kind: "INCREMENT", DataItem: "x"},
		},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidOperation)
	assert.Empty(t, repo.saved)
	assert.Empty(t, pub.broadcasted)
}
