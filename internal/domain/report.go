package domain

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisReport is a stored serializability verdict. ScheduleId is the id
// the recorder assigned to the analyzed schedule, empty for ad hoc requests.
type AnalysisReport struct {
	Id         string
	ScheduleId string
	Result     AnalysisResult
	AnalyzedAt int64
}

func NewAnalysisReport(scheduleId string, result AnalysisResult) AnalysisReport {
	return AnalysisReport{
		Id:         uuid.NewString(),
		ScheduleId: scheduleId,
		Result:     result,
		AnalyzedAt: time.Now().UnixNano(),
	}
}

type ReportRepository interface {
	Save(report AnalysisReport) AnalysisReport
	Get(id string) (AnalysisReport, bool)
	FindAll() []AnalysisReport
}

type ReportBroadcaster interface {
	BroadcastReport(report AnalysisReport) error
}
