package message

import "SchedCheck/internal/domain"

type ReportMessage struct {
	Id           string              `json:"id"`
	ScheduleId   string              `json:"schedule_id,omitempty"`
	Serializable bool                `json:"serializable"`
	Warnings     []string            `json:"warnings"`
	Graph        map[string][]string `json:"graph"`
	AnalyzedAt   int64               `json:"analyzed_at"`
	Topic        string
}

func ReportMessageFrom(report domain.AnalysisReport) ReportMessage {
	return ReportMessage{
		Id:           report.Id,
		ScheduleId:   report.ScheduleId,
		Serializable: report.Result.Serializable,
		Warnings:     report.Result.Warnings,
		Graph:        report.Result.Graph,
		AnalyzedAt:   report.AnalyzedAt,
	}
}

func (m *ReportMessage) ToReport() domain.AnalysisReport {
	return domain.AnalysisReport{
		Id:         m.Id,
		ScheduleId: m.ScheduleId,
		Result: domain.AnalysisResult{
			Serializable: m.Serializable,
			Warnings:     m.Warnings,
			Graph:        m.Graph,
		},
		AnalyzedAt: m.AnalyzedAt,
	}
}
