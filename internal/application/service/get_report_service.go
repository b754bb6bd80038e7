package service

import (
	"SchedCheck/internal/domain"
)

type GetReportService struct {
	repository domain.ReportRepository
}

func NewGetReportService(repository domain.ReportRepository) *GetReportService {
	return &GetReportService{
		repository: repository,
	}
}

type GetReportQuery struct {
	Id string
}

type GetReportResult struct {
	Report domain.AnalysisReport
	Found  bool
}

func (s *GetReportService) Execute(query GetReportQuery) GetReportResult {
	report, found := s.repository.Get(query.Id)
	if !found {
		return GetReportResult{Found: false}
	}
	return GetReportResult{
		Report: report,
		Found:  true,
	}
}
