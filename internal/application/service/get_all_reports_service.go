package service

import (
	"SchedCheck/internal/domain"
)

type GetAllReportsService struct {
	repository domain.ReportRepository
}

func NewGetAllReportsService(repository domain.ReportRepository) *GetAllReportsService {
	return &GetAllReportsService{
		repository: repository,
	}
}

type GetAllReportsResult struct {
	Reports []domain.AnalysisReport
}

func (s *GetAllReportsService) Execute() GetAllReportsResult {
	return GetAllReportsResult{
		Reports: s.repository.FindAll(),
	}
}
