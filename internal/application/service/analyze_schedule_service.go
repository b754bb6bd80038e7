package service

import (
	"SchedCheck/internal/domain"
	"log"
)

type AnalyzeScheduleService struct {
	checker    *domain.SerializabilityChecker
	repository domain.ReportRepository
	publisher  domain.ReportBroadcaster
}

func NewAnalyzeScheduleService(checker *domain.SerializabilityChecker,
	repository domain.ReportRepository, publisher domain.ReportBroadcaster) *AnalyzeScheduleService {
	return &AnalyzeScheduleService{
		checker:    checker,
		repository: repository,
		publisher:  publisher,
	}
}

type OperationInput struct {
	TransactionId string
	Kind          string
	DataItem      string
}

type AnalyzeScheduleCommand struct {
	ScheduleId string
	Operations []OperationInput
}

type AnalyzeScheduleResult struct {
	Report domain.AnalysisReport
}

func (s *AnalyzeScheduleService) Execute(command AnalyzeScheduleCommand) (AnalyzeScheduleResult, error) {
	schedule := make(domain.Schedule, 0, len(command.Operations))
	for _, input := range command.Operations {
		operation, err := domain.NewOperation(input.TransactionId, input.Kind, input.DataItem)
		if err != nil {
			return AnalyzeScheduleResult{}, err
		}
		schedule = append(schedule, operation)
	}

	result, err := s.checker.Check(schedule)
	if err != nil {
		return AnalyzeScheduleResult{}, err
	}

	report := s.repository.Save(domain.NewAnalysisReport(command.ScheduleId, result))
	if err := s.publisher.BroadcastReport(report); err != nil {
		log.Println("Failed to broadcast report", report.Id, ":", err)
	}
	return AnalyzeScheduleResult{Report: report}, nil
}
