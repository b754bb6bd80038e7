package schedule

import (
	"SchedCheck/internal/application/service"
	"SchedCheck/internal/domain"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

type ScheduleHandler struct {
	analyzeService *service.AnalyzeScheduleService
}

func NewScheduleHandler(analyzeService *service.AnalyzeScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		analyzeService: analyzeService,
	}
}

type OperationRequest struct {
	TransactionId string `json:"transaction_id"`
	Kind          string `json:"kind"`
	DataItem      string `json:"data_item,omitempty"`
}

type AnalyzeScheduleRequest struct {
	ScheduleId string             `json:"schedule_id,omitempty"`
	Operations []OperationRequest `json:"operations"`
}

type ReportResponse struct {
	Id           string              `json:"id"`
	ScheduleId   string              `json:"schedule_id,omitempty"`
	Serializable bool                `json:"serializable"`
	Warnings     []string            `json:"warnings"`
	Graph        map[string][]string `json:"graph"`
	AnalyzedAt   int64               `json:"analyzed_at"`
}

func MapToReportResponse(r domain.AnalysisReport) ReportResponse {
	return ReportResponse{
		Id:           r.Id,
		ScheduleId:   r.ScheduleId,
		Serializable: r.Result.Serializable,
		Warnings:     r.Result.Warnings,
		Graph:        r.Result.Graph,
		AnalyzedAt:   r.AnalyzedAt,
	}
}

func (h *ScheduleHandler) AnalyzeSchedule(w http.ResponseWriter, r *http.Request) {
	var request AnalyzeScheduleRequest
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, "invalid body")
		return
	}
	if err := json.Unmarshal(body, &request); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, err.Error())
		return
	}

	operations := make([]service.OperationInput, 0, len(request.Operations))
	for _, operation := range request.Operations {
		operations = append(operations, service.OperationInput{
			TransactionId: operation.TransactionId,
			Kind:          operation.Kind,
			DataItem:      operation.DataItem,
		})
	}

	result, err := h.analyzeService.Execute(service.AnalyzeScheduleCommand{
		ScheduleId: request.ScheduleId,
		Operations: operations,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidOperation) || errors.Is(err, domain.ErrMissingDataItem) {
			w.WriteHeader(http.StatusBadRequest)
		} else {
			w.WriteHeader(http.StatusInternalServerError)
		}
		fmt.Fprintf(w, err.Error())
		return
	}

	output, _ := json.Marshal(MapToReportResponse(result.Report))
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, string(output))
}
