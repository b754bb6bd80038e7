package report

import (
	"SchedCheck/internal/application/service"
	"SchedCheck/internal/domain"
	"encoding/json"
	"fmt"
	"github.com/go-chi/chi/v5"
	"net/http"
)

type ReportHandler struct {
	getService    *service.GetReportService
	getAllService *service.GetAllReportsService
}

func NewReportHandler(getService *service.GetReportService,
	getAllService *service.GetAllReportsService) *ReportHandler {
	return &ReportHandler{
		getService:    getService,
		getAllService: getAllService,
	}
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

func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	result := h.getService.Execute(service.GetReportQuery{
		Id: id,
	})
	if !result.Found {
		w.WriteHeader(404)
		fmt.Fprintf(w, "Not found")
		return
	}
	output, _ := json.Marshal(MapToReportResponse(result.Report))
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, string(output))
}

func (h *ReportHandler) GetAllReports(w http.ResponseWriter, r *http.Request) {
	result := h.getAllService.Execute()
	responses := make([]ReportResponse, 0, len(result.Reports))
	for _, report := range result.Reports {
		responses = append(responses, MapToReportResponse(report))
	}
	output, _ := json.Marshal(responses)
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, string(output))
}
