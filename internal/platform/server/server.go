package server

import (
	"SchedCheck/internal/platform/server/handler/health"
	"SchedCheck/internal/platform/server/handler/instance"
	"SchedCheck/internal/platform/server/handler/report"
	"SchedCheck/internal/platform/server/handler/schedule"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"log"
	"net/http"
)

type Server struct {
	httpAddr string
	engine   *chi.Mux
}

func NewServer(host string, port int, scheduleHandler *schedule.ScheduleHandler,
	reportHandler *report.ReportHandler, instanceHandler *instance.InstanceHandler) Server {
	url := fmt.Sprintf("%s:%d", host, port)
	srv := Server{
		engine:   chi.NewRouter(),
		httpAddr: url,
	}
	srv.engine.Use(middleware.Logger)
	srv.registerRoutes(scheduleHandler, reportHandler, instanceHandler)
	return srv
}

func (s *Server) Run() error {
	log.Println("Server Running on:", s.httpAddr)
	return http.ListenAndServe(s.httpAddr, s.engine)
}

func (s *Server) registerRoutes(scheduleHandler *schedule.ScheduleHandler,
	reportHandler *report.ReportHandler, instanceHandler *instance.InstanceHandler) {
	s.engine.Get("/health", health.CheckHandler)
	s.engine.Post("/schedules", scheduleHandler.AnalyzeSchedule)
	s.engine.Get("/reports", reportHandler.GetAllReports)
	s.engine.Get("/reports/{id}", reportHandler.GetReport)
	s.engine.Post("/instances", instanceHandler.UpdateInstances)
}
