package repository

import (
	"SchedCheck/internal/domain"
	"sort"
	"sync"
)

// InMemoryReportRepository keeps finished analysis reports for the lifetime
// of the process. Schedules themselves are never stored.
type InMemoryReportRepository struct {
	mu      sync.RWMutex
	reports map[string]domain.AnalysisReport
}

func NewInMemoryReportRepository() *InMemoryReportRepository {
	return &InMemoryReportRepository{
		reports: make(map[string]domain.AnalysisReport),
	}
}

func (r *InMemoryReportRepository) Save(report domain.AnalysisReport) domain.AnalysisReport {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports[report.Id] = report
	return report
}

func (r *InMemoryReportRepository) Get(id string) (domain.AnalysisReport, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	report, found := r.reports[id]
	return report, found
}

// FindAll returns reports oldest first.
func (r *InMemoryReportRepository) FindAll() []domain.AnalysisReport {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]domain.AnalysisReport, 0, len(r.reports))
	for _, report := range r.reports {
		all = append(all, report)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].AnalyzedAt < all[j].AnalyzedAt
	})
	return all
}
