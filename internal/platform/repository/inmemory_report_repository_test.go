package repository

import (
	"SchedCheck/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryReportRepository_SaveAndGet(t *testing.T) {
	repo := NewInMemoryReportRepository()

	report := domain.NewAnalysisReport("sched-1", domain.AnalysisResult{Serializable: true})
	repo.Save(report)

	found, ok := repo.Get(report.Id)
	assert.True(t, ok)
	assert.Equal(t, report, found)
}

func TestInMemoryReportRepository_GetUnknownId(t *testing.T) {
	repo := NewInMemoryReportRepository()

	_, ok := repo.Get("missing")
	assert.False(t, ok)
}

func TestInMemoryReportRepository_FindAllOldestFirst(t *testing.T) {
	repo := NewInMemoryReportRepository()

	first := domain.AnalysisReport{Id: "a", AnalyzedAt: 1}
	second := domain.AnalysisReport{Id: "b", AnalyzedAt: 2}
	repo.Save(second)
	repo.Save(first)

	all := repo.FindAll()
	assert.Len(t, all, 2)
	assert.Equal(t, "a", all[0].Id)
	assert.Equal(t, "b", all[1].Id)
}
