package service

import (
	"SchedCheck/internal/domain"
	"log"
)

type UpdateInstancesService struct {
	manager *domain.InstanceManager
}

func NewUpdateInstancesService(manager *domain.InstanceManager) *UpdateInstancesService {
	return &UpdateInstancesService{
		manager: manager,
	}
}

func (u UpdateInstancesService) Execute(instances []domain.AnalyzerInstance) {
	u.manager.SetRecorders(&instances)
	log.Println("Updated recorder instances, total recorders:", len(instances))
}
