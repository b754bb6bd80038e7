package service

import (
	"SchedCheck/internal/domain"
	"SchedCheck/internal/platform/client"
	"log"
)

type GetAllInstancesService struct {
	configServer    *client.ConfigServerClient
	instanceManager *domain.InstanceManager
}

func NewGetAllInstancesService(configServer *client.ConfigServerClient,
	instanceManager *domain.InstanceManager) *GetAllInstancesService {
	return &GetAllInstancesService{
		configServer:    configServer,
		instanceManager: instanceManager,
	}
}

func (g *GetAllInstancesService) Execute() error {
	instances, err := g.configServer.FindAllRecorders()
	if err != nil {
		return err
	}

	g.instanceManager.SetRecorders(instances)
	log.Println("Retrieved", len(*instances), "recorder instances from config server")
	return nil
}
