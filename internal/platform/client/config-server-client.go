package client

import (
	"SchedCheck/internal/domain"
	"github.com/go-resty/resty/v2"
)

const (
	analyzers_endpoint = "/api/v1/analyzers"
	recorders_endpoint = "/api/v1/recorders"
)

type RegisterInstanceRequest struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

type ConfigServerClient struct {
	client    *resty.Client
	serverUrl string
}

func NewConfigServerClient(configServerUrl string) *ConfigServerClient {
	return &ConfigServerClient{
		client:    resty.New(),
		serverUrl: configServerUrl,
	}
}

func (c *ConfigServerClient) RegisterInstance(inst domain.AnalyzerInstance) (*domain.AnalyzerInstance, error) {
	var resp domain.AnalyzerInstance
	uri := c.serverUrl + analyzers_endpoint
	body := RegisterInstanceRequest{
		Host: inst.Host,
		Port: inst.Port,
	}
	_, err := c.client.R().SetResult(&resp).SetBody(&body).Post(uri)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *ConfigServerClient) FindAllRecorders() (*[]domain.AnalyzerInstance, error) {
	var resp []domain.AnalyzerInstance
	uri := c.serverUrl + recorders_endpoint

	_, err := c.client.R().SetResult(&resp).Get(uri)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
