package service

import (
	"context"

	"github.com/bogaczig73/realitypuchyr-admin/internal/api"
	"github.com/bogaczig73/realitypuchyr-admin/internal/model"
)

type healthService struct {
	client *api.Client
}

func NewHealthService(client *api.Client) IHealthService {
	return &healthService{client: client}
}

func (s *healthService) Check(ctx context.Context) (*model.HealthStatus, error) {
	resp, err := s.client.Get(ctx, healthPath(), nil)
	if err != nil {
		return nil, wrap("check health", err)
	}
	var status model.HealthStatus
	if err := resp.JSON(&status); err != nil {
		return nil, wrap("check health", err)
	}
	return &status, nil
}
