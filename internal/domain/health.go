package domain

import "context"

// HealthStatus reports dependency state for the health endpoint.
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

type HealthUsecase interface {
	Check(ctx context.Context) HealthStatus
}
