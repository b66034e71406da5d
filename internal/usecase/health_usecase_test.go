package usecase_test

import (
	"context"
	"errors"
	"testing"

	"job-portal-backend/internal/domain"
	"job-portal-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthCheck(t *testing.T) {
	up := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("refused") })
	ctx := context.Background()

	assert.Equal(t, domain.HealthStatus{Status: "ok", Database: "up", Cache: "disabled"},
		usecase.NewHealthUsecase(up, nil).Check(ctx))

	assert.Equal(t, domain.HealthStatus{Status: "ok", Database: "up", Cache: "up"},
		usecase.NewHealthUsecase(up, up.Ping).Check(ctx))

	// a cache outage does not degrade the service
	assert.Equal(t, domain.HealthStatus{Status: "ok", Database: "up", Cache: "down"},
		usecase.NewHealthUsecase(up, down.Ping).Check(ctx))

	assert.Equal(t, domain.HealthStatus{Status: "degraded", Database: "down", Cache: "disabled"},
		usecase.NewHealthUsecase(down, nil).Check(ctx))
}
