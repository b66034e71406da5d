package usecase

import (
	"context"
	"time"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/database"
)

// CacheChecker pings the optional cache; nil means the cache is disabled.
type CacheChecker func(ctx context.Context) error

type healthUsecase struct {
	db    database.Pinger
	cache CacheChecker
}

func NewHealthUsecase(db database.Pinger, cache CacheChecker) domain.HealthUsecase {
	return &healthUsecase{db: db, cache: cache}
}

func (u *healthUsecase) Check(ctx context.Context) domain.HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := domain.HealthStatus{Status: "ok", Database: "up", Cache: "disabled"}

	if err := u.db.Ping(ctx); err != nil {
		status.Status = "degraded"
		status.Database = "down"
	}

	if u.cache != nil {
		status.Cache = "up"
		if err := u.cache(ctx); err != nil {
			status.Cache = "down"
		}
	}
	return status
}
