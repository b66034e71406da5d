package usecase

import (
	"context"
	"log/slog"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/logger"
)

func logFor(ctx context.Context) *slog.Logger {
	if id := domain.RequestIDFrom(ctx); id != "" {
		return logger.Log.With("request_id", id)
	}
	return logger.Log
}
