package postgres

import (
	"context"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/database"
)

type employerRepo struct {
	db database.DB
}

func NewEmployerRepository(db database.DB) domain.EmployerRepository {
	return &employerRepo{db: db}
}

func (r *employerRepo) Exists(ctx context.Context, employerID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM employers WHERE employer_id = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, employerID).Scan(&exists)
	return exists, err
}
