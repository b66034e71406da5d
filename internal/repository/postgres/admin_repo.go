package postgres

import (
	"context"
	"errors"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/database"

	"github.com/jackc/pgx/v5"
)

type adminRepo struct {
	db database.DB
}

func NewAdminRepository(db database.DB) domain.AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	query := `SELECT admin_id, email, password FROM admins WHERE email = $1`
	var admin domain.Admin
	err := r.db.QueryRow(ctx, query, email).Scan(&admin.ID, &admin.Email, &admin.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepo) Create(ctx context.Context, admin *domain.Admin) error {
	query := `INSERT INTO admins (email, password) VALUES ($1, $2) RETURNING admin_id`
	err := r.db.QueryRow(ctx, query, admin.Email, admin.Password).Scan(&admin.ID)
	return mapConstraintError(err)
}

func (r *adminRepo) Upsert(ctx context.Context, admin *domain.Admin) error {
	query := `INSERT INTO admins (email, password) VALUES ($1, $2)
              ON CONFLICT (email) DO UPDATE SET password = EXCLUDED.password
              RETURNING admin_id`
	return r.db.QueryRow(ctx, query, admin.Email, admin.Password).Scan(&admin.ID)
}
