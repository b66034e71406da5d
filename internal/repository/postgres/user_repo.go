package postgres

import (
	"context"
	"errors"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/database"

	"github.com/jackc/pgx/v5"
)

type userRepo struct {
	db database.DB
}

func NewUserRepository(db database.DB) domain.UserRepository {
	return &userRepo{db: db}
}

// Register inserts the user and its role row in one transaction, so a failed
// role insert never leaves an orphaned user behind.
func (r *userRepo) Register(ctx context.Context, reg *domain.Registration) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	user := reg.User
	query := `INSERT INTO users (name, email, password, user_type)
              VALUES ($1, $2, $3, $4) RETURNING user_id, created_at`
	err = tx.QueryRow(ctx, query, user.Name, user.Email, user.Password, user.UserType).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return mapConstraintError(err)
	}

	switch {
	case reg.Applicant != nil:
		reg.Applicant.ID = user.ID
		_, err = tx.Exec(ctx,
			`INSERT INTO applicants (applicant_id, resume_link, skills) VALUES ($1, $2, $3)`,
			reg.Applicant.ID, reg.Applicant.ResumeLink, reg.Applicant.Skills,
		)
	case reg.Employer != nil:
		reg.Employer.ID = user.ID
		_, err = tx.Exec(ctx,
			`INSERT INTO employers (employer_id, company_name, website, location) VALUES ($1, $2, $3, $4)`,
			reg.Employer.ID, reg.Employer.CompanyName, reg.Employer.Website, reg.Employer.Location,
		)
	}
	if err != nil {
		return mapConstraintError(err)
	}

	return tx.Commit(ctx)
}

func (r *userRepo) GetByEmailAndType(ctx context.Context, email, userType string) (*domain.User, error) {
	query := `SELECT user_id, name, email, password, user_type, created_at
              FROM users WHERE email = $1 AND user_type = $2`
	var user domain.User
	err := r.db.QueryRow(ctx, query, email, userType).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.UserType, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) List(ctx context.Context) ([]domain.UserSummary, error) {
	query := `SELECT user_id, name, email, user_type FROM users ORDER BY user_id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.UserSummary, 0)
	for rows.Next() {
		var u domain.UserSummary
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.UserType); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
