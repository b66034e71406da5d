package postgres

import (
	"context"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/database"
)

type applicationRepo struct {
	db database.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db database.DB) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. The (job_id, applicant_id) unique index
// rejects duplicates with domain.ErrConflict.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (job_id, applicant_id, status)
		VALUES ($1, $2, $3)
		RETURNING application_id, application_date`

	if app.Status == "" {
		app.Status = domain.ApplicationStatusApplied
	}

	err := r.db.QueryRow(ctx, query, app.JobID, app.ApplicantID, app.Status).
		Scan(&app.ID, &app.ApplicationDate)
	return mapConstraintError(err)
}

// CheckExists checks if an application already exists for the job/applicant combination
func (r *applicationRepo) CheckExists(ctx context.Context, jobID, applicantID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND applicant_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, jobID, applicantID).Scan(&exists)
	return exists, err
}

// GetByJobID retrieves all applications for a job with joined applicant data
func (r *applicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.ApplicationWithApplicant, error) {
	query := `
		SELECT
			a.application_id, a.job_id, a.applicant_id, a.application_date, a.status,
			u.name, ap.resume_link, ap.skills
		FROM applications a
		JOIN applicants ap ON a.applicant_id = ap.applicant_id
		JOIN users u ON ap.applicant_id = u.user_id
		WHERE a.job_id = $1
		ORDER BY a.application_id`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := make([]domain.ApplicationWithApplicant, 0)
	for rows.Next() {
		var app domain.ApplicationWithApplicant
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.ApplicantID, &app.ApplicationDate, &app.Status,
			&app.Name, &app.ResumeLink, &app.Skills,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// UpdateStatus overwrites the status. Values outside the status enum are
// rejected by the table's CHECK constraint, not here. An unknown id is not an error.
func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE applications SET status = $2 WHERE application_id = $1`
	_, err := r.db.Exec(ctx, query, id, status)
	return err
}
