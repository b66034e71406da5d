package postgres

import (
	"context"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/database"
)

type jobRepo struct {
	db database.DB
}

func NewJobRepository(db database.DB) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (employer_id, job_title, description, location, salary)
              VALUES ($1, $2, $3, $4, $5) RETURNING job_id, posted_date`
	err := r.db.QueryRow(ctx, query,
		job.EmployerID, job.Title, job.Description, job.Location, job.Salary,
	).Scan(&job.ID, &job.PostedDate)
	return mapConstraintError(err)
}

// FetchWithCompany returns every job with its employer's company name
func (r *jobRepo) FetchWithCompany(ctx context.Context) ([]domain.JobWithCompany, error) {
	query := `
		SELECT
			j.job_id, j.employer_id, j.job_title, j.description,
			j.location, j.salary, j.posted_date,
			e.company_name
		FROM jobs j
		JOIN employers e ON j.employer_id = e.employer_id
		ORDER BY j.job_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]domain.JobWithCompany, 0)
	for rows.Next() {
		var job domain.JobWithCompany
		if err := rows.Scan(
			&job.ID, &job.EmployerID, &job.Title, &job.Description,
			&job.Location, &job.Salary, &job.PostedDate,
			&job.CompanyName,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// FetchByEmployerID returns the jobs posted by one employer. An unknown
// employer simply has no jobs.
func (r *jobRepo) FetchByEmployerID(ctx context.Context, employerID int64) ([]domain.Job, error) {
	query := `SELECT job_id, employer_id, job_title, description, location, salary, posted_date
              FROM jobs WHERE employer_id = $1 ORDER BY job_id`

	rows, err := r.db.Query(ctx, query, employerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]domain.Job, 0)
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Location, &job.Salary, &job.PostedDate); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
