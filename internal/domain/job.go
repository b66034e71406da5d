package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound = errors.New("resource not found")
	// ErrConflict marks a write rejected by a uniqueness rule.
	ErrConflict = errors.New("resource already exists")
	// ErrInvalidReference marks a write rejected by a foreign key.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrInvalidData marks a value the database refused: missing, too long or out of range.
	ErrInvalidData = errors.New("invalid value")
)

// Job postings are immutable once created.
type Job struct {
	ID          int64     `json:"job_id"`
	EmployerID  int64     `json:"employer_id"`
	Title       string    `json:"job_title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Salary      float64   `json:"salary"`
	PostedDate  time.Time `json:"posted_date"`
}

// JobWithCompany extends Job with the employer's company name
type JobWithCompany struct {
	Job
	CompanyName string `json:"company_name"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	FetchWithCompany(ctx context.Context) ([]JobWithCompany, error)
	FetchByEmployerID(ctx context.Context, employerID int64) ([]Job, error)
}

// JobCache is a best-effort cache of the full job listing. Implementations
// swallow their own failures; a miss is always safe.
type JobCache interface {
	GetJobs(ctx context.Context) ([]JobWithCompany, bool)
	SetJobs(ctx context.Context, jobs []JobWithCompany)
	Invalidate(ctx context.Context)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, job *Job) error
	ListJobs(ctx context.Context) ([]JobWithCompany, error)
	ListJobsByEmployer(ctx context.Context, employerID int64) ([]Job, error)
}
