package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusApplied  = "applied"
	ApplicationStatusReviewed = "reviewed"
	ApplicationStatusRejected = "rejected"
	ApplicationStatusAccepted = "accepted"
)

// Application links an applicant to a job. At most one exists per (job, applicant).
type Application struct {
	ID              int64     `json:"application_id"`
	JobID           int64     `json:"job_id"`
	ApplicantID     int64     `json:"applicant_id"`
	ApplicationDate time.Time `json:"application_date"`
	Status          string    `json:"status"`
}

// ApplicationWithApplicant is the employer's view of an application
type ApplicationWithApplicant struct {
	Application
	Name       string  `json:"name"`
	ResumeLink *string `json:"resume_link"`
	Skills     *string `json:"skills"`
}

// ApplicationRepository defines data access methods for applications
type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	CheckExists(ctx context.Context, jobID, applicantID int64) (bool, error)
	GetByJobID(ctx context.Context, jobID int64) ([]ApplicationWithApplicant, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

// ApplicationUsecase defines business logic for applications
type ApplicationUsecase interface {
	Apply(ctx context.Context, jobID, applicantID int64) (*Application, error)
	ListByJobID(ctx context.Context, jobID int64) ([]ApplicationWithApplicant, error)
	UpdateStatus(ctx context.Context, applicationID int64, status string) error
	// ExportByJobID returns an xlsx workbook and a suggested file name
	ExportByJobID(ctx context.Context, jobID int64) ([]byte, string, error)
}
