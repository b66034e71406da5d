package usecase

import (
	"context"
	"errors"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
)

const msgAlreadyApplied = "Already applied"

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(appRepo domain.ApplicationRepository) domain.ApplicationUsecase {
	return &applicationUsecase{applicationRepo: appRepo}
}

// Apply submits an application with status applied. The existence check gives
// the common case a clean error; the unique index settles concurrent duplicates.
func (uc *applicationUsecase) Apply(ctx context.Context, jobID, applicantID int64) (*domain.Application, error) {
	exists, err := uc.applicationRepo.CheckExists(ctx, jobID, applicantID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.BadRequest(msgAlreadyApplied)
	}

	app := &domain.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      domain.ApplicationStatusApplied,
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		switch {
		case errors.Is(err, domain.ErrConflict):
			return nil, apperror.BadRequestWrap(msgAlreadyApplied, err)
		case errors.Is(err, domain.ErrInvalidReference):
			return nil, apperror.BadRequestWrap("Invalid job or applicant", err)
		}
		return nil, apperror.Internal(err)
	}

	logFor(ctx).Info("application submitted", "application_id", app.ID, "job_id", jobID, "applicant_id", applicantID)
	return app, nil
}

// ListByJobID returns all applications for a job
func (uc *applicationUsecase) ListByJobID(ctx context.Context, jobID int64) ([]domain.ApplicationWithApplicant, error) {
	apps, err := uc.applicationRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// UpdateStatus overwrites the status as given. Status transitions are
// unconstrained; the database rejects values outside the enum.
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, applicationID int64, status string) error {
	if err := uc.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
