package usecase

import (
	"context"
	"errors"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo      domain.JobRepository
	employerRepo domain.EmployerRepository
	cache        domain.JobCache
}

// NewJobUsecase wires the job repositories. cache may be nil.
func NewJobUsecase(jobRepo domain.JobRepository, employerRepo domain.EmployerRepository, cache domain.JobCache) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:      jobRepo,
		employerRepo: employerRepo,
		cache:        cache,
	}
}

func (u *jobUsecase) CreateJob(ctx context.Context, job *domain.Job) error {
	exists, err := u.employerRepo.Exists(ctx, job.EmployerID)
	if err != nil {
		return apperror.Internal(err)
	}
	if !exists {
		return apperror.BadRequest("Invalid employer")
	}

	if err := u.jobRepo.Create(ctx, job); err != nil {
		// The employer vanished between the check and the insert.
		if errors.Is(err, domain.ErrInvalidReference) {
			return apperror.BadRequestWrap("Invalid employer", err)
		}
		return apperror.Internal(err)
	}

	if u.cache != nil {
		u.cache.Invalidate(ctx)
	}
	logFor(ctx).Info("job posted", "job_id", job.ID, "employer_id", job.EmployerID)
	return nil
}

func (u *jobUsecase) ListJobs(ctx context.Context) ([]domain.JobWithCompany, error) {
	if u.cache != nil {
		if jobs, ok := u.cache.GetJobs(ctx); ok {
			return jobs, nil
		}
	}

	jobs, err := u.jobRepo.FetchWithCompany(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if u.cache != nil {
		u.cache.SetJobs(ctx, jobs)
	}
	return jobs, nil
}

// ListJobsByEmployer does not validate the employer id; unknown ids yield an empty list.
func (u *jobUsecase) ListJobsByEmployer(ctx context.Context, employerID int64) ([]domain.Job, error) {
	jobs, err := u.jobRepo.FetchByEmployerID(ctx, employerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}
