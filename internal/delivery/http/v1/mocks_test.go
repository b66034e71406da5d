package v1

import (
	"context"

	"job-portal-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type mockAuthUC struct{ mock.Mock }

func (m *mockAuthUC) Register(ctx context.Context, in domain.RegisterInput) error {
	return m.Called(ctx, in).Error(0)
}

func (m *mockAuthUC) Login(ctx context.Context, email, password, userType string) (*domain.LoginUser, error) {
	args := m.Called(ctx, email, password, userType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoginUser), args.Error(1)
}

func (m *mockAuthUC) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	args := m.Called(ctx, email, password)
	return args.Bool(0), args.Error(1)
}

type mockJobUC struct{ mock.Mock }

func (m *mockJobUC) CreateJob(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *mockJobUC) ListJobs(ctx context.Context) ([]domain.JobWithCompany, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobWithCompany), args.Error(1)
}

func (m *mockJobUC) ListJobsByEmployer(ctx context.Context, employerID int64) ([]domain.Job, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

type mockApplicationUC struct{ mock.Mock }

func (m *mockApplicationUC) Apply(ctx context.Context, jobID, applicantID int64) (*domain.Application, error) {
	args := m.Called(ctx, jobID, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *mockApplicationUC) ListByJobID(ctx context.Context, jobID int64) ([]domain.ApplicationWithApplicant, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApplicationWithApplicant), args.Error(1)
}

func (m *mockApplicationUC) UpdateStatus(ctx context.Context, applicationID int64, status string) error {
	return m.Called(ctx, applicationID, status).Error(0)
}

func (m *mockApplicationUC) ExportByJobID(ctx context.Context, jobID int64) ([]byte, string, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

type mockUserUC struct{ mock.Mock }

func (m *mockUserUC) ListUsers(ctx context.Context) ([]domain.UserSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserSummary), args.Error(1)
}

type stubHealthUC struct{ status domain.HealthStatus }

func (s stubHealthUC) Check(context.Context) domain.HealthStatus { return s.status }
