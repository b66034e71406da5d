package usecase_test

import (
	"context"

	"job-portal-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Register(ctx context.Context, reg *domain.Registration) error {
	return m.Called(ctx, reg).Error(0)
}

func (m *MockUserRepo) GetByEmailAndType(ctx context.Context, email, userType string) (*domain.User, error) {
	args := m.Called(ctx, email, userType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) List(ctx context.Context) ([]domain.UserSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserSummary), args.Error(1)
}

type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAdminRepo) Create(ctx context.Context, admin *domain.Admin) error {
	return m.Called(ctx, admin).Error(0)
}

func (m *MockAdminRepo) Upsert(ctx context.Context, admin *domain.Admin) error {
	return m.Called(ctx, admin).Error(0)
}

type MockEmployerRepo struct {
	mock.Mock
}

func (m *MockEmployerRepo) Exists(ctx context.Context, employerID int64) (bool, error) {
	args := m.Called(ctx, employerID)
	return args.Bool(0), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) FetchWithCompany(ctx context.Context) ([]domain.JobWithCompany, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobWithCompany), args.Error(1)
}

func (m *MockJobRepo) FetchByEmployerID(ctx context.Context, employerID int64) ([]domain.Job, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) CheckExists(ctx context.Context, jobID, applicantID int64) (bool, error) {
	args := m.Called(ctx, jobID, applicantID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.ApplicationWithApplicant, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApplicationWithApplicant), args.Error(1)
}

func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockJobCache struct {
	mock.Mock
}

func (m *MockJobCache) GetJobs(ctx context.Context) ([]domain.JobWithCompany, bool) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]domain.JobWithCompany), args.Bool(1)
}

func (m *MockJobCache) SetJobs(ctx context.Context, jobs []domain.JobWithCompany) {
	m.Called(ctx, jobs)
}

func (m *MockJobCache) Invalidate(ctx context.Context) {
	m.Called(ctx)
}

// plainHasher stores passwords with a visible prefix so tests can assert on them.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errMismatch
	}
	return nil
}

type recordingAuditor struct {
	events []string
}

func (a *recordingAuditor) LoginSucceeded(_ context.Context, _, email, role string) {
	a.events = append(a.events, "login_success:"+role+":"+email)
}

func (a *recordingAuditor) LoginFailed(_ context.Context, _, email, role, reason string) {
	a.events = append(a.events, "login_failed:"+role+":"+email+":"+reason)
}

func (a *recordingAuditor) Registered(_ context.Context, _, email, role string) {
	a.events = append(a.events, "registered:"+role+":"+email)
}

func (a *recordingAuditor) AdminSeeded(_ context.Context, _, email string) {
	a.events = append(a.events, "admin_seeded:"+email)
}
