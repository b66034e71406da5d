package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"testing"

	"job-portal-backend/internal/domain"
	"job-portal-backend/internal/repository/postgres"
	"job-portal-backend/internal/usecase"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/logger"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errMismatch = errors.New("mismatch")

func assertAppError(t *testing.T, err error, code int, message string) {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, message, appErr.Message)
}

func newAuth(t *testing.T) (domain.AuthUsecase, *MockUserRepo, *MockAdminRepo, *recordingAuditor) {
	t.Helper()
	logger.Discard()
	users := new(MockUserRepo)
	admins := new(MockAdminRepo)
	audit := &recordingAuditor{}
	return usecase.NewAuthUsecase(users, admins, plainHasher{}, audit), users, admins, audit
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("applicant gets a role row and a hashed password", func(t *testing.T) {
		uc, users, _, audit := newAuth(t)
		users.On("Register", ctx, mock.AnythingOfType("*domain.Registration")).Return(nil).Run(func(args mock.Arguments) {
			reg := args.Get(1).(*domain.Registration)
			assert.Equal(t, "hashed:pw", reg.User.Password)
			require.NotNil(t, reg.Applicant)
			assert.Nil(t, reg.Employer)
			assert.Equal(t, "go", *reg.Applicant.Skills)
			assert.Nil(t, reg.Applicant.ResumeLink, "empty extras are stored as NULL")
		})

		err := uc.Register(ctx, domain.RegisterInput{Name: "Jane", Email: "jane@example.com", Password: "pw", UserType: "applicant", Skills: "go"})
		require.NoError(t, err)
		users.AssertExpectations(t)
		assert.Equal(t, []string{"registered:applicant:jane@example.com"}, audit.events)
	})

	t.Run("employer gets company details", func(t *testing.T) {
		uc, users, _, _ := newAuth(t)
		users.On("Register", ctx, mock.AnythingOfType("*domain.Registration")).Return(nil).Run(func(args mock.Arguments) {
			reg := args.Get(1).(*domain.Registration)
			require.NotNil(t, reg.Employer)
			require.NotNil(t, reg.Employer.CompanyName)
			assert.Equal(t, "Acme", *reg.Employer.CompanyName)
			assert.Equal(t, "Berlin", *reg.Employer.Location)
		})

		err := uc.Register(ctx, domain.RegisterInput{Name: "HR", Email: "hr@acme.io", Password: "pw", UserType: "employer", CompanyName: "Acme", Location: "Berlin"})
		require.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("missing password", func(t *testing.T) {
		uc, users, _, _ := newAuth(t)
		err := uc.Register(ctx, domain.RegisterInput{Name: "Jane", Email: "jane@example.com", UserType: "applicant"})
		assertAppError(t, err, http.StatusBadRequest, "Password is required")
		users.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("missing name", func(t *testing.T) {
		uc, _, _, _ := newAuth(t)
		err := uc.Register(ctx, domain.RegisterInput{Email: "jane@example.com", Password: "pw", UserType: "applicant"})
		assertAppError(t, err, http.StatusBadRequest, "Name, email and password are required")
	})

	t.Run("admin cannot self-register", func(t *testing.T) {
		uc, users, _, _ := newAuth(t)
		err := uc.Register(ctx, domain.RegisterInput{Name: "Root", Email: "root@example.com", Password: "pw", UserType: "admin"})
		assertAppError(t, err, http.StatusBadRequest, "Invalid user type")
		users.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email", func(t *testing.T) {
		uc, users, _, audit := newAuth(t)
		users.On("Register", ctx, mock.Anything).Return(fmt.Errorf("%w: users_email_key", domain.ErrConflict))

		err := uc.Register(ctx, domain.RegisterInput{Name: "Jane", Email: "jane@example.com", Password: "pw", UserType: "applicant"})
		assertAppError(t, err, http.StatusBadRequest, "Email already exists or invalid data")
		assert.Empty(t, audit.events)
	})

	t.Run("employer without company name is rejected by the store", func(t *testing.T) {
		uc, users, _, audit := newAuth(t)
		users.On("Register", ctx, mock.MatchedBy(func(reg *domain.Registration) bool {
			return reg.Employer != nil && reg.Employer.CompanyName == nil
		})).Return(fmt.Errorf("%w: employers.company_name", domain.ErrInvalidData))

		err := uc.Register(ctx, domain.RegisterInput{Name: "HR", Email: "hr@acme.io", Password: "pw", UserType: "employer"})
		assertAppError(t, err, http.StatusBadRequest, "Email already exists or invalid data")
		users.AssertExpectations(t)
		assert.Empty(t, audit.events)
	})

	t.Run("value too long", func(t *testing.T) {
		uc, users, _, _ := newAuth(t)
		users.On("Register", ctx, mock.Anything).Return(fmt.Errorf("%w: value too long", domain.ErrInvalidData))

		err := uc.Register(ctx, domain.RegisterInput{Name: "Jane", Email: "jane@example.com", Password: "pw", UserType: "applicant"})
		assertAppError(t, err, http.StatusBadRequest, "Email already exists or invalid data")
	})

	t.Run("database down", func(t *testing.T) {
		uc, users, _, _ := newAuth(t)
		users.On("Register", ctx, mock.Anything).Return(errors.New("connection refused"))

		err := uc.Register(ctx, domain.RegisterInput{Name: "Jane", Email: "jane@example.com", Password: "pw", UserType: "applicant"})
		assertAppError(t, err, http.StatusInternalServerError, "Server error")
	})
}

func TestRegister_OverlongEmailThroughRepository(t *testing.T) {
	logger.Discard()
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	email := strings.Repeat("x", 290) + "@example.com"
	pool.ExpectBegin()
	pool.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("Jane", email, "hashed:pw", "applicant").
		WillReturnError(&pgconn.PgError{Code: "22001", Message: "value too long for type character varying(255)"})
	pool.ExpectRollback()

	uc := usecase.NewAuthUsecase(postgres.NewUserRepository(pool), new(MockAdminRepo), plainHasher{}, nil)
	err = uc.Register(context.Background(), domain.RegisterInput{Name: "Jane", Email: email, Password: "pw", UserType: "applicant"})

	assertAppError(t, err, http.StatusBadRequest, "Email already exists or invalid data")
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	jane := &domain.User{ID: 5, Name: "Jane", Email: "jane@example.com", Password: "hashed:pw", UserType: "applicant"}

	t.Run("applicant", func(t *testing.T) {
		uc, users, _, audit := newAuth(t)
		users.On("GetByEmailAndType", ctx, "jane@example.com", "applicant").Return(jane, nil)

		got, err := uc.Login(ctx, "jane@example.com", "pw", "applicant")
		require.NoError(t, err)
		assert.Equal(t, &domain.LoginUser{UserID: 5, Name: "Jane", Email: "jane@example.com"}, got)
		assert.Equal(t, []string{"login_success:applicant:jane@example.com"}, audit.events)
	})

	t.Run("admin", func(t *testing.T) {
		uc, users, admins, _ := newAuth(t)
		admins.On("GetByEmail", ctx, "root@example.com").Return(&domain.Admin{ID: 1, Email: "root@example.com", Password: "hashed:pw"}, nil)

		got, err := uc.Login(ctx, "root@example.com", "pw", "admin")
		require.NoError(t, err)
		assert.Equal(t, &domain.LoginUser{AdminID: 1, Email: "root@example.com"}, got)
		users.AssertNotCalled(t, "GetByEmailAndType", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown account and wrong password look the same", func(t *testing.T) {
		uc, users, _, audit := newAuth(t)
		users.On("GetByEmailAndType", ctx, "ghost@example.com", "applicant").Return(nil, domain.ErrNotFound)
		users.On("GetByEmailAndType", ctx, "jane@example.com", "applicant").Return(jane, nil)

		_, errUnknown := uc.Login(ctx, "ghost@example.com", "pw", "applicant")
		_, errWrong := uc.Login(ctx, "jane@example.com", "nope", "applicant")

		assertAppError(t, errUnknown, http.StatusUnauthorized, "Invalid credentials")
		assertAppError(t, errWrong, http.StatusUnauthorized, "Invalid credentials")
		assert.Equal(t, []string{
			"login_failed:applicant:ghost@example.com:unknown_account",
			"login_failed:applicant:jane@example.com:password_mismatch",
		}, audit.events)
	})

	t.Run("role mismatch is unknown account", func(t *testing.T) {
		uc, users, _, _ := newAuth(t)
		users.On("GetByEmailAndType", ctx, "jane@example.com", "employer").Return(nil, domain.ErrNotFound)

		_, err := uc.Login(ctx, "jane@example.com", "pw", "employer")
		assertAppError(t, err, http.StatusUnauthorized, "Invalid credentials")
	})

	t.Run("empty stored password", func(t *testing.T) {
		uc, _, admins, _ := newAuth(t)
		admins.On("GetByEmail", ctx, "root@example.com").Return(&domain.Admin{ID: 1, Email: "root@example.com"}, nil)

		_, err := uc.Login(ctx, "root@example.com", "pw", "admin")
		assertAppError(t, err, http.StatusInternalServerError, "Invalid password configuration")
	})

	t.Run("lookup failure", func(t *testing.T) {
		uc, users, _, _ := newAuth(t)
		users.On("GetByEmailAndType", ctx, "jane@example.com", "applicant").Return(nil, errors.New("timeout"))

		_, err := uc.Login(ctx, "jane@example.com", "pw", "applicant")
		assertAppError(t, err, http.StatusInternalServerError, "Server error")
	})
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("creates missing admin", func(t *testing.T) {
		uc, _, admins, audit := newAuth(t)
		admins.On("GetByEmail", ctx, "root@example.com").Return(nil, domain.ErrNotFound)
		admins.On("Create", ctx, mock.AnythingOfType("*domain.Admin")).Return(nil).Run(func(args mock.Arguments) {
			assert.Equal(t, "hashed:s3cret", args.Get(1).(*domain.Admin).Password)
		})

		created, err := uc.EnsureAdmin(ctx, "root@example.com", "s3cret")
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, []string{"admin_seeded:root@example.com"}, audit.events)
	})

	t.Run("existing admin is left alone", func(t *testing.T) {
		uc, _, admins, _ := newAuth(t)
		admins.On("GetByEmail", ctx, "root@example.com").Return(&domain.Admin{ID: 1}, nil)

		created, err := uc.EnsureAdmin(ctx, "root@example.com", "s3cret")
		require.NoError(t, err)
		assert.False(t, created)
		admins.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("concurrent seed", func(t *testing.T) {
		uc, _, admins, _ := newAuth(t)
		admins.On("GetByEmail", ctx, "root@example.com").Return(nil, domain.ErrNotFound)
		admins.On("Create", ctx, mock.Anything).Return(domain.ErrConflict)

		created, err := uc.EnsureAdmin(ctx, "root@example.com", "s3cret")
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("requires credentials", func(t *testing.T) {
		uc, _, _, _ := newAuth(t)
		_, err := uc.EnsureAdmin(ctx, "", "")
		assert.Error(t, err)
	})
}
