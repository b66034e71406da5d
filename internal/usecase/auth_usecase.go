package usecase

import (
	"context"
	"errors"
	"strings"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
)

const (
	msgInvalidCredentials = "Invalid credentials"
	msgBadPasswordConfig  = "Invalid password configuration"
	msgRegisterRejected   = "Email already exists or invalid data"
)

type authUsecase struct {
	userRepo  domain.UserRepository
	adminRepo domain.AdminRepository
	hasher    domain.PasswordHasher
	audit     domain.AuthAuditor
}

// NewAuthUsecase wires authentication. audit may be nil.
func NewAuthUsecase(userRepo domain.UserRepository, adminRepo domain.AdminRepository, hasher domain.PasswordHasher, audit domain.AuthAuditor) domain.AuthUsecase {
	if audit == nil {
		audit = noopAuditor{}
	}
	return &authUsecase{
		userRepo:  userRepo,
		adminRepo: adminRepo,
		hasher:    hasher,
		audit:     audit,
	}
}

func (u *authUsecase) Register(ctx context.Context, in domain.RegisterInput) error {
	if in.Password == "" {
		return apperror.BadRequest("Password is required")
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return apperror.BadRequest("Name, email and password are required")
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return apperror.Internal(err)
	}

	reg := &domain.Registration{
		User: &domain.User{
			Name:     in.Name,
			Email:    in.Email,
			Password: hashed,
			UserType: in.UserType,
		},
	}
	switch in.UserType {
	case domain.RoleApplicant:
		reg.Applicant = &domain.Applicant{
			ResumeLink: optional(in.ResumeLink),
			Skills:     optional(in.Skills),
		}
	case domain.RoleEmployer:
		reg.Employer = &domain.Employer{
			CompanyName: optional(in.CompanyName),
			Website:     optional(in.Website),
			Location:    optional(in.Location),
		}
	default:
		return apperror.BadRequest("Invalid user type")
	}

	if err := u.userRepo.Register(ctx, reg); err != nil {
		if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrInvalidReference) ||
			errors.Is(err, domain.ErrInvalidData) {
			return apperror.BadRequestWrap(msgRegisterRejected, err)
		}
		return apperror.Internal(err)
	}

	logFor(ctx).Info("user registered", "user_id", reg.User.ID, "user_type", in.UserType)
	u.audit.Registered(ctx, domain.RequestIDFrom(ctx), in.Email, in.UserType)
	return nil
}

// Login never tells the caller whether the account or the password was wrong.
func (u *authUsecase) Login(ctx context.Context, email, password, userType string) (*domain.LoginUser, error) {
	if userType == domain.RoleAdmin {
		admin, err := u.adminRepo.GetByEmail(ctx, email)
		if err != nil {
			return nil, u.lookupError(ctx, err, email, userType)
		}
		if err := u.checkPassword(ctx, admin.Password, password, email, userType); err != nil {
			return nil, err
		}
		u.audit.LoginSucceeded(ctx, domain.RequestIDFrom(ctx), email, userType)
		return &domain.LoginUser{AdminID: admin.ID, Email: admin.Email}, nil
	}

	user, err := u.userRepo.GetByEmailAndType(ctx, email, userType)
	if err != nil {
		return nil, u.lookupError(ctx, err, email, userType)
	}
	if err := u.checkPassword(ctx, user.Password, password, email, userType); err != nil {
		return nil, err
	}
	u.audit.LoginSucceeded(ctx, domain.RequestIDFrom(ctx), email, userType)
	return &domain.LoginUser{UserID: user.ID, Name: user.Name, Email: user.Email}, nil
}

func (u *authUsecase) lookupError(ctx context.Context, err error, email, role string) error {
	if errors.Is(err, domain.ErrNotFound) {
		u.audit.LoginFailed(ctx, domain.RequestIDFrom(ctx), email, role, "unknown_account")
		return apperror.Unauthorized(msgInvalidCredentials)
	}
	return apperror.Internal(err)
}

func (u *authUsecase) checkPassword(ctx context.Context, hash, password, email, role string) error {
	if hash == "" {
		logFor(ctx).Error("stored password is empty", "role", role)
		u.audit.LoginFailed(ctx, domain.RequestIDFrom(ctx), email, role, "empty_password_hash")
		return apperror.InternalMessage(msgBadPasswordConfig, nil)
	}
	if err := u.hasher.Compare(hash, password); err != nil {
		u.audit.LoginFailed(ctx, domain.RequestIDFrom(ctx), email, role, "password_mismatch")
		return apperror.Unauthorized(msgInvalidCredentials)
	}
	return nil
}

// EnsureAdmin creates the admin account if no admin with that email exists.
// It reports whether an account was created.
func (u *authUsecase) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	if email == "" || password == "" {
		return false, apperror.BadRequest("Admin email and password are required")
	}

	_, err := u.adminRepo.GetByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return false, err
	}

	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return false, err
	}
	if err := u.adminRepo.Create(ctx, &domain.Admin{Email: email, Password: hashed}); err != nil {
		// Lost a race with another instance seeding the same admin.
		if errors.Is(err, domain.ErrConflict) {
			return false, nil
		}
		return false, err
	}
	u.audit.AdminSeeded(ctx, domain.RequestIDFrom(ctx), email)
	return true, nil
}

type noopAuditor struct{}

func (noopAuditor) LoginSucceeded(context.Context, string, string, string) {}
func (noopAuditor) LoginFailed(context.Context, string, string, string, string) {}
func (noopAuditor) Registered(context.Context, string, string, string) {}
func (noopAuditor) AdminSeeded(context.Context, string, string) {}

// optional maps an empty form value to SQL NULL
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
