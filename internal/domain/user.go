package domain

import (
	"context"
	"time"
)

// User roles. Only applicants and employers are stored in users; admins have
// their own table.
const (
	RoleApplicant = "applicant"
	RoleEmployer  = "employer"
	RoleAdmin     = "admin"
)

type User struct {
	ID        int64     `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash
	UserType  string    `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
}

// Applicant is the role extension row of an applicant user (shared primary key).
type Applicant struct {
	ID         int64   `json:"applicant_id"`
	ResumeLink *string `json:"resume_link"`
	Skills     *string `json:"skills"`
}

// Employer is the role extension row of an employer user (shared primary key).
type Employer struct {
	ID          int64   `json:"employer_id"`
	CompanyName *string `json:"company_name"`
	Website     *string `json:"website"`
	Location    *string `json:"location"`
}

// Registration is a user plus exactly one role extension, written atomically.
type Registration struct {
	User      *User
	Applicant *Applicant
	Employer  *Employer
}

// UserSummary is the admin listing view of a user.
type UserSummary struct {
	ID       int64  `json:"user_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
}

// RegisterInput carries the registration form, including the role-specific extras.
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	UserType    string
	ResumeLink  string
	Skills      string
	CompanyName string
	Website     string
	Location    string
}

// LoginUser is the minimal identity returned by a successful login. Exactly one
// of UserID and AdminID is set.
type LoginUser struct {
	UserID  int64  `json:"user_id,omitempty"`
	AdminID int64  `json:"admin_id,omitempty"`
	Name    string `json:"name,omitempty"`
	Email   string `json:"email"`
}

type UserRepository interface {
	Register(ctx context.Context, reg *Registration) error
	GetByEmailAndType(ctx context.Context, email, userType string) (*User, error)
	List(ctx context.Context) ([]UserSummary, error)
}

type EmployerRepository interface {
	Exists(ctx context.Context, employerID int64) (bool, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// AuthAuditor records authentication events in the audit log.
type AuthAuditor interface {
	LoginSucceeded(ctx context.Context, requestID, email, role string)
	LoginFailed(ctx context.Context, requestID, email, role, reason string)
	Registered(ctx context.Context, requestID, email, role string)
	AdminSeeded(ctx context.Context, requestID, email string)
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) error
	Login(ctx context.Context, email, password, userType string) (*LoginUser, error)
	EnsureAdmin(ctx context.Context, email, password string) (bool, error)
}

type UserUsecase interface {
	ListUsers(ctx context.Context) ([]UserSummary, error)
}
