package domain

import "context"

// Admin accounts live in their own table and never appear in users.
type Admin struct {
	ID       int64  `json:"admin_id"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	Create(ctx context.Context, admin *Admin) error
	// Upsert creates the admin or replaces the password of an existing one.
	Upsert(ctx context.Context, admin *Admin) error
}
