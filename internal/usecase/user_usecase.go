package usecase

import (
	"context"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
)

type userUsecase struct {
	userRepo domain.UserRepository
}

func NewUserUsecase(userRepo domain.UserRepository) domain.UserUsecase {
	return &userUsecase{userRepo: userRepo}
}

// ListUsers returns every registered user. There is no caller authorization.
func (u *userUsecase) ListUsers(ctx context.Context) ([]domain.UserSummary, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return users, nil
}
