package usecase

import (
	"context"

	"capitalhub-backend/internal/domain"
	"capitalhub-backend/pkg/apperror"
)

type authUsecase struct {
	userRepo domain.UserRepository
}

func NewAuthUsecase(userRepo domain.UserRepository) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo}
}

// GetCurrentUser resolves a principal's user row. The DB role is
// authoritative; token claims are never trusted for authorization.
func (uc *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("User not found")
	}
	if !user.Active {
		return nil, apperror.Forbidden("Account is deactivated")
	}
	return user, nil
}

// GetUserByEmail resolves the token subject (email) to a user row.
func (uc *authUsecase) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.NotFound("User not found")
	}
	if !user.Active {
		return nil, apperror.Forbidden("Account is deactivated")
	}
	return user, nil
}
