package usecase

import (
	"context"

	"localmarket/internal/domain/entity"
	"localmarket/internal/domain/repository"
	"localmarket/pkg/errors"
)

type AuthorizationUseCase struct {
	userRepo repository.UserRepository
}

func NewAuthorizationUseCase(userRepo repository.UserRepository) *AuthorizationUseCase {
	return &AuthorizationUseCase{
		userRepo: userRepo,
	}
}

// Authorize resolves the user behind a verified uid and admits it only when
// its role is in allowed. It performs exactly one lookup and never writes.
func (uc *AuthorizationUseCase) Authorize(ctx context.Context, uid string, allowed entity.RoleSet) (*entity.User, error) {
	if uid == "" {
		return nil, errors.Unauthorized("No user UID found", nil)
	}

	user, err := uc.userRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			return nil, errors.UserNotFound(nil)
		}
		return nil, errors.Internal("Role check failed", err)
	}

	if !allowed.Has(user.Role) {
		return nil, errors.Forbidden("Forbidden: Insufficient role", nil)
	}

	return user, nil
}
