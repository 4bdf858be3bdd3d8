package repository

import (
	"context"

	"localmarket/internal/domain/entity"
)

type UserRepository interface {
	// Create stores a new user. It fails with Conflict when the uid is taken
	// or the email (compared case-insensitively) belongs to another user. A
	// user with no role becomes admin when the store holds no user yet and a
	// plain user otherwise; that decision is atomic with the write.
	Create(ctx context.Context, user *entity.User) error
	GetByUID(ctx context.Context, uid string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// Update fails with Conflict when the new email belongs to another user.
	Update(ctx context.Context, user *entity.User) error
	// AnyExists reports whether at least one user document is stored.
	AnyExists(ctx context.Context) (bool, error)
	List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error)
	FindByField(ctx context.Context, field string, value interface{}) ([]*entity.User, error)
}
