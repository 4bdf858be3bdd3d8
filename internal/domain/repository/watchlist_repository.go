package repository

import (
	"context"

	"localmarket/internal/domain/entity"
)

type WatchlistRepository interface {
	Create(ctx context.Context, item *entity.WatchlistItem) error
	GetByID(ctx context.Context, id string) (*entity.WatchlistItem, error)
	List(ctx context.Context, filter map[string]interface{}) ([]*entity.WatchlistItem, error)
	Delete(ctx context.Context, id string) error
}
