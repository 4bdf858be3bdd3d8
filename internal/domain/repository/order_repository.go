package repository

import (
	"context"

	"localmarket/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	// FindOne returns the newest order matching every filter field, or a
	// NOT_FOUND error.
	FindOne(ctx context.Context, filter map[string]interface{}) (*entity.Order, error)
	List(ctx context.Context, filter map[string]interface{}) ([]*entity.Order, error)
}
