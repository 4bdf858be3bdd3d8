package repository

import (
	"context"

	"localmarket/internal/domain/entity"
)

// ProductMutation edits a freshly loaded product in place. Returning an
// error aborts the write.
type ProductMutation func(product *entity.Product) error

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetMany(ctx context.Context, ids []string) (map[string]*entity.Product, error)
	List(ctx context.Context, filter map[string]interface{}) ([]*entity.Product, error)
	// Mutate loads the product, applies fn and persists the result as one
	// isolated read-modify-write. fn may run more than once on contention.
	Mutate(ctx context.Context, id string, fn ProductMutation) (*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
