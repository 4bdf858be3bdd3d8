package memory

import (
	"context"
	"time"

	"localmarket/internal/domain/entity"
	"localmarket/internal/domain/repository"
	"localmarket/pkg/errors"
)

type productRepository struct {
	store *Store
}

func productCreatedAt(v interface{}) time.Time {
	return v.(*entity.Product).CreatedAt
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if product.ID == "" {
		product.ID = newID()
	}
	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	r.store.put(productsCollection, product.ID, product)
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	v, ok := r.store.get(productsCollection, id)
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	return v.(*entity.Product), nil
}

func (r *productRepository) GetMany(ctx context.Context, ids []string) (map[string]*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	products := make(map[string]*entity.Product, len(ids))
	for _, id := range ids {
		if v, ok := r.store.get(productsCollection, id); ok {
			products[id] = v.(*entity.Product)
		}
	}
	return products, nil
}

func (r *productRepository) List(ctx context.Context, filter map[string]interface{}) ([]*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs := r.store.query(productsCollection, filter, productCreatedAt, true)
	products := make([]*entity.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, d.(*entity.Product))
	}
	return products, nil
}

// Mutate holds the store lock across load, fn and save.
func (r *productRepository) Mutate(ctx context.Context, id string, fn repository.ProductMutation) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	v, ok := r.store.get(productsCollection, id)
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	product := v.(*entity.Product)

	if err := fn(product); err != nil {
		return nil, errors.Wrap(err, "Failed to update product")
	}

	product.ID = id
	product.UpdatedAt = time.Now()
	r.store.put(productsCollection, id, product)
	return product, nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if !r.store.remove(productsCollection, id) {
		return errors.NotFound("Product", nil)
	}
	return nil
}
