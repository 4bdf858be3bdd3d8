package memory

import (
	"context"
	"time"

	"localmarket/internal/domain/entity"
	"localmarket/pkg/errors"
)

type orderRepository struct {
	store *Store
}

func orderCreatedAt(v interface{}) time.Time {
	return v.(*entity.Order).CreatedAt
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if order.ID == "" {
		order.ID = newID()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	r.store.put(ordersCollection, order.ID, order)
	return nil
}

func (r *orderRepository) FindOne(ctx context.Context, filter map[string]interface{}) (*entity.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs := r.store.query(ordersCollection, filter, orderCreatedAt, true)
	if len(docs) == 0 {
		return nil, errors.NotFound("Order", nil)
	}
	return docs[0].(*entity.Order), nil
}

func (r *orderRepository) List(ctx context.Context, filter map[string]interface{}) ([]*entity.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs := r.store.query(ordersCollection, filter, orderCreatedAt, true)
	orders := make([]*entity.Order, 0, len(docs))
	for _, d := range docs {
		orders = append(orders, d.(*entity.Order))
	}
	return orders, nil
}
