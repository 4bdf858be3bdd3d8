package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"localmarket/internal/domain/entity"
	"localmarket/internal/domain/repository"
	"localmarket/pkg/errors"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{client: client}
}

func (r *firestoreOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	_, err := r.client.Collection(ordersCollection).Doc(order.ID).Set(ctx, order)
	if err != nil {
		return errors.Internal("Failed to save order", err)
	}
	return nil
}

func (r *firestoreOrderRepository) FindOne(ctx context.Context, filter map[string]interface{}) (*entity.Order, error) {
	query := applyFilter(r.client.Collection(ordersCollection).Query, filter).Limit(1)

	orders, err := collect[entity.Order](query.Documents(ctx))
	if err != nil {
		return nil, errors.Internal("Failed to query orders", err)
	}
	if len(orders) == 0 {
		return nil, errors.NotFound("Order", nil)
	}
	return orders[0], nil
}

func (r *firestoreOrderRepository) List(ctx context.Context, filter map[string]interface{}) ([]*entity.Order, error) {
	query := applyFilter(r.client.Collection(ordersCollection).Query, filter).
		OrderBy("createdAt", firestore.Desc)

	orders, err := collect[entity.Order](query.Documents(ctx))
	if err != nil {
		return nil, errors.Internal("Failed to list orders", err)
	}
	return orders, nil
}
