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

type firestoreWatchlistRepository struct {
	client *firestore.Client
}

func NewFirestoreWatchlistRepository(client *firestore.Client) repository.WatchlistRepository {
	return &firestoreWatchlistRepository{client: client}
}

func (r *firestoreWatchlistRepository) Create(ctx context.Context, item *entity.WatchlistItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	_, err := r.client.Collection(watchlistCollection).Doc(item.ID).Set(ctx, item)
	if err != nil {
		return errors.Internal("Failed to add to watchlist", err)
	}
	return nil
}

func (r *firestoreWatchlistRepository) GetByID(ctx context.Context, id string) (*entity.WatchlistItem, error) {
	doc, err := r.client.Collection(watchlistCollection).Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Watchlist entry", err)
		}
		return nil, errors.Internal("Failed to get watchlist entry", err)
	}

	var item entity.WatchlistItem
	if err := doc.DataTo(&item); err != nil {
		return nil, errors.Internal("Failed to parse watchlist entry", err)
	}
	return &item, nil
}

func (r *firestoreWatchlistRepository) List(ctx context.Context, filter map[string]interface{}) ([]*entity.WatchlistItem, error) {
	query := applyFilter(r.client.Collection(watchlistCollection).Query, filter).
		OrderBy("createdAt", firestore.Desc)

	items, err := collect[entity.WatchlistItem](query.Documents(ctx))
	if err != nil {
		return nil, errors.Internal("Failed to list watchlist", err)
	}
	return items, nil
}

func (r *firestoreWatchlistRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(watchlistCollection).Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if IsNotFound(err) {
			return errors.NotFound("Watchlist entry", err)
		}
		return errors.Internal("Failed to delete watchlist entry", err)
	}
	return nil
}
