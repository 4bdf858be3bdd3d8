package memory

import (
	"context"
	"time"

	"localmarket/internal/domain/entity"
	"localmarket/pkg/errors"
)

type watchlistRepository struct {
	store *Store
}

func watchlistCreatedAt(v interface{}) time.Time {
	return v.(*entity.WatchlistItem).CreatedAt
}

func (r *watchlistRepository) Create(ctx context.Context, item *entity.WatchlistItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if item.ID == "" {
		item.ID = newID()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	r.store.put(watchlistCollection, item.ID, item)
	return nil
}

func (r *watchlistRepository) GetByID(ctx context.Context, id string) (*entity.WatchlistItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	v, ok := r.store.get(watchlistCollection, id)
	if !ok {
		return nil, errors.NotFound("Watchlist entry", nil)
	}
	return v.(*entity.WatchlistItem), nil
}

func (r *watchlistRepository) List(ctx context.Context, filter map[string]interface{}) ([]*entity.WatchlistItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs := r.store.query(watchlistCollection, filter, watchlistCreatedAt, true)
	items := make([]*entity.WatchlistItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.(*entity.WatchlistItem))
	}
	return items, nil
}

func (r *watchlistRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if !r.store.remove(watchlistCollection, id) {
		return errors.NotFound("Watchlist entry", nil)
	}
	return nil
}
