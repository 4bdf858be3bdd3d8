package memory

import (
	"context"
	"time"

	"localmarket/internal/domain/entity"
	"localmarket/pkg/errors"
)

type advertisementRepository struct {
	store *Store
}

func advertisementCreatedAt(v interface{}) time.Time {
	return v.(*entity.Advertisement).CreatedAt
}

func (r *advertisementRepository) Create(ctx context.Context, ad *entity.Advertisement) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if ad.ID == "" {
		ad.ID = newID()
	}
	if ad.CreatedAt.IsZero() {
		ad.CreatedAt = time.Now()
	}

	r.store.put(advertisementsCollection, ad.ID, ad)
	return nil
}

func (r *advertisementRepository) GetByID(ctx context.Context, id string) (*entity.Advertisement, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	v, ok := r.store.get(advertisementsCollection, id)
	if !ok {
		return nil, errors.NotFound("Advertisement", nil)
	}
	return v.(*entity.Advertisement), nil
}

func (r *advertisementRepository) List(ctx context.Context, filter map[string]interface{}) ([]*entity.Advertisement, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs := r.store.query(advertisementsCollection, filter, advertisementCreatedAt, true)
	ads := make([]*entity.Advertisement, 0, len(docs))
	for _, d := range docs {
		ads = append(ads, d.(*entity.Advertisement))
	}
	return ads, nil
}

func (r *advertisementRepository) Update(ctx context.Context, ad *entity.Advertisement) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.get(advertisementsCollection, ad.ID); !ok {
		return errors.NotFound("Advertisement", nil)
	}
	r.store.put(advertisementsCollection, ad.ID, ad)
	return nil
}

func (r *advertisementRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if !r.store.remove(advertisementsCollection, id) {
		return errors.NotFound("Advertisement", nil)
	}
	return nil
}
