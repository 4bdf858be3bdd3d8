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

type firestoreAdvertisementRepository struct {
	client *firestore.Client
}

func NewFirestoreAdvertisementRepository(client *firestore.Client) repository.AdvertisementRepository {
	return &firestoreAdvertisementRepository{client: client}
}

func (r *firestoreAdvertisementRepository) Create(ctx context.Context, ad *entity.Advertisement) error {
	if ad.ID == "" {
		ad.ID = uuid.New().String()
	}
	if ad.CreatedAt.IsZero() {
		ad.CreatedAt = time.Now()
	}

	_, err := r.client.Collection(advertisementsCollection).Doc(ad.ID).Set(ctx, ad)
	if err != nil {
		return errors.Internal("Failed to create advertisement", err)
	}
	return nil
}

func (r *firestoreAdvertisementRepository) GetByID(ctx context.Context, id string) (*entity.Advertisement, error) {
	doc, err := r.client.Collection(advertisementsCollection).Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Advertisement", err)
		}
		return nil, errors.Internal("Failed to get advertisement", err)
	}

	var ad entity.Advertisement
	if err := doc.DataTo(&ad); err != nil {
		return nil, errors.Internal("Failed to parse advertisement data", err)
	}
	return &ad, nil
}

func (r *firestoreAdvertisementRepository) List(ctx context.Context, filter map[string]interface{}) ([]*entity.Advertisement, error) {
	query := applyFilter(r.client.Collection(advertisementsCollection).Query, filter).
		OrderBy("createdAt", firestore.Desc)

	ads, err := collect[entity.Advertisement](query.Documents(ctx))
	if err != nil {
		return nil, errors.Internal("Failed to list advertisements", err)
	}
	return ads, nil
}

func (r *firestoreAdvertisementRepository) Update(ctx context.Context, ad *entity.Advertisement) error {
	_, err := r.client.Collection(advertisementsCollection).Doc(ad.ID).Set(ctx, ad)
	if err != nil {
		return errors.Internal("Failed to update advertisement", err)
	}
	return nil
}

func (r *firestoreAdvertisementRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(advertisementsCollection).Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if IsNotFound(err) {
			return errors.NotFound("Advertisement", err)
		}
		return errors.Internal("Failed to delete advertisement", err)
	}
	return nil
}
