package repository

import (
	"context"

	"localmarket/internal/domain/entity"
)

type AdvertisementRepository interface {
	Create(ctx context.Context, ad *entity.Advertisement) error
	GetByID(ctx context.Context, id string) (*entity.Advertisement, error)
	List(ctx context.Context, filter map[string]interface{}) ([]*entity.Advertisement, error)
	Update(ctx context.Context, ad *entity.Advertisement) error
	Delete(ctx context.Context, id string) error
}
