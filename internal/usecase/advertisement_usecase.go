package usecase

import (
	"context"

	"localmarket/internal/domain/entity"
	"localmarket/internal/domain/repository"
	"localmarket/pkg/errors"
)

type AdvertisementUseCase struct {
	adRepo repository.AdvertisementRepository
}

func NewAdvertisementUseCase(adRepo repository.AdvertisementRepository) *AdvertisementUseCase {
	return &AdvertisementUseCase{
		adRepo: adRepo,
	}
}

type CreateAdvertisementInput struct {
	Title    string
	Image    string
	Link     string
	Desc     string
	Validity string
}

// UpdateAdvertisementInput is a partial update. Status, RejectReason and
// AdminFeedback are only honoured for admins.
type UpdateAdvertisementInput struct {
	Title         *string
	Image         *string
	Link          *string
	Desc          *string
	Validity      *string
	Status        *string
	RejectReason  *string
	AdminFeedback *string
}

func (uc *AdvertisementUseCase) ListAdvertisements(ctx context.Context) ([]*entity.Advertisement, error) {
	return uc.adRepo.List(ctx, nil)
}

func (uc *AdvertisementUseCase) ListApprovedAdvertisements(ctx context.Context) ([]*entity.Advertisement, error) {
	return uc.adRepo.List(ctx, map[string]interface{}{
		"status": string(entity.ProductApproved),
	})
}

func (uc *AdvertisementUseCase) GetAdvertisement(ctx context.Context, id string) (*entity.Advertisement, error) {
	return uc.adRepo.GetByID(ctx, id)
}

func (uc *AdvertisementUseCase) CreateAdvertisement(ctx context.Context, vendor *entity.User, input CreateAdvertisementInput) (*entity.Advertisement, error) {
	ad := &entity.Advertisement{
		Title:       input.Title,
		Image:       input.Image,
		Link:        input.Link,
		Desc:        input.Desc,
		Validity:    input.Validity,
		Status:      entity.ProductPending,
		VendorUID:   vendor.UID,
		VendorEmail: vendor.Email,
	}

	if err := uc.adRepo.Create(ctx, ad); err != nil {
		return nil, errors.Wrap(err, "Invalid data")
	}
	return ad, nil
}

func (uc *AdvertisementUseCase) UpdateAdvertisement(ctx context.Context, caller *entity.User, id string, input UpdateAdvertisementInput) (*entity.Advertisement, error) {
	ad, err := uc.adRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !caller.IsAdmin() {
		if !ad.OwnedBy(caller.UID) {
			return nil, errors.PermissionDenied("You can only modify your own advertisements")
		}
		input.Status = nil
		input.RejectReason = nil
		input.AdminFeedback = nil
	}

	if input.Status != nil {
		status := entity.ProductStatus(*input.Status)
		if !status.Valid() {
			return nil, errors.Validation("status must be one of: pending approved rejected", nil)
		}
		ad.Status = status
	}
	if input.Title != nil {
		ad.Title = *input.Title
	}
	if input.Image != nil {
		ad.Image = *input.Image
	}
	if input.Link != nil {
		ad.Link = *input.Link
	}
	if input.Desc != nil {
		ad.Desc = *input.Desc
	}
	if input.Validity != nil {
		ad.Validity = *input.Validity
	}
	if input.RejectReason != nil {
		ad.RejectReason = *input.RejectReason
	}
	if input.AdminFeedback != nil {
		ad.AdminFeedback = *input.AdminFeedback
	}

	if err := uc.adRepo.Update(ctx, ad); err != nil {
		return nil, errors.Wrap(err, "Invalid data")
	}
	return ad, nil
}

func (uc *AdvertisementUseCase) DeleteAdvertisement(ctx context.Context, caller *entity.User, id string) error {
	if !caller.IsAdmin() {
		ad, err := uc.adRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !ad.OwnedBy(caller.UID) {
			return errors.PermissionDenied("You can only delete your own advertisements")
		}
	}

	return uc.adRepo.Delete(ctx, id)
}
