package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localmarket/internal/adapter/repository/memory"
	"localmarket/internal/domain/entity"
	"localmarket/pkg/errors"
)

func newAdvertisement(t *testing.T, uc *AdvertisementUseCase) *entity.Advertisement {
	t.Helper()
	ad, err := uc.CreateAdvertisement(context.Background(), vendorA, CreateAdvertisementInput{
		Title:    "Fresh Hilsa",
		Image:    "https://img.market.test/hilsa.png",
		Desc:     "Weekend discount",
		Validity: "2024-06-30",
	})
	require.NoError(t, err)
	return ad
}

func TestAdvertisementUseCase_CreateStartsPending(t *testing.T) {
	uc := NewAdvertisementUseCase(memory.NewStore().Advertisements())
	ad := newAdvertisement(t, uc)

	assert.NotEmpty(t, ad.ID)
	assert.Equal(t, entity.ProductPending, ad.Status)
	assert.Equal(t, "vendor-a", ad.VendorUID)

	approved, err := uc.ListApprovedAdvertisements(context.Background())
	require.NoError(t, err)
	assert.Empty(t, approved)
}

func TestAdvertisementUseCase_VendorCannotChangeStatus(t *testing.T) {
	ctx := context.Background()
	uc := NewAdvertisementUseCase(memory.NewStore().Advertisements())
	ad := newAdvertisement(t, uc)

	approved := "approved"
	feedback := "looks fine"
	title := "Fresh Hilsa 10% off"
	updated, err := uc.UpdateAdvertisement(ctx, vendorA, ad.ID, UpdateAdvertisementInput{
		Status:        &approved,
		AdminFeedback: &feedback,
		Title:         &title,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProductPending, updated.Status)
	assert.Empty(t, updated.AdminFeedback)
	assert.Equal(t, "Fresh Hilsa 10% off", updated.Title)

	updated, err = uc.UpdateAdvertisement(ctx, admin, ad.ID, UpdateAdvertisementInput{Status: &approved, AdminFeedback: &feedback})
	require.NoError(t, err)
	assert.Equal(t, entity.ProductApproved, updated.Status)
	assert.Equal(t, "looks fine", updated.AdminFeedback)

	listed, err := uc.ListApprovedAdvertisements(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, ad.ID, listed[0].ID)
}

func TestAdvertisementUseCase_RejectsUnknownStatus(t *testing.T) {
	uc := NewAdvertisementUseCase(memory.NewStore().Advertisements())
	ad := newAdvertisement(t, uc)

	bogus := "published"
	_, err := uc.UpdateAdvertisement(context.Background(), admin, ad.ID, UpdateAdvertisementInput{Status: &bogus})
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestAdvertisementUseCase_OwnershipEnforced(t *testing.T) {
	ctx := context.Background()
	uc := NewAdvertisementUseCase(memory.NewStore().Advertisements())
	ad := newAdvertisement(t, uc)

	title := "Hijacked"
	_, err := uc.UpdateAdvertisement(ctx, vendorB, ad.ID, UpdateAdvertisementInput{Title: &title})
	assert.True(t, errors.Is(err, errors.CodePermissionDenied))

	err = uc.DeleteAdvertisement(ctx, vendorB, ad.ID)
	assert.True(t, errors.Is(err, errors.CodePermissionDenied))

	got, err := uc.GetAdvertisement(ctx, ad.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fresh Hilsa", got.Title)

	require.NoError(t, uc.DeleteAdvertisement(ctx, vendorA, ad.ID))
	_, err = uc.GetAdvertisement(ctx, ad.ID)
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}

func TestAdvertisementUseCase_AdminDeletesAny(t *testing.T) {
	ctx := context.Background()
	uc := NewAdvertisementUseCase(memory.NewStore().Advertisements())
	ad := newAdvertisement(t, uc)

	require.NoError(t, uc.DeleteAdvertisement(ctx, admin, ad.ID))
	err := uc.DeleteAdvertisement(ctx, admin, ad.ID)
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}
