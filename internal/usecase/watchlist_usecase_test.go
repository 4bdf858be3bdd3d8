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

func TestWatchlistUseCase_ListUserWatchlistAddsImages(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	uc := NewWatchlistUseCase(store.Watchlist(), store.Products())

	withImage := &entity.Product{Name: "Mango", MarketName: "Shyambazar", ImageURL: "https://img.test/mango.jpg"}
	plain := &entity.Product{Name: "Salt", MarketName: "Shyambazar"}
	require.NoError(t, store.Products().Create(ctx, withImage))
	require.NoError(t, store.Products().Create(ctx, plain))

	buyer := &entity.User{UID: "u1", DisplayName: "Karim", Role: entity.RoleUser}

	item, err := uc.AddToWatchlist(ctx, buyer, AddToWatchlistInput{ProductID: withImage.ID})
	require.NoError(t, err)
	assert.Equal(t, "u1", item.UserUID)
	assert.Equal(t, "Karim", item.UserName)
	assert.Equal(t, "Mango", item.ProductName)

	_, err = uc.AddToWatchlist(ctx, buyer, AddToWatchlistInput{ProductID: plain.ID})
	require.NoError(t, err)

	// the product disappears after being watched
	require.NoError(t, store.Products().Delete(ctx, plain.ID))

	items, err := uc.ListUserWatchlist(ctx, "u1", "u1")
	require.NoError(t, err)
	require.Len(t, items, 2)

	images := map[string]string{}
	for _, it := range items {
		images[it.ProductID] = it.ImageURL
	}
	assert.Equal(t, "https://img.test/mango.jpg", images[withImage.ID])
	assert.Equal(t, "", images[plain.ID])

	_, err = uc.ListUserWatchlist(ctx, "u2", "u1")
	assert.True(t, errors.Is(err, errors.CodePermissionDenied))
}

func TestWatchlistUseCase_RemoveOwnOnly(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	uc := NewWatchlistUseCase(store.Watchlist(), store.Products())

	p := &entity.Product{Name: "Garlic"}
	require.NoError(t, store.Products().Create(ctx, p))

	item, err := uc.AddToWatchlist(ctx, &entity.User{UID: "u1"}, AddToWatchlistInput{ProductID: p.ID})
	require.NoError(t, err)

	err = uc.RemoveFromWatchlist(ctx, "u2", item.ID)
	assert.True(t, errors.Is(err, errors.CodePermissionDenied))

	require.NoError(t, uc.RemoveFromWatchlist(ctx, "u1", item.ID))

	_, err = uc.GetWatchlistItem(ctx, item.ID)
	assert.True(t, errors.Is(err, errors.CodeNotFound))

	_, err = uc.AddToWatchlist(ctx, &entity.User{UID: "u1"}, AddToWatchlistInput{ProductID: "missing"})
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}
