package usecase

import (
	"context"

	"localmarket/internal/domain/entity"
	"localmarket/internal/domain/repository"
	"localmarket/pkg/errors"
	"localmarket/pkg/logger"
)

type WatchlistUseCase struct {
	watchlistRepo repository.WatchlistRepository
	productRepo   repository.ProductRepository
}

func NewWatchlistUseCase(
	watchlistRepo repository.WatchlistRepository,
	productRepo repository.ProductRepository,
) *WatchlistUseCase {
	return &WatchlistUseCase{
		watchlistRepo: watchlistRepo,
		productRepo:   productRepo,
	}
}

type AddToWatchlistInput struct {
	ProductID   string
	ProductName string
	MarketName  string
	VendorUID   string
	VendorName  string
	Date        string
	UserName    string
}

func (uc *WatchlistUseCase) ListWatchlist(ctx context.Context) ([]*entity.WatchlistItem, error) {
	return uc.watchlistRepo.List(ctx, nil)
}

func (uc *WatchlistUseCase) GetWatchlistItem(ctx context.Context, id string) (*entity.WatchlistItem, error) {
	return uc.watchlistRepo.GetByID(ctx, id)
}

// AddToWatchlist stores an entry for caller. Product details the client left
// out are copied from the product itself.
func (uc *WatchlistUseCase) AddToWatchlist(ctx context.Context, caller *entity.User, input AddToWatchlistInput) (*entity.WatchlistItem, error) {
	logger.Debug("Adding product %s to watchlist for user %s", input.ProductID, caller.UID)

	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	item := &entity.WatchlistItem{
		UserUID:     caller.UID,
		UserName:    firstNonEmpty(input.UserName, displayName(caller)),
		ProductID:   product.ID,
		ProductName: firstNonEmpty(input.ProductName, product.Name),
		MarketName:  firstNonEmpty(input.MarketName, product.MarketName),
		VendorUID:   firstNonEmpty(input.VendorUID, product.VendorUID),
		VendorName:  firstNonEmpty(input.VendorName, product.VendorName),
		Date:        firstNonEmpty(input.Date, product.Date),
	}

	if err := uc.watchlistRepo.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "Invalid data")
	}
	return item, nil
}

func (uc *WatchlistUseCase) RemoveFromWatchlist(ctx context.Context, callerUID, id string) error {
	item, err := uc.watchlistRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item.UserUID != callerUID {
		return errors.PermissionDenied("You can only remove your own watchlist entries")
	}
	return uc.watchlistRepo.Delete(ctx, id)
}

// ListUserWatchlist returns uid's entries, newest first, each decorated with
// the product's current image. Products that no longer exist yield an empty
// image.
func (uc *WatchlistUseCase) ListUserWatchlist(ctx context.Context, callerUID, uid string) ([]entity.WatchlistItemWithImage, error) {
	if uid != callerUID {
		return nil, errors.PermissionDenied("You can only view your own watchlist")
	}

	items, err := uc.watchlistRepo.List(ctx, map[string]interface{}{"userUid": uid})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item.ProductID != "" && !seen[item.ProductID] {
			seen[item.ProductID] = true
			ids = append(ids, item.ProductID)
		}
	}

	products, err := uc.productRepo.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entity.WatchlistItemWithImage, 0, len(items))
	for _, item := range items {
		withImage := entity.WatchlistItemWithImage{WatchlistItem: *item}
		if p, ok := products[item.ProductID]; ok {
			withImage.ImageURL = p.ImageURL
		}
		result = append(result, withImage)
	}
	return result, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
