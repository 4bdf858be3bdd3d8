package usecase

import (
	"context"
	"time"

	"localmarket/internal/domain/entity"
	"localmarket/internal/domain/repository"
	"localmarket/pkg/errors"
)

const dateLayout = "2006-01-02"

type ProductUseCase struct {
	productRepo repository.ProductRepository
}

func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
	}
}

type CreateProductInput struct {
	Name         string
	MarketName   string
	VendorName   string
	Date         string
	MarketDesc   string
	ImageURL     string
	PricePerUnit float64
	Prices       []entity.PricePoint
	ItemDesc     string
}

// UpdateProductInput is a partial update. Status, Feedback and Reason are
// only honoured for admins.
type UpdateProductInput struct {
	Name         *string
	MarketName   *string
	VendorName   *string
	Date         *string
	MarketDesc   *string
	ImageURL     *string
	PricePerUnit *float64
	Prices       []entity.PricePoint
	ItemDesc     *string
	Status       *string
	Feedback     *string
	Reason       *string
}

func (uc *ProductUseCase) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	return uc.productRepo.List(ctx, nil)
}

func (uc *ProductUseCase) ListApprovedProducts(ctx context.Context) ([]*entity.Product, error) {
	return uc.productRepo.List(ctx, map[string]interface{}{
		"status": string(entity.ProductApproved),
	})
}

func (uc *ProductUseCase) ListVendorProducts(ctx context.Context, vendorUID string) ([]*entity.Product, error) {
	return uc.productRepo.List(ctx, map[string]interface{}{
		"vendorUid": vendorUID,
	})
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *ProductUseCase) GetPriceHistory(ctx context.Context, id string) ([]entity.PricePoint, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.Prices == nil {
		return []entity.PricePoint{}, nil
	}
	return product.Prices, nil
}

// CreateProduct lists a product for vendor. New listings always start
// pending, and the price history starts with the listed unit price when the
// caller sent none.
func (uc *ProductUseCase) CreateProduct(ctx context.Context, vendor *entity.User, input CreateProductInput) (*entity.Product, error) {
	if input.PricePerUnit <= 0 {
		return nil, errors.Validation("pricePerUnit must be greater than 0", nil)
	}

	vendorName := input.VendorName
	if vendorName == "" {
		vendorName = displayName(vendor)
	}

	prices := input.Prices
	if len(prices) == 0 {
		prices = []entity.PricePoint{{Date: input.Date, Price: input.PricePerUnit}}
	}

	product := &entity.Product{
		Name:         input.Name,
		MarketName:   input.MarketName,
		VendorUID:    vendor.UID,
		VendorName:   vendorName,
		Date:         input.Date,
		MarketDesc:   input.MarketDesc,
		ImageURL:     input.ImageURL,
		PricePerUnit: input.PricePerUnit,
		Prices:       prices,
		Reviews:      []entity.Review{},
		ItemDesc:     input.ItemDesc,
		Status:       entity.ProductPending,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "Invalid data")
	}
	return product, nil
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, caller *entity.User, id string, input UpdateProductInput) (*entity.Product, error) {
	if !caller.IsAdmin() {
		input.Status = nil
		input.Feedback = nil
		input.Reason = nil
	}

	if input.Status != nil && !entity.ProductStatus(*input.Status).Valid() {
		return nil, errors.Validation("status must be one of: pending approved rejected", nil)
	}
	if input.PricePerUnit != nil && *input.PricePerUnit <= 0 {
		return nil, errors.Validation("pricePerUnit must be greater than 0", nil)
	}

	return uc.productRepo.Mutate(ctx, id, func(product *entity.Product) error {
		if !caller.IsAdmin() && !product.OwnedBy(caller.UID) {
			return errors.PermissionDenied("You can only modify your own products")
		}

		applyProductUpdate(product, input)
		return nil
	})
}

func applyProductUpdate(product *entity.Product, input UpdateProductInput) {
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.MarketName != nil {
		product.MarketName = *input.MarketName
	}
	if input.VendorName != nil {
		product.VendorName = *input.VendorName
	}
	if input.Date != nil {
		product.Date = *input.Date
	}
	if input.MarketDesc != nil {
		product.MarketDesc = *input.MarketDesc
	}
	if input.ImageURL != nil {
		product.ImageURL = *input.ImageURL
	}
	if input.ItemDesc != nil {
		product.ItemDesc = *input.ItemDesc
	}
	if input.Status != nil {
		product.Status = entity.ProductStatus(*input.Status)
	}
	if input.Feedback != nil {
		product.Feedback = *input.Feedback
	}
	if input.Reason != nil {
		product.Reason = *input.Reason
	}

	switch {
	case input.Prices != nil:
		product.Prices = input.Prices
	case input.PricePerUnit != nil && *input.PricePerUnit != product.PricePerUnit:
		date := time.Now().Format(dateLayout)
		if input.Date != nil && *input.Date != "" {
			date = *input.Date
		}
		product.Prices = append(product.Prices, entity.PricePoint{Date: date, Price: *input.PricePerUnit})
	}
	if input.PricePerUnit != nil {
		product.PricePerUnit = *input.PricePerUnit
	}
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, caller *entity.User, id string) error {
	if !caller.IsAdmin() {
		product, err := uc.productRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !product.OwnedBy(caller.UID) {
			return errors.PermissionDenied("You can only delete your own products")
		}
	}

	return uc.productRepo.Delete(ctx, id)
}

func displayName(user *entity.User) string {
	if user == nil {
		return ""
	}
	if user.DisplayName != "" {
		return user.DisplayName
	}
	return user.Name
}
