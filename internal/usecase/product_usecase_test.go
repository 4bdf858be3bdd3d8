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

var (
	vendorA = &entity.User{UID: "vendor-a", Name: "Rahim Store", Role: entity.RoleVendor}
	vendorB = &entity.User{UID: "vendor-b", Role: entity.RoleVendor}
	admin   = &entity.User{UID: "admin-1", Role: entity.RoleAdmin}
)

func newProduct(t *testing.T, uc *ProductUseCase) *entity.Product {
	t.Helper()
	p, err := uc.CreateProduct(context.Background(), vendorA, CreateProductInput{
		Name:         "Onion",
		MarketName:   "Karwan Bazar",
		Date:         "2024-06-01",
		PricePerUnit: 60,
	})
	require.NoError(t, err)
	return p
}

func TestProductUseCase_CreateSeedsHistory(t *testing.T) {
	uc := NewProductUseCase(memory.NewStore().Products())
	p := newProduct(t, uc)

	assert.Equal(t, entity.ProductPending, p.Status)
	assert.Equal(t, "vendor-a", p.VendorUID)
	assert.Equal(t, "Rahim Store", p.VendorName)
	assert.Equal(t, []entity.PricePoint{{Date: "2024-06-01", Price: 60}}, p.Prices)

	_, err := uc.CreateProduct(context.Background(), vendorA, CreateProductInput{Name: "Free"})
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestProductUseCase_VendorCannotChangeStatus(t *testing.T) {
	ctx := context.Background()
	uc := NewProductUseCase(memory.NewStore().Products())
	p := newProduct(t, uc)

	approved := "approved"
	name := "Red Onion"
	updated, err := uc.UpdateProduct(ctx, vendorA, p.ID, UpdateProductInput{Status: &approved, Name: &name})
	require.NoError(t, err)
	assert.Equal(t, entity.ProductPending, updated.Status)
	assert.Equal(t, "Red Onion", updated.Name)

	updated, err = uc.UpdateProduct(ctx, admin, p.ID, UpdateProductInput{Status: &approved})
	require.NoError(t, err)
	assert.Equal(t, entity.ProductApproved, updated.Status)

	approvedList, err := uc.ListApprovedProducts(ctx)
	require.NoError(t, err)
	require.Len(t, approvedList, 1)
	assert.Equal(t, p.ID, approvedList[0].ID)
}

func TestProductUseCase_OwnershipOnUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	uc := NewProductUseCase(memory.NewStore().Products())
	p := newProduct(t, uc)

	name := "Stolen"
	_, err := uc.UpdateProduct(ctx, vendorB, p.ID, UpdateProductInput{Name: &name})
	assert.True(t, errors.Is(err, errors.CodePermissionDenied))

	err = uc.DeleteProduct(ctx, vendorB, p.ID)
	assert.True(t, errors.Is(err, errors.CodePermissionDenied))

	require.NoError(t, uc.DeleteProduct(ctx, admin, p.ID))
	_, err = uc.GetProduct(ctx, p.ID)
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}

func TestProductUseCase_PriceChangeAppendsHistory(t *testing.T) {
	ctx := context.Background()
	uc := NewProductUseCase(memory.NewStore().Products())
	p := newProduct(t, uc)

	price := 75.0
	date := "2024-06-02"
	updated, err := uc.UpdateProduct(ctx, vendorA, p.ID, UpdateProductInput{PricePerUnit: &price, Date: &date})
	require.NoError(t, err)
	assert.Equal(t, 75.0, updated.PricePerUnit)
	assert.Equal(t, []entity.PricePoint{
		{Date: "2024-06-01", Price: 60},
		{Date: "2024-06-02", Price: 75},
	}, updated.Prices)

	history, err := uc.GetPriceHistory(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	// same price again does not grow the history
	updated, err = uc.UpdateProduct(ctx, vendorA, p.ID, UpdateProductInput{PricePerUnit: &price})
	require.NoError(t, err)
	assert.Len(t, updated.Prices, 2)
}

func TestProductUseCase_ListVendorProducts(t *testing.T) {
	ctx := context.Background()
	uc := NewProductUseCase(memory.NewStore().Products())
	newProduct(t, uc)

	_, err := uc.CreateProduct(ctx, vendorB, CreateProductInput{Name: "Rice", MarketName: "New Market", Date: "2024-06-01", PricePerUnit: 80})
	require.NoError(t, err)

	mine, err := uc.ListVendorProducts(ctx, "vendor-b")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Rice", mine[0].Name)
}
