package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"localmarket/internal/adapter/repository/memory"
	"localmarket/internal/domain/entity"
	"localmarket/pkg/errors"
)

func TestOrderUseCase_DeduplicatesBySession(t *testing.T) {
	ctx := context.Background()
	publisher := new(MockPublisher)
	uc := NewOrderUseCase(memory.NewStore().Orders(), publisher)

	publisher.On("Publish", mock.Anything, EventOrderCreated, mock.AnythingOfType("*entity.Order")).Return(nil).Once()

	input := CreateOrderInput{ProductID: "p1", Price: 120, Date: "2024-06-01", SessionID: "cs_test_1"}
	first, created, err := uc.CreateOrder(ctx, "u1", input)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, entity.OrderCompleted, first.Status)
	assert.Equal(t, "u1", first.UserUID)

	again, created, err := uc.CreateOrder(ctx, "u1", input)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)

	got, err := uc.GetOrderBySession(ctx, "cs_test_1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	publisher.AssertExpectations(t)
}

func TestOrderUseCase_DeduplicatesByProductAndDate(t *testing.T) {
	ctx := context.Background()
	uc := NewOrderUseCase(memory.NewStore().Orders(), nil)

	input := CreateOrderInput{ProductID: "p1", Date: "2024-06-01"}
	first, created, err := uc.CreateOrder(ctx, "u1", input)
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := uc.CreateOrder(ctx, "u1", input)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)

	_, created, err = uc.CreateOrder(ctx, "u2", input)
	require.NoError(t, err)
	assert.True(t, created)

	_, _, err = uc.CreateOrder(ctx, "u1", CreateOrderInput{})
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestOrderUseCase_ListUserOrders(t *testing.T) {
	ctx := context.Background()
	uc := NewOrderUseCase(memory.NewStore().Orders(), nil)

	_, _, err := uc.CreateOrder(ctx, "u1", CreateOrderInput{ProductID: "p1", Date: "2024-06-01"})
	require.NoError(t, err)
	_, _, err = uc.CreateOrder(ctx, "u2", CreateOrderInput{ProductID: "p1", Date: "2024-06-01"})
	require.NoError(t, err)

	mine, err := uc.ListUserOrders(ctx, "u1", "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	_, err = uc.ListUserOrders(ctx, "u1", "u2")
	assert.True(t, errors.Is(err, errors.CodePermissionDenied))

	all, err := uc.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
