package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"localmarket/internal/domain/service"
	"localmarket/pkg/errors"
)

func TestCheckoutUseCase_CreateSession(t *testing.T) {
	ctx := context.Background()
	payments := new(MockPaymentGateway)
	uc := NewCheckoutUseCase(payments, fixedRate(0.0091), "https://shop.test")

	payments.On("CreateCheckoutSession", mock.Anything, mock.MatchedBy(func(req service.CheckoutRequest) bool {
		return req.UnitAmount == 910 &&
			req.Currency == "usd" &&
			req.SuccessURL == "http://localhost:5173/payment-success?session_id={CHECKOUT_SESSION_ID}" &&
			req.CancelURL == "http://localhost:5173/payment-cancel" &&
			req.Metadata["userUid"] == "u1" &&
			req.Metadata["price"] == "1000"
	})).Return(&service.CheckoutSession{ID: "cs_1", URL: "https://pay.test/cs_1"}, nil).Once()

	url, err := uc.CreateCheckoutSession(ctx, "u1", "http://localhost:5173/", CheckoutInput{
		ProductID:   "p1",
		ProductName: "Onion",
		Price:       1000,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://pay.test/cs_1", url)

	payments.AssertExpectations(t)
}

func TestCheckoutUseCase_DefaultOrigin(t *testing.T) {
	payments := new(MockPaymentGateway)
	uc := NewCheckoutUseCase(payments, fixedRate(0.01), "https://shop.test")

	payments.On("CreateCheckoutSession", mock.Anything, mock.MatchedBy(func(req service.CheckoutRequest) bool {
		return req.CancelURL == "https://shop.test/payment-cancel"
	})).Return(&service.CheckoutSession{URL: "https://pay.test/x"}, nil).Once()

	_, err := uc.CreateCheckoutSession(context.Background(), "u1", "", CheckoutInput{ProductID: "p1", ProductName: "Rice", Price: 100})
	require.NoError(t, err)
	payments.AssertExpectations(t)
}

func TestCheckoutUseCase_Rejections(t *testing.T) {
	ctx := context.Background()
	payments := new(MockPaymentGateway)
	uc := NewCheckoutUseCase(payments, fixedRate(0.0091), "")

	_, err := uc.CreateCheckoutSession(ctx, "u1", "", CheckoutInput{ProductName: "Onion", Price: 100})
	assert.True(t, errors.Is(err, errors.CodeValidation))

	// 50 BDT is 0.46 USD, under the provider minimum of 0.50 USD = 55 BDT
	_, err = uc.CreateCheckoutSession(ctx, "u1", "", CheckoutInput{ProductID: "p1", ProductName: "Onion", Price: 50})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeBadRequest))
	assert.Contains(t, err.Error(), "55 BDT")

	payments.On("CreateCheckoutSession", mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()
	_, err = uc.CreateCheckoutSession(ctx, "u1", "", CheckoutInput{ProductID: "p1", ProductName: "Onion", Price: 500})
	assert.True(t, errors.Is(err, errors.CodeInternal))

	payments.AssertExpectations(t)
}

func TestCheckoutUseCase_GetSession(t *testing.T) {
	ctx := context.Background()
	payments := new(MockPaymentGateway)
	uc := NewCheckoutUseCase(payments, fixedRate(0.0091), "")

	_, err := uc.GetCheckoutSession(ctx, "")
	assert.True(t, errors.Is(err, errors.CodeValidation))

	payments.On("GetCheckoutSession", mock.Anything, "cs_1").Return(&service.CheckoutSession{ID: "cs_1", PaymentStatus: "paid"}, nil).Once()
	session, err := uc.GetCheckoutSession(ctx, "cs_1")
	require.NoError(t, err)
	assert.Equal(t, "paid", session.PaymentStatus)
}
