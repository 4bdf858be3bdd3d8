package usecase

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"localmarket/internal/domain/service"
	"localmarket/pkg/errors"
)

// MinCheckoutUSD is the smallest charge the payment provider accepts.
const MinCheckoutUSD = 0.5

type CheckoutUseCase struct {
	payments      service.PaymentGateway
	rates         service.ExchangeRateProvider
	defaultOrigin string
}

func NewCheckoutUseCase(payments service.PaymentGateway, rates service.ExchangeRateProvider, defaultOrigin string) *CheckoutUseCase {
	return &CheckoutUseCase{
		payments:      payments,
		rates:         rates,
		defaultOrigin: defaultOrigin,
	}
}

type CheckoutInput struct {
	ProductID   string
	ProductName string
	MarketName  string
	Date        string
	// Price is in BDT.
	Price float64
}

// CreateCheckoutSession converts the BDT price to USD and opens a one-item
// card payment. origin is the storefront the customer returns to.
func (uc *CheckoutUseCase) CreateCheckoutSession(ctx context.Context, callerUID, origin string, input CheckoutInput) (string, error) {
	if input.ProductName == "" || input.Price <= 0 || input.ProductID == "" {
		return "", errors.Validation("Missing product info", nil)
	}

	rate := uc.rates.USDRate(ctx)
	usd := math.Round(input.Price*rate*100) / 100
	if usd < MinCheckoutUSD {
		minBDT := int(math.Ceil(MinCheckoutUSD / rate))
		return "", errors.BadRequest(fmt.Sprintf("Product price must be at least %d BDT. Please enter a higher amount.", minBDT), nil)
	}

	if origin == "" {
		origin = uc.defaultOrigin
	}
	origin = strings.TrimRight(origin, "/")

	session, err := uc.payments.CreateCheckoutSession(ctx, service.CheckoutRequest{
		ProductName: input.ProductName,
		UnitAmount:  int64(math.Round(usd * 100)),
		Currency:    "usd",
		SuccessURL:  origin + "/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   origin + "/payment-cancel",
		Metadata: map[string]string{
			"productId":   input.ProductID,
			"userUid":     callerUID,
			"productName": input.ProductName,
			"marketName":  input.MarketName,
			"price":       strconv.FormatFloat(input.Price, 'f', -1, 64),
			"date":        input.Date,
		},
	})
	if err != nil {
		return "", errors.Internal("Payment provider error", err)
	}

	return session.URL, nil
}

func (uc *CheckoutUseCase) GetCheckoutSession(ctx context.Context, sessionID string) (*service.CheckoutSession, error) {
	if sessionID == "" {
		return nil, errors.Validation("Missing session_id", nil)
	}

	session, err := uc.payments.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, errors.Internal("Failed to fetch session details", err)
	}
	return session, nil
}
