package service

import (
	"context"
)

// CheckoutRequest describes a one-item card payment in USD.
type CheckoutRequest struct {
	ProductName string
	// UnitAmount is in cents.
	UnitAmount int64
	Currency   string
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string
}

type CheckoutSession struct {
	ID            string            `json:"id"`
	URL           string            `json:"url,omitempty"`
	Status        string            `json:"status,omitempty"`
	PaymentStatus string            `json:"payment_status,omitempty"`
	AmountTotal   int64             `json:"amount_total"`
	Currency      string            `json:"currency,omitempty"`
	CustomerEmail string            `json:"customer_email,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}

// ExchangeRateProvider converts BDT into USD. USDRate never fails; it falls
// back to a configured rate when the upstream source is unavailable.
type ExchangeRateProvider interface {
	USDRate(ctx context.Context) float64
}
