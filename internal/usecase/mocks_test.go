package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"localmarket/internal/domain/service"
)

type MockFirebaseAuth struct {
	mock.Mock
}

func (m *MockFirebaseAuth) VerifyToken(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *MockFirebaseAuth) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	args := m.Called(ctx, uid, newPassword)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event string, payload interface{}) error {
	args := m.Called(ctx, event, payload)
	return args.Error(0)
}

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateCheckoutSession(ctx context.Context, req service.CheckoutRequest) (*service.CheckoutSession, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CheckoutSession), args.Error(1)
}

func (m *MockPaymentGateway) GetCheckoutSession(ctx context.Context, sessionID string) (*service.CheckoutSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CheckoutSession), args.Error(1)
}

type fixedRate float64

func (r fixedRate) USDRate(context.Context) float64 {
	return float64(r)
}
