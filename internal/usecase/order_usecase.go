package usecase

import (
	"context"

	"localmarket/internal/domain/entity"
	"localmarket/internal/domain/repository"
	"localmarket/pkg/errors"
	"localmarket/pkg/logger"
)

type OrderUseCase struct {
	orderRepo repository.OrderRepository
	publisher EventPublisher
}

func NewOrderUseCase(orderRepo repository.OrderRepository, publisher EventPublisher) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

type CreateOrderInput struct {
	ProductID       string
	ProductName     string
	MarketName      string
	Price           float64
	Date            string
	Status          string
	PaymentStatus   string
	StripeSessionID string
	SessionID       string
}

// CreateOrder records a purchase for callerUID. Repeated submissions of the
// same checkout session, or of the same product on the same date when no
// session is given, return the order already stored. created reports whether
// a new order was written.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, callerUID string, input CreateOrderInput) (order *entity.Order, created bool, err error) {
	if input.ProductID == "" {
		return nil, false, errors.Validation("productId is required", nil)
	}

	filter := map[string]interface{}{
		"userUid":   callerUID,
		"productId": input.ProductID,
		"date":      input.Date,
	}
	if input.SessionID != "" {
		filter = map[string]interface{}{"sessionId": input.SessionID}
	}

	existing, err := uc.orderRepo.FindOne(ctx, filter)
	if err == nil {
		logger.Debug("Order for session %q already recorded as %s", input.SessionID, existing.ID)
		return existing, false, nil
	}
	if !errors.Is(err, errors.CodeNotFound) {
		return nil, false, errors.Wrap(err, "Order save failed")
	}

	status := input.Status
	if status == "" {
		status = entity.OrderCompleted
	}

	order = &entity.Order{
		UserUID:         callerUID,
		ProductID:       input.ProductID,
		ProductName:     input.ProductName,
		MarketName:      input.MarketName,
		Price:           input.Price,
		Date:            input.Date,
		Status:          status,
		PaymentStatus:   input.PaymentStatus,
		StripeSessionID: input.StripeSessionID,
		SessionID:       input.SessionID,
	}
	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, false, errors.Wrap(err, "Order save failed")
	}

	publish(ctx, uc.publisher, EventOrderCreated, order)
	return order, true, nil
}

func (uc *OrderUseCase) ListUserOrders(ctx context.Context, callerUID, uid string) ([]*entity.Order, error) {
	if uid != callerUID {
		return nil, errors.PermissionDenied("You can only view your own orders")
	}
	return uc.orderRepo.List(ctx, map[string]interface{}{"userUid": uid})
}

func (uc *OrderUseCase) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	return uc.orderRepo.List(ctx, nil)
}

func (uc *OrderUseCase) GetOrderBySession(ctx context.Context, sessionID string) (*entity.Order, error) {
	return uc.orderRepo.FindOne(ctx, map[string]interface{}{"sessionId": sessionID})
}
