package handler

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/adapter/api/middleware"
	"localmarket/internal/usecase"
	"localmarket/pkg/errors"
	"localmarket/pkg/response"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type createOrderRequest struct {
	ProductID       string  `json:"productId" validate:"required"`
	ProductName     string  `json:"productName"`
	MarketName      string  `json:"marketName"`
	Price           float64 `json:"price"`
	Date            string  `json:"date"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"paymentStatus"`
	StripeSessionID string  `json:"stripeSessionId"`
	SessionID       string  `json:"sessionId"`
}

// CreateOrder answers 201 for a new order and 200 when the submission
// matched an existing one.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, created, err := h.orderUseCase.CreateOrder(c.Request().Context(), middleware.UID(c), usecase.CreateOrderInput{
		ProductID:       req.ProductID,
		ProductName:     req.ProductName,
		MarketName:      req.MarketName,
		Price:           req.Price,
		Date:            req.Date,
		Status:          req.Status,
		PaymentStatus:   req.PaymentStatus,
		StripeSessionID: req.StripeSessionID,
		SessionID:       req.SessionID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	if !created {
		return response.Success(c, order)
	}
	return response.Created(c, order)
}

func (h *OrderHandler) ListUserOrders(c echo.Context) error {
	orders, err := h.orderUseCase.ListUserOrders(c.Request().Context(), middleware.UID(c), c.Param("uid"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, orders)
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUseCase.ListOrders(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, orders)
}

func (h *OrderHandler) GetOrderBySession(c echo.Context) error {
	order, err := h.orderUseCase.GetOrderBySession(c.Request().Context(), c.Param("sessionId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, order)
}
