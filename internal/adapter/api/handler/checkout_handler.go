package handler

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/adapter/api/middleware"
	"localmarket/internal/usecase"
	"localmarket/pkg/errors"
	"localmarket/pkg/response"
)

type CheckoutHandler struct {
	checkoutUseCase *usecase.CheckoutUseCase
}

func NewCheckoutHandler(checkoutUseCase *usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: checkoutUseCase,
	}
}

type createCheckoutRequest struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	MarketName  string  `json:"marketName"`
	Date        string  `json:"date"`
	Price       float64 `json:"price"`
}

func (h *CheckoutHandler) CreateCheckoutSession(c echo.Context) error {
	var req createCheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	url, err := h.checkoutUseCase.CreateCheckoutSession(c.Request().Context(), middleware.UID(c), c.Request().Header.Get("Origin"), usecase.CheckoutInput{
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		MarketName:  req.MarketName,
		Date:        req.Date,
		Price:       req.Price,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"url": url})
}

func (h *CheckoutHandler) GetSessionDetails(c echo.Context) error {
	session, err := h.checkoutUseCase.GetCheckoutSession(c.Request().Context(), c.QueryParam("session_id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, session)
}
