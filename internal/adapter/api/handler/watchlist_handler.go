package handler

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/adapter/api/middleware"
	"localmarket/internal/usecase"
	"localmarket/pkg/errors"
	"localmarket/pkg/response"
)

type WatchlistHandler struct {
	watchlistUseCase *usecase.WatchlistUseCase
}

func NewWatchlistHandler(watchlistUseCase *usecase.WatchlistUseCase) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistUseCase: watchlistUseCase,
	}
}

type addToWatchlistRequest struct {
	ProductID   string `json:"productId" validate:"required"`
	ProductName string `json:"productName"`
	MarketName  string `json:"marketName"`
	VendorUID   string `json:"vendorUid"`
	VendorName  string `json:"vendorName"`
	Date        string `json:"date"`
	UserName    string `json:"userName"`
}

func (h *WatchlistHandler) ListWatchlist(c echo.Context) error {
	items, err := h.watchlistUseCase.ListWatchlist(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, items)
}

func (h *WatchlistHandler) GetWatchlistItem(c echo.Context) error {
	item, err := h.watchlistUseCase.GetWatchlistItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, item)
}

func (h *WatchlistHandler) AddToWatchlist(c echo.Context) error {
	var req addToWatchlistRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	item, err := h.watchlistUseCase.AddToWatchlist(c.Request().Context(), middleware.CurrentUser(c), usecase.AddToWatchlistInput{
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		MarketName:  req.MarketName,
		VendorUID:   req.VendorUID,
		VendorName:  req.VendorName,
		Date:        req.Date,
		UserName:    req.UserName,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, item)
}

func (h *WatchlistHandler) RemoveFromWatchlist(c echo.Context) error {
	if err := h.watchlistUseCase.RemoveFromWatchlist(c.Request().Context(), middleware.UID(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "Watchlist entry deleted")
}

func (h *WatchlistHandler) ListUserWatchlist(c echo.Context) error {
	items, err := h.watchlistUseCase.ListUserWatchlist(c.Request().Context(), middleware.UID(c), c.Param("uid"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, items)
}
