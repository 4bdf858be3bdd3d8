package handler

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/adapter/api/middleware"
	"localmarket/internal/domain/entity"
	"localmarket/internal/usecase"
	"localmarket/pkg/errors"
	"localmarket/pkg/response"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type createProductRequest struct {
	Name         string              `json:"name" validate:"required"`
	MarketName   string              `json:"marketName" validate:"required"`
	VendorName   string              `json:"vendorName"`
	Date         string              `json:"date" validate:"required"`
	MarketDesc   string              `json:"marketDesc"`
	ImageURL     string              `json:"imageUrl"`
	PricePerUnit float64             `json:"pricePerUnit" validate:"required,gt=0"`
	Prices       []entity.PricePoint `json:"prices"`
	ItemDesc     string              `json:"itemDesc"`
}

type updateProductRequest struct {
	Name         *string             `json:"name"`
	MarketName   *string             `json:"marketName"`
	VendorName   *string             `json:"vendorName"`
	Date         *string             `json:"date"`
	MarketDesc   *string             `json:"marketDesc"`
	ImageURL     *string             `json:"imageUrl"`
	PricePerUnit *float64            `json:"pricePerUnit"`
	Prices       []entity.PricePoint `json:"prices"`
	ItemDesc     *string             `json:"itemDesc"`
	Status       *string             `json:"status"`
	Feedback     *string             `json:"feedback"`
	Reason       *string             `json:"reason"`
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productUseCase.ListProducts(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

func (h *ProductHandler) ListApprovedProducts(c echo.Context) error {
	products, err := h.productUseCase.ListApprovedProducts(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

func (h *ProductHandler) ListVendorProducts(c echo.Context) error {
	products, err := h.productUseCase.ListVendorProducts(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) GetPriceHistory(c echo.Context) error {
	prices, err := h.productUseCase.GetPriceHistory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, prices)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), middleware.CurrentUser(c), usecase.CreateProductInput{
		Name:         req.Name,
		MarketName:   req.MarketName,
		VendorName:   req.VendorName,
		Date:         req.Date,
		MarketDesc:   req.MarketDesc,
		ImageURL:     req.ImageURL,
		PricePerUnit: req.PricePerUnit,
		Prices:       req.Prices,
		ItemDesc:     req.ItemDesc,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"), usecase.UpdateProductInput{
		Name:         req.Name,
		MarketName:   req.MarketName,
		VendorName:   req.VendorName,
		Date:         req.Date,
		MarketDesc:   req.MarketDesc,
		ImageURL:     req.ImageURL,
		PricePerUnit: req.PricePerUnit,
		Prices:       req.Prices,
		ItemDesc:     req.ItemDesc,
		Status:       req.Status,
		Feedback:     req.Feedback,
		Reason:       req.Reason,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.productUseCase.DeleteProduct(c.Request().Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "Product deleted")
}
