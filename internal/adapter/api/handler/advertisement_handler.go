package handler

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/adapter/api/middleware"
	"localmarket/internal/usecase"
	"localmarket/pkg/errors"
	"localmarket/pkg/response"
)

type AdvertisementHandler struct {
	advertisementUseCase *usecase.AdvertisementUseCase
}

func NewAdvertisementHandler(advertisementUseCase *usecase.AdvertisementUseCase) *AdvertisementHandler {
	return &AdvertisementHandler{
		advertisementUseCase: advertisementUseCase,
	}
}

type createAdvertisementRequest struct {
	Title    string `json:"title" validate:"required"`
	Image    string `json:"image" validate:"required"`
	Link     string `json:"link"`
	Desc     string `json:"desc"`
	Validity string `json:"validity"`
}

type updateAdvertisementRequest struct {
	Title         *string `json:"title"`
	Image         *string `json:"image"`
	Link          *string `json:"link"`
	Desc          *string `json:"desc"`
	Validity      *string `json:"validity"`
	Status        *string `json:"status"`
	RejectReason  *string `json:"rejectReason"`
	AdminFeedback *string `json:"adminFeedback"`
}

func (h *AdvertisementHandler) ListAdvertisements(c echo.Context) error {
	ads, err := h.advertisementUseCase.ListAdvertisements(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, ads)
}

func (h *AdvertisementHandler) ListApprovedAdvertisements(c echo.Context) error {
	ads, err := h.advertisementUseCase.ListApprovedAdvertisements(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, ads)
}

func (h *AdvertisementHandler) GetAdvertisement(c echo.Context) error {
	ad, err := h.advertisementUseCase.GetAdvertisement(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, ad)
}

func (h *AdvertisementHandler) CreateAdvertisement(c echo.Context) error {
	var req createAdvertisementRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ad, err := h.advertisementUseCase.CreateAdvertisement(c.Request().Context(), middleware.CurrentUser(c), usecase.CreateAdvertisementInput{
		Title:    req.Title,
		Image:    req.Image,
		Link:     req.Link,
		Desc:     req.Desc,
		Validity: req.Validity,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, ad)
}

func (h *AdvertisementHandler) UpdateAdvertisement(c echo.Context) error {
	var req updateAdvertisementRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	ad, err := h.advertisementUseCase.UpdateAdvertisement(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"), usecase.UpdateAdvertisementInput{
		Title:         req.Title,
		Image:         req.Image,
		Link:          req.Link,
		Desc:          req.Desc,
		Validity:      req.Validity,
		Status:        req.Status,
		RejectReason:  req.RejectReason,
		AdminFeedback: req.AdminFeedback,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, ad)
}

func (h *AdvertisementHandler) DeleteAdvertisement(c echo.Context) error {
	if err := h.advertisementUseCase.DeleteAdvertisement(c.Request().Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "Advertisement deleted")
}
