package handler

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/adapter/api/middleware"
	"localmarket/internal/usecase"
	"localmarket/pkg/errors"
	"localmarket/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type addReviewRequest struct {
	UserName string `json:"userName"`
	UserUID  string `json:"userUid"`
	Email    string `json:"email"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// updateReviewRequest ignores any userUid in the body; ownership is checked
// against the token.
type updateReviewRequest struct {
	Comment *string `json:"comment"`
	Rating  *int    `json:"rating"`
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	reviews, err := h.reviewUseCase.ListReviews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, reviews)
}

func (h *ReviewHandler) AddReview(c echo.Context) error {
	var req addReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	review, err := h.reviewUseCase.AddReview(c.Request().Context(), middleware.UID(c), c.Param("id"), usecase.AddReviewInput{
		UserName: req.UserName,
		UserUID:  req.UserUID,
		Email:    req.Email,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	review, err := h.reviewUseCase.UpdateReview(c.Request().Context(), middleware.UID(c), c.Param("id"), c.Param("reviewRef"), usecase.ReviewPatch{
		Comment: req.Comment,
		Rating:  req.Rating,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review)
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	if err := h.reviewUseCase.DeleteReview(c.Request().Context(), middleware.UID(c), c.Param("id"), c.Param("reviewRef")); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "Review deleted")
}
