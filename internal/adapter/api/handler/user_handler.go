package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"localmarket/internal/adapter/api/middleware"
	"localmarket/internal/usecase"
	"localmarket/pkg/errors"
	"localmarket/pkg/logger"
	"localmarket/pkg/response"
	"localmarket/pkg/utils"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type syncUserRequest struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

type updateProfileRequest struct {
	DisplayName *string `json:"displayName" validate:"omitempty,min=2,max=50"`
	Phone       *string `json:"phone" validate:"omitempty,phone"`
	Address     *string `json:"address" validate:"omitempty,max=200"`
}

type adminUpdateUserRequest struct {
	Role          *string `json:"role"`
	Name          *string `json:"name"`
	DisplayName   *string `json:"displayName"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	Photo         *string `json:"photo"`
	VendorRequest *string `json:"vendorRequest"`
	AdminRequest  *string `json:"adminRequest"`
}

type processRequestRequest struct {
	Action string `json:"action"`
}

type changePasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// SyncUser upserts the caller's account. The body uid must match the token.
func (h *UserHandler) SyncUser(c echo.Context) error {
	var req syncUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if req.UID != "" && req.UID != middleware.UID(c) {
		return response.Error(c, errors.PermissionDenied("Cannot sync another user"))
	}

	user, err := h.userUseCase.SyncUser(c.Request().Context(), usecase.SyncUserInput{
		UID:   req.UID,
		Email: req.Email,
		Name:  req.Name,
		Photo: req.Photo,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) GetUserByUID(c echo.Context) error {
	user, err := h.userUseCase.GetUser(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

// ListUsers returns every user, or one page of them when page or limit is
// given.
func (h *UserHandler) ListUsers(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	if !params.Requested {
		users, _, err := h.userUseCase.ListUsers(c.Request().Context(), 0, 0)
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, users)
	}

	users, total, err := h.userUseCase.ListUsers(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, users, total, params.Page, params.PageSize)
}

func (h *UserHandler) AdminUpdateUser(c echo.Context) error {
	var req adminUpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	user, err := h.userUseCase.AdminUpdateUser(c.Request().Context(), c.Param("id"), usecase.AdminUpdateUserInput{
		Role:          req.Role,
		Name:          req.Name,
		DisplayName:   req.DisplayName,
		Phone:         req.Phone,
		Address:       req.Address,
		Photo:         req.Photo,
		VendorRequest: req.VendorRequest,
		AdminRequest:  req.AdminRequest,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := middleware.UID(c)
	logger.Debug("Updating profile for user %s", uid)

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, usecase.UpdateProfileInput{
		DisplayName: req.DisplayName,
		Phone:       req.Phone,
		Address:     req.Address,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.MessageWithData(c, "Profile updated successfully", user)
}

func (h *UserHandler) RequestVendor(c echo.Context) error {
	user, err := h.userUseCase.RequestVendor(c.Request().Context(), middleware.UID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.MessageWithData(c, "Vendor request sent", user)
}

func (h *UserHandler) ListVendorRequests(c echo.Context) error {
	users, err := h.userUseCase.ListVendorRequests(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, users)
}

func (h *UserHandler) ProcessVendorRequest(c echo.Context) error {
	var req processRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	action := usecase.RequestAction(req.Action)
	user, err := h.userUseCase.ProcessVendorRequest(c.Request().Context(), c.Param("id"), action)
	if err != nil {
		return response.Error(c, err)
	}

	return response.MessageWithData(c, fmt.Sprintf("Vendor request %sed", action), user)
}

func (h *UserHandler) RequestAdmin(c echo.Context) error {
	user, err := h.userUseCase.RequestAdmin(c.Request().Context(), middleware.UID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.MessageWithData(c, "Admin request sent", user)
}

func (h *UserHandler) ListAdminRequests(c echo.Context) error {
	users, err := h.userUseCase.ListAdminRequests(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, users)
}

func (h *UserHandler) ProcessAdminRequest(c echo.Context) error {
	var req processRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	action := usecase.RequestAction(req.Action)
	user, err := h.userUseCase.ProcessAdminRequest(c.Request().Context(), c.Param("id"), action)
	if err != nil {
		return response.Error(c, err)
	}

	return response.MessageWithData(c, fmt.Sprintf("Admin request %sed", action), user)
}

func (h *UserHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := h.userUseCase.ChangePassword(c.Request().Context(), middleware.UID(c), req.NewPassword); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, "Password updated successfully")
}

func (h *UserHandler) PromoteToAdmin(c echo.Context) error {
	user, err := h.userUseCase.PromoteToAdmin(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.MessageWithData(c, "User promoted to admin", user)
}
