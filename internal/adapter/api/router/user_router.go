package router

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/adapter/api/handler"
	"localmarket/internal/adapter/api/middleware"
	"localmarket/internal/domain/entity"
)

func SetupUserRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	userHandler := handler.GetUserHandler()
	userOnly := roleMiddleware.Require(entity.RoleUser)

	users := api.Group("/users")
	users.Use(authMiddleware.Authenticate)

	users.POST("/sync", userHandler.SyncUser)
	users.GET("/uid/:uid", userHandler.GetUserByUID)
	users.PUT("/profile/update", userHandler.UpdateProfile, middleware.Sanitize())
	users.POST("/change-password", userHandler.ChangePassword, middleware.Sanitize())

	users.POST("/request-vendor", userHandler.RequestVendor, userOnly)
	users.POST("/request-admin", userHandler.RequestAdmin, userOnly)

	users.GET("", userHandler.ListUsers, roleMiddleware.AdminOnly)
	users.GET("/vendor-requests", userHandler.ListVendorRequests, roleMiddleware.AdminOnly)
	users.POST("/vendor-requests/:id", userHandler.ProcessVendorRequest, roleMiddleware.AdminOnly)
	users.GET("/admin-requests", userHandler.ListAdminRequests, roleMiddleware.AdminOnly)
	users.POST("/admin-requests/:id", userHandler.ProcessAdminRequest, roleMiddleware.AdminOnly)
	users.POST("/promote-to-admin/:uid", userHandler.PromoteToAdmin, roleMiddleware.AdminOnly)
	users.PUT("/:id", userHandler.AdminUpdateUser, roleMiddleware.AdminOnly)
}
