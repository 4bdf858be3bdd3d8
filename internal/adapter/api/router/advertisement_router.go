package router

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/adapter/api/handler"
	"localmarket/internal/adapter/api/middleware"
	"localmarket/internal/domain/entity"
)

func SetupAdvertisementRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	adHandler := handler.GetAdvertisementHandler()

	ads := api.Group("/advertisements")
	ads.GET("", adHandler.ListAdvertisements)
	ads.GET("/approved", adHandler.ListApprovedAdvertisements)
	ads.GET("/:id", adHandler.GetAdvertisement)

	auth := authMiddleware.Authenticate
	ads.POST("", adHandler.CreateAdvertisement, auth, roleMiddleware.Require(entity.RoleVendor))
	ads.PUT("/:id", adHandler.UpdateAdvertisement, auth, roleMiddleware.Require(entity.RoleVendor, entity.RoleAdmin))
	ads.DELETE("/:id", adHandler.DeleteAdvertisement, auth, roleMiddleware.Require(entity.RoleVendor, entity.RoleAdmin))
}
