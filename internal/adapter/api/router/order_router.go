package router

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/adapter/api/handler"
	"localmarket/internal/adapter/api/middleware"
	"localmarket/internal/domain/entity"
)

func SetupOrderRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	orderHandler := handler.GetOrderHandler()

	orders := api.Group("/orders")
	orders.Use(authMiddleware.Authenticate)

	user := roleMiddleware.Require(entity.RoleUser)
	orders.POST("", orderHandler.CreateOrder, user)
	orders.GET("/user/:uid", orderHandler.ListUserOrders, user)
	orders.GET("/session/:sessionId", orderHandler.GetOrderBySession, user)
	orders.GET("", orderHandler.ListOrders, roleMiddleware.AdminOnly)
}
