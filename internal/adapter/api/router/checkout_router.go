package router

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/adapter/api/handler"
	"localmarket/internal/adapter/api/middleware"
)

func SetupCheckoutRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	checkoutHandler := handler.GetCheckoutHandler()

	checkout := api.Group("/checkout")
	checkout.Use(authMiddleware.Authenticate)

	checkout.POST("/create-checkout-session", checkoutHandler.CreateCheckoutSession)
	checkout.GET("/session-details", checkoutHandler.GetSessionDetails)
}
