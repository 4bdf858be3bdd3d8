package router

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/adapter/api/handler"
	"localmarket/internal/adapter/api/middleware"
	"localmarket/internal/domain/entity"
)

func SetupProductRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	productHandler := handler.GetProductHandler()
	reviewHandler := handler.GetReviewHandler()

	products := api.Group("/products")
	products.GET("", productHandler.ListProducts)
	products.GET("/approved", productHandler.ListApprovedProducts)
	products.GET("/:id", productHandler.GetProduct)
	products.GET("/:id/reviews", reviewHandler.ListReviews)

	auth := authMiddleware.Authenticate
	vendor := roleMiddleware.Require(entity.RoleVendor)
	vendorOrAdmin := roleMiddleware.Require(entity.RoleVendor, entity.RoleAdmin)
	user := roleMiddleware.Require(entity.RoleUser)

	products.GET("/vendor/:uid", productHandler.ListVendorProducts, auth)
	products.GET("/:id/prices", productHandler.GetPriceHistory, auth)

	products.POST("", productHandler.CreateProduct, auth, vendor)
	products.PUT("/:id", productHandler.UpdateProduct, auth, vendorOrAdmin)
	products.DELETE("/:id", productHandler.DeleteProduct, auth, vendorOrAdmin)

	products.POST("/:id/reviews", reviewHandler.AddReview, auth, user)
	products.PUT("/:id/reviews/:reviewRef", reviewHandler.UpdateReview, auth, user)
	products.DELETE("/:id/reviews/:reviewRef", reviewHandler.DeleteReview, auth, user)
}
