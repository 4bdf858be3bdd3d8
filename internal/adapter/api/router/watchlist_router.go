package router

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/adapter/api/handler"
	"localmarket/internal/adapter/api/middleware"
	"localmarket/internal/domain/entity"
)

func SetupWatchlistRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	watchlistHandler := handler.GetWatchlistHandler()

	watchlist := api.Group("/watchlist")
	watchlist.Use(authMiddleware.Authenticate)

	watchlist.GET("", watchlistHandler.ListWatchlist)
	watchlist.GET("/:id", watchlistHandler.GetWatchlistItem)

	user := roleMiddleware.Require(entity.RoleUser)
	watchlist.POST("", watchlistHandler.AddToWatchlist, user)
	watchlist.DELETE("/:id", watchlistHandler.RemoveFromWatchlist, user)
	watchlist.GET("/user/:uid", watchlistHandler.ListUserWatchlist, user)
}
