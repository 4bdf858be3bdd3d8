package router

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/adapter/api/middleware"
)

// Setup mounts every resource under /api. apiMiddleware runs ahead of the
// per-route auth and role gates.
func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware, apiMiddleware ...echo.MiddlewareFunc) {
	api := e.Group("/api", apiMiddleware...)

	SetupUserRouter(api, authMiddleware, roleMiddleware)
	SetupProductRouter(api, authMiddleware, roleMiddleware)
	SetupAdvertisementRouter(api, authMiddleware, roleMiddleware)
	SetupOrderRouter(api, authMiddleware, roleMiddleware)
	SetupWatchlistRouter(api, authMiddleware, roleMiddleware)
	SetupCheckoutRouter(api, authMiddleware)
}
