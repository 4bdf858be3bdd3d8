package router

import (
	"strings"

	"github.com/labstack/echo/v4"

	"localmarket/internal/adapter/api/middleware"
)

// IdentifyCaller verifies a bearer token when one is present and records the
// uid, but never rejects the request. Routes that need a caller still go
// through AuthMiddleware.Authenticate.
func IdentifyCaller(verifier middleware.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return next(c)
			}

			uid, err := verifier.VerifyToken(c.Request().Context(), strings.TrimSpace(parts[1]))
			if err != nil {
				return next(c)
			}

			c.Set(middleware.UIDKey, uid)
			return next(c)
		}
	}
}
