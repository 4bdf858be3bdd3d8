package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"localmarket/pkg/errors"
)

const UIDKey = "uid"

// TokenVerifier resolves a bearer ID token to the caller's uid.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// already verified further up the chain
		if UID(c) != "" {
			return next(c)
		}

		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.Unauthorized("Authorization header is required", nil)
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return errors.Unauthorized("Invalid authorization format", nil)
		}

		uid, err := m.verifier.VerifyToken(c.Request().Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			return errors.Unauthorized("Invalid or expired token", err)
		}

		c.Set(UIDKey, uid)
		return next(c)
	}
}

// UID returns the verified caller uid, or "" on unauthenticated routes.
func UID(c echo.Context) string {
	uid, _ := c.Get(UIDKey).(string)
	return uid
}
