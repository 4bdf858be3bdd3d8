package middleware

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/domain/entity"
	"localmarket/internal/infrastructure/metrics"
	"localmarket/internal/usecase"
	"localmarket/pkg/errors"
)

const UserKey = "user"

type RoleMiddleware struct {
	gate    *usecase.AuthorizationUseCase
	metrics *metrics.Metrics
}

func NewRoleMiddleware(gate *usecase.AuthorizationUseCase, m *metrics.Metrics) *RoleMiddleware {
	return &RoleMiddleware{
		gate:    gate,
		metrics: m,
	}
}

// Require admits the request only when the authenticated caller holds one of
// roles. The resolved user is stored under UserKey for the handler.
func (m *RoleMiddleware) Require(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles...)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := m.gate.Authorize(c.Request().Context(), UID(c), allowed)
			if err != nil {
				if m.metrics != nil {
					m.metrics.RecordAuthorizationDenied(errorCode(err))
				}
				return err
			}

			c.Set(UserKey, user)
			return next(c)
		}
	}
}

func (m *RoleMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.Require(entity.RoleAdmin)(next)
}

// CurrentUser returns the user resolved by Require, or nil on routes without
// a role gate.
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(UserKey).(*entity.User)
	return user
}

func errorCode(err error) string {
	for _, code := range []string{errors.CodeUnauthorized, errors.CodeUserNotFound, errors.CodeForbidden} {
		if errors.Is(err, code) {
			return code
		}
	}
	return errors.CodeInternal
}
