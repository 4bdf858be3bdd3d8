package middleware

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"localmarket/internal/infrastructure/metrics"
	"localmarket/pkg/errors"
)

// Metrics records request count and latency per route template.
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.RecordRequest(c.Request().Method, route, statusOf(c, err), time.Since(start))
			return err
		}
	}
}

// statusOf predicts the status the error handler will write for err.
func statusOf(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}

	var validationErr validator.ValidationErrors
	if stderrors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr.Status
	}
	var httpErr *echo.HTTPError
	if stderrors.As(err, &httpErr) {
		return httpErr.Code
	}
	return http.StatusInternalServerError
}
