package middleware

import (
	"math"
	"strconv"

	"github.com/labstack/echo/v4"

	"localmarket/internal/infrastructure/metrics"
	"localmarket/internal/infrastructure/ratelimit"
	"localmarket/pkg/errors"
	"localmarket/pkg/logger"
)

// RateLimit rejects requests over the limiter's budget with 429. The key is
// the client IP plus the caller uid when one is already known. Limiter
// failures let the request through.
func RateLimit(limiter ratelimit.Limiter, m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := "ip:" + c.RealIP()
			if uid := UID(c); uid != "" {
				key += ":user:" + uid
			}

			res, err := limiter.Allow(c.Request().Context(), key)
			if err != nil {
				logger.Warn("RATE LIMIT: limiter unavailable for %s: %v", key, err)
				return next(c)
			}

			header := c.Response().Header()
			header.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			header.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))

			if !res.Allowed {
				secs := int(math.Ceil(res.RetryAfter.Seconds()))
				header.Set("Retry-After", strconv.Itoa(secs))
				if m != nil {
					m.RecordRateLimited(c.Path())
				}
				logger.Debug("RATE LIMIT: blocked %s, retry in %ds", key, secs)
				return errors.TooManyRequests("Too many requests, please try again later")
			}

			return next(c)
		}
	}
}
