package middleware

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localmarket/internal/infrastructure/ratelimit"
	"localmarket/pkg/errors"
)

type staticVerifier map[string]string

func (v staticVerifier) VerifyToken(ctx context.Context, token string) (string, error) {
	if uid, ok := v[token]; ok {
		return uid, nil
	}
	return "", stderrors.New("token rejected")
}

type brokenLimiter struct{}

func (brokenLimiter) Allow(ctx context.Context, key string) (ratelimit.Result, error) {
	return ratelimit.Result{}, stderrors.New("redis down")
}

func newCtx(method, body string, headers map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func ok(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthenticate(t *testing.T) {
	m := NewAuthMiddleware(staticVerifier{"good": "u1"})

	tests := []struct {
		name   string
		header string
		uid    string
	}{
		{"missing header", "", ""},
		{"wrong scheme", "Basic good", ""},
		{"empty token", "Bearer ", ""},
		{"rejected token", "Bearer bad", ""},
		{"valid", "Bearer good", "u1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.header != "" {
				headers[echo.HeaderAuthorization] = tt.header
			}
			c, _ := newCtx(http.MethodGet, "", headers)

			err := m.Authenticate(ok)(c)
			if tt.uid == "" {
				assert.True(t, errors.Is(err, errors.CodeUnauthorized))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.uid, UID(c))
		})
	}
}

func TestSanitize(t *testing.T) {
	body := `{"name":"<script>x()</script>Rice","link":"javascript:alert(1)","bio":"<img onerror=boom>","price":10}`
	c, _ := newCtx(http.MethodPost, body, map[string]string{echo.HeaderContentType: echo.MIMEApplicationJSON})

	var got map[string]interface{}
	err := Sanitize()(func(c echo.Context) error {
		return c.Bind(&got)
	})(c)
	require.NoError(t, err)

	assert.Equal(t, "Rice", got["name"])
	assert.Equal(t, "alert(1)", got["link"])
	assert.Equal(t, "<img boom>", got["bio"])
	assert.EqualValues(t, 10, got["price"])
}

func TestSanitize_NonJSONUntouched(t *testing.T) {
	c, _ := newCtx(http.MethodPost, "<script>", map[string]string{echo.HeaderContentType: echo.MIMETextPlain})

	err := Sanitize()(func(c echo.Context) error {
		raw, err := io.ReadAll(c.Request().Body)
		require.NoError(t, err)
		assert.Equal(t, "<script>", string(raw))
		return nil
	})(c)
	require.NoError(t, err)
}

func TestRateLimit_FailsOpen(t *testing.T) {
	c, rec := newCtx(http.MethodGet, "", nil)

	require.NoError(t, RateLimit(brokenLimiter{}, nil)(ok)(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRateLimit_Blocks(t *testing.T) {
	limiter := ratelimit.NewMemoryLimiter(1, time.Hour)
	mw := RateLimit(limiter, nil)(ok)

	c, _ := newCtx(http.MethodGet, "", nil)
	require.NoError(t, mw(c))

	c, rec := newCtx(http.MethodGet, "", nil)
	err := mw(c)
	assert.True(t, errors.Is(err, errors.CodeTooManyRequests))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestStatusOf(t *testing.T) {
	c, _ := newCtx(http.MethodGet, "", nil)

	assert.Equal(t, http.StatusForbidden, statusOf(c, errors.UserNotFound(nil)))
	assert.Equal(t, http.StatusNotFound, statusOf(c, echo.ErrNotFound))
	assert.Equal(t, http.StatusInternalServerError, statusOf(c, stderrors.New("boom")))
}
