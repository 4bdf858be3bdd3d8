package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "localmarket/pkg/errors"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestError_AppErrorCarriesMessage(t *testing.T) {
	ExposeErrorDetails(true)
	t.Cleanup(func() { ExposeErrorDetails(false) })

	c, rec := newContext()
	err := Error(c, apperrors.Internal("Role check failed", errors.New("store unavailable")))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Role check failed", body["message"])

	info := body["error"].(map[string]interface{})
	assert.Equal(t, apperrors.CodeInternal, info["code"])
	assert.Equal(t, "store unavailable", info["details"])
}

func TestError_DetailsHiddenWhenDisabled(t *testing.T) {
	ExposeErrorDetails(false)

	c, rec := newContext()
	require.NoError(t, Error(c, apperrors.Internal("Server error", errors.New("secret dsn"))))

	body := decode(t, rec)
	info := body["error"].(map[string]interface{})
	_, present := info["details"]
	assert.False(t, present)
}

func TestError_HTTPError(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, Error(c, echo.NewHTTPError(http.StatusNotFound, "Not Found")))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Not Found", body["message"])
	assert.Equal(t, apperrors.CodeNotFound, body["error"].(map[string]interface{})["code"])
}

func TestError_UnknownError(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, Error(c, errors.New("boom")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decode(t, rec)["message"])
}

func TestPaginated(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, Paginated(c, []string{"a", "b"}, 5, 1, 2))

	data := decode(t, rec)["data"].(map[string]interface{})
	assert.EqualValues(t, 3, data["totalPages"])
	assert.EqualValues(t, 5, data["total"])
}
