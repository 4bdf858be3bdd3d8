package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	err := fmt.Errorf("outer: %w", NotFound("Product", nil))

	assert.True(t, Is(err, CodeNotFound))
	assert.False(t, Is(err, CodeForbidden))
	assert.False(t, Is(errors.New("plain"), CodeNotFound))
}

func TestUserNotFoundSharesForbiddenStatus(t *testing.T) {
	notFound := UserNotFound(nil)
	forbidden := Forbidden("Forbidden: Insufficient role", nil)

	assert.Equal(t, http.StatusForbidden, notFound.Status)
	assert.Equal(t, forbidden.Status, notFound.Status)
	assert.NotEqual(t, forbidden.Code, notFound.Code)
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))

	appErr := Validation("Missing fields", nil)
	assert.Same(t, appErr, Wrap(appErr, "ignored"))

	cause := errors.New("deadline exceeded")
	wrapped := Wrap(cause, "Failed to load product")
	assert.True(t, Is(wrapped, CodeInternal))
	assert.ErrorIs(t, wrapped, cause)
}
