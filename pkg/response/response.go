package response

import (
	"errors"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "localmarket/pkg/errors"
	"localmarket/pkg/logger"
)

type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Error     *ErrorInfo  `json:"error,omitempty"`
	Timestamp string      `json:"timestamp"`
}

type ErrorInfo struct {
	Code    string      `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

type PaginatedResponse struct {
	Items      interface{} `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

var exposeDetails atomic.Bool

// ExposeErrorDetails toggles whether the raw cause of an error is rendered
// in error responses.
func ExposeErrorDetails(enabled bool) {
	exposeDetails.Store(enabled)
}

func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Response{
		Success:   true,
		Data:      data,
		Timestamp: now(),
	})
}

func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, Response{
		Success:   true,
		Data:      data,
		Timestamp: now(),
	})
}

// Message answers with a confirmation and no resource payload.
func Message(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, Response{
		Success:   true,
		Message:   message,
		Timestamp: now(),
	})
}

// MessageWithData answers with a confirmation plus the affected resource.
func MessageWithData(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: now(),
	})
}

func Paginated(c echo.Context, items interface{}, total int64, page, pageSize int) error {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(total) / pageSize
		if int(total)%pageSize > 0 {
			totalPages++
		}
	}

	return c.JSON(http.StatusOK, Response{
		Success:   true,
		Timestamp: now(),
		Data: PaginatedResponse{
			Items:      items,
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
		},
	})
}

func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return handleValidationError(c, validationErr)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Status >= http.StatusInternalServerError {
			logger.Error("%s %s: %v", c.Request().Method, c.Path(), appErr)
		}
		return c.JSON(appErr.Status, Response{
			Success:   false,
			Message:   appErr.Message,
			Timestamp: now(),
			Error: &ErrorInfo{
				Code:    appErr.Code,
				Details: details(appErr.Err),
			},
		})
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return c.JSON(httpErr.Code, Response{
			Success:   false,
			Message:   httpMessage(httpErr),
			Timestamp: now(),
			Error: &ErrorInfo{
				Code:    httpCode(httpErr.Code),
				Details: details(httpErr.Internal),
			},
		})
	}

	logger.Error("%s %s: unhandled error: %v", c.Request().Method, c.Path(), err)
	return c.JSON(http.StatusInternalServerError, Response{
		Success:   false,
		Message:   "Internal server error",
		Timestamp: now(),
		Error: &ErrorInfo{
			Code:    apperrors.CodeInternal,
			Details: details(err),
		},
	})
}

// HTTPErrorHandler renders errors escaping handlers (unknown routes, bind
// failures, middleware rejections) in the same envelope.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if c.Request().Method == http.MethodHead {
		var httpErr *echo.HTTPError
		status := http.StatusInternalServerError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
		}
		_ = c.NoContent(status)
		return
	}
	if writeErr := Error(c, err); writeErr != nil {
		logger.Error("failed to write error response: %v", writeErr)
	}
}

func handleValidationError(c echo.Context, validationErr validator.ValidationErrors) error {
	message := "Invalid input data"
	fields := make(map[string]string, len(validationErr))

	for i, fe := range validationErr {
		msg := fieldMessage(fe)
		fields[lowerFirst(fe.Field())] = msg
		if i == 0 {
			message = msg
		}
	}

	return c.JSON(http.StatusBadRequest, Response{
		Success:   false,
		Message:   message,
		Timestamp: now(),
		Error: &ErrorInfo{
			Code:    apperrors.CodeValidation,
			Details: fields,
		},
	})
}

func fieldMessage(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + param
	case "max":
		return field + " must be at most " + param
	case "gt":
		return field + " must be greater than " + param
	case "oneof":
		return field + " must be one of: " + param
	case "email":
		return field + " must be a valid email address"
	case "phone":
		return "Invalid phone number format"
	case "url":
		return field + " must be a valid URL"
	default:
		return field + " is invalid"
	}
}

func details(err error) interface{} {
	if err == nil || !exposeDetails.Load() {
		return nil
	}
	return err.Error()
}

func httpMessage(e *echo.HTTPError) string {
	if msg, ok := e.Message.(string); ok {
		return msg
	}
	return http.StatusText(e.Code)
}

func httpCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return apperrors.CodeBadRequest
	case http.StatusUnauthorized:
		return apperrors.CodeUnauthorized
	case http.StatusForbidden:
		return apperrors.CodeForbidden
	case http.StatusNotFound:
		return apperrors.CodeNotFound
	case http.StatusTooManyRequests:
		return apperrors.CodeTooManyRequests
	}
	if status >= http.StatusInternalServerError {
		return apperrors.CodeInternal
	}
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
