package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
)

var (
	scriptTag      = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	javascriptURL  = regexp.MustCompile(`(?i)javascript:`)
	inlineHandlers = regexp.MustCompile(`(?i)on\w+\s*=`)
)

// Sanitize strips script blocks, javascript: URLs and inline event handlers
// from the top-level string fields of a JSON object body. Other bodies pass
// through untouched.
func Sanitize() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Body == nil || !strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
				return next(c)
			}

			raw, err := io.ReadAll(req.Body)
			_ = req.Body.Close()
			if err != nil {
				return err
			}

			body := raw
			var fields map[string]interface{}
			if err := json.Unmarshal(raw, &fields); err == nil && fields != nil {
				changed := false
				for k, v := range fields {
					if s, ok := v.(string); ok {
						if clean := SanitizeString(s); clean != s {
							fields[k] = clean
							changed = true
						}
					}
				}
				if changed {
					if encoded, err := json.Marshal(fields); err == nil {
						body = encoded
					}
				}
			}

			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
			return next(c)
		}
	}
}

func SanitizeString(s string) string {
	s = scriptTag.ReplaceAllString(s, "")
	s = javascriptURL.ReplaceAllString(s, "")
	return inlineHandlers.ReplaceAllString(s, "")
}
