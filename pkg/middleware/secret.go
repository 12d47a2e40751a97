package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/labstack/echo/v4"
)

// CronSecret accepts requests carrying "Authorization: Bearer <secret>".
// An empty secret rejects everything.
func CronSecret(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearer(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok || !matches(token, secret) {
				return unauthorized(c, "invalid_cron_secret", "Unauthorized")
			}
			return next(c)
		}
	}
}

// WebhookAPIKey accepts requests whose apikey or x-api-key header equals
// key. An empty key rejects everything.
func WebhookAPIKey(key string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Request().Header
			got := h.Get("apikey")
			if got == "" {
				got = h.Get("x-api-key")
			}
			if !matches(got, key) {
				return unauthorized(c, "invalid_api_key", "Invalid API key")
			}
			return next(c)
		}
	}
}

func matches(got, want string) bool {
	return want != "" && subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

func bearer(header string) (string, bool) {
	token, ok := strings.CutPrefix(header, "Bearer ")
	token = strings.TrimSpace(token)
	return token, ok && token != ""
}

func unauthorized(c echo.Context, code, msg string) error {
	return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: code, Message: msg})
}
