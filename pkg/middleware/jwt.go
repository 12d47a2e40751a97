package middleware

import (
	"context"
	"time"

	"github.com/jordanlanch/salesagent/pkg/auth"
	"github.com/labstack/echo/v4"
)

// Context keys set by JWT.
const (
	ContextToken = "token"
	ContextEmail = "user_email"
)

// TokenValidator checks a dashboard token.
type TokenValidator interface {
	Validate(ctx context.Context, token string) (*auth.Claims, error)
}

// JWT guards the dashboard. The token comes from the Authorization header
// or, for download links, the token query parameter.
func JWT(v TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := bearer(header)
			if !ok {
				if header != "" {
					return unauthorized(c, "invalid_token_format", "Authorization header must be 'Bearer {token}'")
				}
				token = c.QueryParam("token")
			}
			if token == "" {
				return unauthorized(c, "missing_token", "Authorization header is required")
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			claims, err := v.Validate(ctx, token)
			if err != nil {
				return unauthorized(c, "invalid_token", err.Error())
			}

			c.Set(ContextToken, token)
			c.Set(ContextEmail, claims.Email)
			return next(c)
		}
	}
}
