package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jordanlanch/salesagent/pkg/auth"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(c echo.Context) error { return c.String(http.StatusOK, "success") }

func serve(t *testing.T, mw echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, mw(ok)(c))
	return rec, c
}

func TestRateLimiter_Allow(t *testing.T) {
	// 120 per minute is one token every 500ms
	rl := NewRateLimiter(120, 1)
	defer rl.Stop()

	limiter := rl.GetLimiter("192.168.1.1")
	assert.True(t, limiter.Allow())
	assert.False(t, limiter.Allow())
	assert.True(t, rl.GetLimiter("192.168.1.2").Allow(), "IPs have separate buckets")

	time.Sleep(600 * time.Millisecond)
	assert.True(t, limiter.Allow())
}

func TestRateLimiter_CleanupForgetsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(60, 2)
	defer rl.Stop()

	rl.GetLimiter("10.0.0.1")
	rl.GetLimiter("10.0.0.2").Allow()
	rl.cleanup()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.visitors, "10.0.0.1")
	assert.Contains(t, rl.visitors, "10.0.0.2")
}

func TestRateLimitMiddleware(t *testing.T) {
	rl := NewRateLimiter(2, 1)
	defer rl.Stop()
	mw := rl.RateLimitMiddleware()

	req := httptest.NewRequest(http.MethodPost, "/webhooks/evolution", nil)
	req.RemoteAddr = "192.168.1.1:12345"
	rec, _ := serve(t, mw, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/webhooks/evolution", nil)
	req.RemoteAddr = "192.168.1.1:12346"
	rec, _ = serve(t, mw, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "rate_limit_exceeded")
}

func TestCronSecret(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		header string
		want   int
	}{
		{"valid", "s3cret", "Bearer s3cret", http.StatusOK},
		{"wrong", "s3cret", "Bearer nope", http.StatusUnauthorized},
		{"missing", "s3cret", "", http.StatusUnauthorized},
		{"not bearer", "s3cret", "Basic s3cret", http.StatusUnauthorized},
		{"unconfigured", "", "Bearer ", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/cron/outbound", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec, _ := serve(t, CronSecret(tt.secret), req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestWebhookAPIKey(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		header string
		value  string
		want   int
	}{
		{"apikey header", "k1", "apikey", "k1", http.StatusOK},
		{"x-api-key header", "k1", "x-api-key", "k1", http.StatusOK},
		{"wrong key", "k1", "apikey", "k2", http.StatusUnauthorized},
		{"no key", "k1", "", "", http.StatusUnauthorized},
		{"unconfigured", "", "apikey", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/evolution", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			rec, _ := serve(t, WebhookAPIKey(tt.key), req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

type validatorFunc func(ctx context.Context, token string) (*auth.Claims, error)

func (f validatorFunc) Validate(ctx context.Context, token string) (*auth.Claims, error) {
	return f(ctx, token)
}

func TestJWT(t *testing.T) {
	v := validatorFunc(func(_ context.Context, token string) (*auth.Claims, error) {
		if token != "good" {
			return nil, errors.New("token has been revoked")
		}
		return &auth.Claims{Email: "admin@example.com", Role: auth.RoleAdmin}, nil
	})
	mw := JWT(v)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/leads", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	rec, c := serve(t, mw, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin@example.com", c.Get(ContextEmail))
	assert.Equal(t, "good", c.Get(ContextToken))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/leads/export?token=good", nil)
	rec, _ = serve(t, mw, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/leads", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer bad")
	rec, _ = serve(t, mw, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "revoked")

	req = httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/leads", nil)
	req.Header.Set(echo.HeaderAuthorization, "Token good")
	rec, _ = serve(t, mw, req)
	assert.Contains(t, rec.Body.String(), "invalid_token_format")

	rec, _ = serve(t, mw, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/leads", nil))
	assert.Contains(t, rec.Body.String(), "missing_token")
}

func TestSecurityHeaders(t *testing.T) {
	rec, _ := serve(t, SecurityHeaders(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "default-src 'none'")
}
