package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/monitoring"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/whatsapp"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type fakeGateway map[product.Line]string

func (g fakeGateway) ConnectionState(_ context.Context, line product.Line) (whatsapp.ConnectionState, error) {
	state, ok := g[line]
	if !ok {
		return whatsapp.ConnectionState{Line: line}, whatsapp.ErrInstanceNotConfigured
	}
	return whatsapp.ConnectionState{Line: line, Instance: string(line), State: state, Connected: state == "open"}, nil
}

func TestHealth(t *testing.T) {
	f := setup(t)

	rec := f.do(http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var h monitoring.Health
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &h))
	assert.Equal(t, "healthy", h.Status)
	assert.Equal(t, "2.0.0", h.Version)
	assert.Equal(t, []string{"closer", "hunter"}, h.Agents)

	f.mr.SetError("LOADING redis is loading")
	rec = f.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "unhealthy")
}

func TestStatus_ReportsGateway(t *testing.T) {
	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })
	h := NewHealthHandler(monitoring.New(logger.Nop()), []string{"cs"}, map[string]Pinger{"database": down},
		fakeGateway{product.Occhiale: "open"}, "test")

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/status", nil), rec)
	require.NoError(t, h.Status(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Dependencies map[string]string          `json:"dependencies"`
		WhatsApp     []whatsapp.ConnectionState `json:"whatsapp"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unhealthy", body.Dependencies["database"])
	require.Len(t, body.WhatsApp, 2)
	assert.True(t, body.WhatsApp[0].Connected)
	assert.Equal(t, "unavailable", body.WhatsApp[1].State)
}
