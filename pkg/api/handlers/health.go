package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/jordanlanch/salesagent/pkg/monitoring"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/whatsapp"
	"github.com/labstack/echo/v4"
)

// Pinger is a dependency whose reachability is reported.
type Pinger interface {
	Ping(ctx context.Context) error
}

// GatewayStatus reports the pairing state of a line.
type GatewayStatus interface {
	ConnectionState(ctx context.Context, line product.Line) (whatsapp.ConnectionState, error)
}

// HealthHandler serves the liveness and status endpoints.
type HealthHandler struct {
	monitor *monitoring.Monitor
	agents  []string
	deps    map[string]Pinger
	gateway GatewayStatus
	env     string
}

// NewHealthHandler creates a health handler. deps maps a dependency name
// ("database", "cache") to its pinger; gateway may be nil.
func NewHealthHandler(m *monitoring.Monitor, agents []string, deps map[string]Pinger, gateway GatewayStatus, env string) *HealthHandler {
	return &HealthHandler{monitor: m, agents: agents, deps: deps, gateway: gateway, env: env}
}

// Health godoc
// @Summary Health check
// @Description Agents, per-operation latency statistics and uptime. Unhealthy when a dependency is down.
// @Tags Health
// @Produce json
// @Success 200 {object} monitoring.Health
// @Failure 503 {object} monitoring.Health
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	health := h.monitor.Health(h.agents)
	status := http.StatusOK
	for _, p := range h.deps {
		if err := p.Ping(ctx); err != nil {
			health.Status = "unhealthy"
			status = http.StatusServiceUnavailable
			break
		}
	}
	return c.JSON(status, health)
}

// Status godoc
// @Summary Detailed status
// @Description Health plus dependency and WhatsApp gateway connection state per product line.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/v1/status [get]
func (h *HealthHandler) Status(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	deps := make(map[string]string, len(h.deps))
	for name, p := range h.deps {
		deps[name] = "healthy"
		if err := p.Ping(ctx); err != nil {
			deps[name] = "unhealthy"
		}
	}

	var gateway []whatsapp.ConnectionState
	if h.gateway != nil {
		for _, line := range []product.Line{product.Occhiale, product.Ekkle} {
			// errors still carry the line, reported as disconnected
			st, err := h.gateway.ConnectionState(ctx, line)
			if err != nil && st.State == "" {
				st.State = "unavailable"
			}
			gateway = append(gateway, st)
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"health":       h.monitor.Health(h.agents),
		"environment":  h.env,
		"dependencies": deps,
		"whatsapp":     gateway,
	})
}
