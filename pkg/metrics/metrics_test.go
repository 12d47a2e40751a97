package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_CountsRequests(t *testing.T) {
	m := New(prometheus.NewRegistry())
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/health", "200")))
}

func TestBusinessCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordDealWon("occhiale", "Pro", 39700)
	m.RecordDealWon("occhiale", "Pro", 39700)
	m.RecordMessage("ekkle", "outbound", false)
	m.RecordStageTransition("ekkle", "new", "new")
	m.RecordAgentTurn("occhiale", "hunter", time.Second, 100, 50, 0.105)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DealsWon.WithLabelValues("occhiale", "Pro")))
	assert.Equal(t, 79400.0, testutil.ToFloat64(m.RevenueCents.WithLabelValues("occhiale")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MessagesTotal.WithLabelValues("ekkle", "outbound", "failed")))
	assert.Equal(t, 0, testutil.CollectAndCount(m.StageTransitions), "self transitions are not counted")
	assert.Equal(t, 100.0, testutil.ToFloat64(m.LLMTokens.WithLabelValues("hunter", "input")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordLeadCreated("occhiale", "scraper")
		m.RecordToolCall("qualify_lead", true)
		m.RecordCronRun("outbound", time.Second, true)
	})
}
