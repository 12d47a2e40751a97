package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics. A nil *Metrics is valid and records
// nothing, so services can run without instrumentation in tests.
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPResponseSize    *prometheus.HistogramVec

	// Sales pipeline metrics
	LeadsCreated     *prometheus.CounterVec
	MessagesTotal    *prometheus.CounterVec
	StageTransitions *prometheus.CounterVec
	Escalations      *prometheus.CounterVec
	DealsWon         *prometheus.CounterVec
	RevenueCents     *prometheus.CounterVec
	RateLimited      *prometheus.CounterVec

	// Agent metrics
	AgentTurnDuration *prometheus.HistogramVec
	LLMTokens         *prometheus.CounterVec
	LLMCostCents      *prometheus.CounterVec
	ToolCalls         *prometheus.CounterVec

	// Job metrics
	CronRuns     *prometheus.CounterVec
	CronDuration *prometheus.HistogramVec

	// Cache metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec
}

// New creates a Metrics instance registered on reg. A nil reg uses the
// default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		HTTPResponseSize: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 5000, 10000, 50000, 100000, 500000, 1000000},
			},
			[]string{"method", "path"},
		),

		LeadsCreated: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_leads_created_total",
				Help: "Leads created, by product and source",
			},
			[]string{"product", "source"},
		),
		MessagesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_messages_total",
				Help: "WhatsApp messages handled",
			},
			[]string{"product", "direction", "status"}, // inbound|outbound, ok|failed
		),
		StageTransitions: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_stage_transitions_total",
				Help: "Lead stage transitions",
			},
			[]string{"product", "from", "to"},
		),
		Escalations: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_escalations_total",
				Help: "Conversations handed to a human",
			},
			[]string{"product", "priority"},
		),
		DealsWon: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_deals_won_total",
				Help: "Confirmed payments",
			},
			[]string{"product", "plan"},
		),
		RevenueCents: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_revenue_cents_total",
				Help: "Confirmed revenue in cents",
			},
			[]string{"product"},
		),
		RateLimited: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_rate_limited_total",
				Help: "Requests rejected or deferred by the rate limiter",
			},
			[]string{"scope"}, // inbound, outbound, http
		),

		AgentTurnDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "agent_turn_duration_seconds",
				Help:    "Time spent by an agent answering one message",
				Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 60, 120},
			},
			[]string{"agent"},
		),
		LLMTokens: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "llm_tokens_total",
				Help: "LLM tokens consumed",
			},
			[]string{"agent", "kind"}, // input, output
		),
		LLMCostCents: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "llm_cost_cents_total",
				Help: "Estimated LLM cost in cents",
			},
			[]string{"product"},
		),
		ToolCalls: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agent_tool_calls_total",
				Help: "Tool executions by outcome",
			},
			[]string{"tool", "status"},
		),

		CronRuns: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cron_runs_total",
				Help: "Scheduled job runs",
			},
			[]string{"job", "status"},
		),
		CronDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cron_duration_seconds",
				Help:    "Scheduled job duration",
				Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
			},
			[]string{"job"},
		),

		CacheHits: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"cache_type"},
		),
		CacheMisses: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"cache_type"},
		),
	}
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m == nil {
				return next(c)
			}
			start := time.Now()
			req := c.Request()
			path := c.Path() // route pattern, not the raw path

			err := next(c)

			status := strconv.Itoa(c.Response().Status)
			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, status).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, status).Observe(time.Since(start).Seconds())
			m.HTTPResponseSize.WithLabelValues(req.Method, path).Observe(float64(c.Response().Size))

			return err
		}
	}
}

// RecordLeadCreated increments the lead counter
func (m *Metrics) RecordLeadCreated(product, source string) {
	if m == nil {
		return
	}
	m.LeadsCreated.WithLabelValues(product, source).Inc()
}

// RecordMessage counts a WhatsApp message
func (m *Metrics) RecordMessage(product, direction string, ok bool) {
	if m == nil {
		return
	}
	m.MessagesTotal.WithLabelValues(product, direction, status(ok)).Inc()
}

// RecordStageTransition counts a stage change
func (m *Metrics) RecordStageTransition(product, from, to string) {
	if m == nil || from == to {
		return
	}
	m.StageTransitions.WithLabelValues(product, from, to).Inc()
}

// RecordEscalation counts a human handoff
func (m *Metrics) RecordEscalation(product, priority string) {
	if m == nil {
		return
	}
	m.Escalations.WithLabelValues(product, priority).Inc()
}

// RecordDealWon counts a confirmed payment
func (m *Metrics) RecordDealWon(product, plan string, amountCents int) {
	if m == nil {
		return
	}
	m.DealsWon.WithLabelValues(product, plan).Inc()
	m.RevenueCents.WithLabelValues(product).Add(float64(amountCents))
}

// RecordRateLimited counts a limiter rejection
func (m *Metrics) RecordRateLimited(scope string) {
	if m == nil {
		return
	}
	m.RateLimited.WithLabelValues(scope).Inc()
}

// RecordAgentTurn records one agent turn
func (m *Metrics) RecordAgentTurn(product, agent string, d time.Duration, tokensIn, tokensOut int, costCents float64) {
	if m == nil {
		return
	}
	m.AgentTurnDuration.WithLabelValues(agent).Observe(d.Seconds())
	m.LLMTokens.WithLabelValues(agent, "input").Add(float64(tokensIn))
	m.LLMTokens.WithLabelValues(agent, "output").Add(float64(tokensOut))
	m.LLMCostCents.WithLabelValues(product).Add(costCents)
}

// RecordToolCall counts a tool execution
func (m *Metrics) RecordToolCall(tool string, ok bool) {
	if m == nil {
		return
	}
	m.ToolCalls.WithLabelValues(tool, status(ok)).Inc()
}

// RecordCronRun records a job execution
func (m *Metrics) RecordCronRun(job string, d time.Duration, ok bool) {
	if m == nil {
		return
	}
	m.CronRuns.WithLabelValues(job, status(ok)).Inc()
	m.CronDuration.WithLabelValues(job).Observe(d.Seconds())
}

// RecordCacheHit increments cache hits counter
func (m *Metrics) RecordCacheHit(cacheType string) {
	if m == nil {
		return
	}
	m.CacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss increments cache misses counter
func (m *Metrics) RecordCacheMiss(cacheType string) {
	if m == nil {
		return
	}
	m.CacheMisses.WithLabelValues(cacheType).Inc()
}

func status(ok bool) string {
	if ok {
		return "ok"
	}
	return "failed"
}
