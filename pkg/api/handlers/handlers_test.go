package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jordanlanch/salesagent/ent"
	"github.com/jordanlanch/salesagent/pkg/analytics"
	"github.com/jordanlanch/salesagent/pkg/auth"
	"github.com/jordanlanch/salesagent/pkg/cache"
	"github.com/jordanlanch/salesagent/pkg/export"
	"github.com/jordanlanch/salesagent/pkg/jobs"
	"github.com/jordanlanch/salesagent/pkg/leads"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/middleware"
	"github.com/jordanlanch/salesagent/pkg/monitoring"
	"github.com/jordanlanch/salesagent/pkg/payment"
	"github.com/jordanlanch/salesagent/pkg/processor"
	"github.com/jordanlanch/salesagent/pkg/ratelimit"
	"github.com/jordanlanch/salesagent/pkg/testdata"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	_ "github.com/mattn/go-sqlite3"
)

const (
	webhookKey    = "evo-key"
	pagarmeSecret = "pagarme-secret"
	cronSecret    = "cron-secret"
	jwtSecret     = "test-secret-key-minimum-32-characters-long"
	adminEmail    = "admin@example.com"
	adminPassword = "s3nha-forte"
)

type fakeProcessor struct {
	mu    sync.Mutex
	calls []processor.Inbound
	err   error
}

func (p *fakeProcessor) Process(_ context.Context, in processor.Inbound) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, in)
	return p.err
}

func (p *fakeProcessor) Calls() []processor.Inbound {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]processor.Inbound(nil), p.calls...)
}

type fixture struct {
	e         *echo.Echo
	client    *ent.Client
	store     *leads.Service
	processor *fakeProcessor
	webhooks  *WebhookHandler
	sender    *testdata.Sender
	mr        *miniredis.Miniredis
}

// setup wires the handlers on an echo instance the way main does, with a
// SQLite store, miniredis and fakes for the processor and the gateway.
func setup(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		e:         echo.New(),
		client:    testdata.OpenDB(t),
		processor: &fakeProcessor{},
		sender:    &testdata.Sender{},
		mr:        miniredis.RunT(t),
	}
	f.e.Validator = NewValidator()

	rc, err := cache.NewClient("redis://" + f.mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { rc.Close() })

	log := logger.Nop()
	an := analytics.NewService(f.client, rc, log, nil)
	f.store = leads.NewService(f.client, an, log, nil)

	limiter := ratelimit.New(ratelimit.NewMemoryStore(time.Hour), ratelimit.Config{MaxPerHour: 2})
	payments := payment.NewService(f.store, f.sender, log, nil)
	f.webhooks = NewWebhookHandler(f.processor, limiter, payments, pagarmeSecret, "", log)

	hash, err := auth.HashPassword(adminPassword)
	require.NoError(t, err)
	authSvc := auth.NewService(auth.Config{Secret: jwtSecret, AdminEmail: adminEmail, PasswordHash: hash}, auth.NewRevocations(rc))

	runner := jobs.NewRunner(jobs.Deps{Leads: f.store, Processor: f.processor, Sender: f.sender, Cache: rc, Log: log}).WithPause(0)
	health := NewHealthHandler(monitoring.New(log), []string{"hunter", "closer"}, map[string]Pinger{"cache": rc}, nil, "test")
	dash := NewDashboardHandler(authSvc, f.store, an, export.NewService(f.store), log)

	f.e.GET("/health", health.Health)
	v1 := f.e.Group("/api/v1")
	v1.GET("/status", health.Status)

	hooks := v1.Group("/webhooks")
	hooks.POST("/evolution", f.webhooks.Evolution, middleware.WebhookAPIKey(webhookKey))
	hooks.POST("/pagarme", f.webhooks.Pagarme)
	hooks.POST("/stripe", f.webhooks.Stripe)

	v1.POST("/cron/:job", NewCronHandler(runner, log).Run, middleware.CronSecret(cronSecret))

	d := v1.Group("/dashboard")
	d.POST("/auth/login", dash.Login)
	protected := d.Group("", middleware.JWT(authSvc))
	protected.POST("/auth/logout", dash.Logout)
	protected.GET("/leads", dash.ListLeads)
	protected.POST("/leads", dash.CreateLead)
	protected.GET("/leads/export", dash.ExportLeads)
	protected.GET("/leads/:id", dash.GetLead)
	protected.PATCH("/leads/:id", dash.UpdateLead)
	protected.DELETE("/leads/:id", dash.DeleteLead)
	protected.GET("/funnel", dash.Funnel)
	protected.GET("/metrics", dash.Metrics)
	protected.GET("/metrics/daily", dash.DailyMetrics)
	protected.GET("/conversations", dash.Conversations)
	protected.GET("/conversations/recent", dash.RecentConversations)
	protected.GET("/conversations/stats", dash.ConversationStats)
	return f
}

func (f *fixture) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func evolutionBody(phone, text string) string {
	return fmt.Sprintf(`{"event":"messages.upsert","instance":"ekkle-vendas","data":{"key":{"remoteJid":"%s@s.whatsapp.net","fromMe":false},"pushName":"Pr. Carlos","message":{"conversation":%q}}}`, phone, text)
}
