package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/jordanlanch/salesagent/pkg/domain"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var alert = domain.EscalationAlert{
	LeadID:   42,
	Phone:    "5511987654321",
	Name:     "Marina",
	Company:  "Ótica Central",
	Product:  product.Occhiale,
	Reason:   "Cliente pediu desconto acima do permitido",
	Priority: "high",
	Agent:    "closer",
	At:       time.Date(2026, 5, 11, 14, 30, 0, 0, time.UTC),
}

type recorder struct {
	mu     sync.Mutex
	bodies []string
	status int
}

func (r *recorder) server(t *testing.T, check func(*http.Request)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if check != nil {
			check(req)
		}
		body, _ := io.ReadAll(req.Body)
		r.mu.Lock()
		r.bodies = append(r.bodies, string(body))
		status := r.status
		r.mu.Unlock()
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNotifyEscalation_Slack(t *testing.T) {
	rec := &recorder{}
	srv := rec.server(t, func(r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
	})

	svc := NewService(NewWebhookClient(srv.URL), nil, logger.Nop())
	require.NoError(t, svc.NotifyEscalation(context.Background(), alert))

	require.Len(t, rec.bodies, 1)
	var msg slackPayload
	require.NoError(t, json.Unmarshal([]byte(rec.bodies[0]), &msg))
	assert.Contains(t, msg.Text, "🚨")
	assert.Contains(t, msg.Text, "lead #42 Marina")

	require.Len(t, msg.Attachments, 1)
	card := msg.Attachments[0]
	assert.Equal(t, "#d9534f", card.Color)
	require.Len(t, card.Blocks, 4)
	assert.Contains(t, card.Blocks[0].Text.Text, "HIGH")
	assert.Contains(t, card.Blocks[0].Text.Text, "Occhiale")
	require.Len(t, card.Blocks[1].Fields, 4)
	assert.Equal(t, "*Lead*\n#42: Marina (5511987654321)", card.Blocks[1].Fields[0].Text)
	assert.Equal(t, "*Empresa*\nÓtica Central", card.Blocks[1].Fields[1].Text)
	assert.Equal(t, "*Agente*\ncloser", card.Blocks[1].Fields[2].Text)
	assert.Contains(t, card.Blocks[2].Text.Text, alert.Reason)
	assert.Equal(t, "context", card.Blocks[3].Type)
	assert.Contains(t, card.Blocks[3].Elements[0].Text, "2026-05-11T14:30:00Z")
}

func TestEscalationPayload_UnknownPriority(t *testing.T) {
	a := alert
	a.Priority = ""
	a.Name = ""
	a.Company = ""

	p := escalationPayload(a)
	assert.Contains(t, p.Text, "⚠️ Escalação MEDIUM")
	assert.Contains(t, p.Text, "lead #42 N/A")
	assert.Equal(t, priorityStyle["medium"].color, p.Attachments[0].Color)
	assert.Equal(t, "*Empresa*\nN/A", p.Attachments[0].Blocks[1].Fields[1].Text)
}

func TestWebhookClient_NotConfigured(t *testing.T) {
	err := NewWebhookClient("").PostEscalation(context.Background(), alert)
	assert.ErrorIs(t, err, ErrSlackSendFailed)
}

func TestNotifyEscalation_Email(t *testing.T) {
	rec := &recorder{status: http.StatusAccepted}
	srv := rec.server(t, func(r *http.Request) {
		assert.Equal(t, "/v3/mail/send", r.URL.Path)
		assert.Equal(t, "Bearer sg-key", r.Header.Get("Authorization"))
	})

	mailer := NewMailer("sg-key", srv.URL, "vendas@example.com", "Vendas", []string{"time@example.com", ""})
	svc := NewService(nil, mailer, logger.Nop())
	require.NoError(t, svc.NotifyEscalation(context.Background(), alert))

	require.Len(t, rec.bodies, 1)
	var payload struct {
		Subject          string `json:"subject"`
		Personalizations []struct {
			To []struct {
				Email string `json:"email"`
			} `json:"to"`
		} `json:"personalizations"`
		Content []struct {
			Type  string `json:"type"`
			Value string `json:"value"`
		} `json:"content"`
	}
	require.NoError(t, json.Unmarshal([]byte(rec.bodies[0]), &payload))
	assert.Contains(t, payload.Subject, "HIGH")
	require.Len(t, payload.Personalizations, 1)
	require.Len(t, payload.Personalizations[0].To, 1)
	assert.Equal(t, "time@example.com", payload.Personalizations[0].To[0].Email)
	require.NotEmpty(t, payload.Content)
	assert.Contains(t, payload.Content[0].Value, "[ESCALAÇÃO - PRIORIDADE HIGH]")
	assert.Contains(t, payload.Content[0].Value, "11/05/2026 14:30")
}

func TestNotifyEscalation_ChannelFailureReported(t *testing.T) {
	slackRec := &recorder{status: http.StatusInternalServerError}
	slackSrv := slackRec.server(t, nil)
	mailRec := &recorder{status: http.StatusAccepted}
	mailSrv := mailRec.server(t, nil)

	svc := NewService(
		NewWebhookClient(slackSrv.URL),
		NewMailer("k", mailSrv.URL, "a@example.com", "A", []string{"b@example.com"}),
		logger.Nop(),
	)
	err := svc.NotifyEscalation(context.Background(), alert)
	assert.ErrorIs(t, err, ErrSlackSendFailed)
	assert.Len(t, mailRec.bodies, 1)
}

func TestNotifyEscalation_Disabled(t *testing.T) {
	svc := NewService(nil, nil, logger.Nop())
	assert.False(t, svc.IsEnabled())
	assert.NoError(t, svc.NotifyEscalation(context.Background(), alert))
}
