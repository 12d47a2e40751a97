package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/jordanlanch/salesagent/pkg/payment"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvolution_DispatchesTurn(t *testing.T) {
	f := setup(t)

	rec := f.do(http.MethodPost, "/api/v1/webhooks/evolution", evolutionBody("5511999998888", "Oi, quero saber mais"),
		map[string]string{"apikey": webhookKey})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"received"}`, rec.Body.String())

	f.webhooks.Wait()
	calls := f.processor.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "5511999998888", calls[0].Phone)
	assert.Equal(t, "Oi, quero saber mais", calls[0].Text)
	assert.Equal(t, product.Ekkle, calls[0].Line)
	assert.Equal(t, "Pr. Carlos", calls[0].PushName)
	assert.False(t, calls[0].Synthetic)
}

func TestEvolution_IgnoresOwnMessages(t *testing.T) {
	f := setup(t)
	body := `{"event":"messages.upsert","data":{"key":{"remoteJid":"5511999998888@s.whatsapp.net","fromMe":true},"message":{"conversation":"oi"}}}`

	rec := f.do(http.MethodPost, "/api/v1/webhooks/evolution", body, map[string]string{"x-api-key": webhookKey})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ignored")

	f.webhooks.Wait()
	assert.Empty(t, f.processor.Calls())
}

func TestEvolution_RequiresAPIKey(t *testing.T) {
	f := setup(t)

	rec := f.do(http.MethodPost, "/api/v1/webhooks/evolution", evolutionBody("5511999998888", "oi"), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(http.MethodPost, "/api/v1/webhooks/evolution", evolutionBody("5511999998888", "oi"),
		map[string]string{"apikey": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, f.processor.Calls())
}

func TestEvolution_RateLimitPerPhone(t *testing.T) {
	f := setup(t)
	headers := map[string]string{"apikey": webhookKey}

	for i := 0; i < 2; i++ {
		rec := f.do(http.MethodPost, "/api/v1/webhooks/evolution", evolutionBody("5511999998888", "oi"), headers)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := f.do(http.MethodPost, "/api/v1/webhooks/evolution", evolutionBody("5511999998888", "oi"), headers)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = f.do(http.MethodPost, "/api/v1/webhooks/evolution", evolutionBody("5511977776666", "oi"), headers)
	assert.Equal(t, http.StatusOK, rec.Code, "other phones keep their own budget")

	f.webhooks.Wait()
	assert.Len(t, f.processor.Calls(), 3)
}

func TestEvolution_InvalidJSON(t *testing.T) {
	f := setup(t)
	rec := f.do(http.MethodPost, "/api/v1/webhooks/evolution", "{", map[string]string{"apikey": webhookKey})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func pagarmePaid(leadID int) string {
	return fmt.Sprintf(`{"type":"order.paid","data":{"id":"or_123","amount":19700,"metadata":{"lead_id":%d,"product":"occhiale","plan":"Pro"},"charges":[{"payment_method":"pix"}]}}`, leadID)
}

func TestPagarme_PaidMovesLeadToWon(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageNegotiating))
	body := pagarmePaid(l.ID)

	rec := f.do(http.MethodPost, "/api/v1/webhooks/pagarme", body,
		map[string]string{"x-hub-signature": payment.Sign([]byte(body), pagarmeSecret)})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"applied":true`)

	won, err := f.store.Get(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, pipeline.StageWon, won.Stage)
	require.NotNil(t, won.WonAmountCents)
	assert.Equal(t, 19700, *won.WonAmountCents)
	assert.Len(t, f.sender.Messages(), 1, "customer gets the confirmation")
}

func TestPagarme_RejectsBadSignature(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageNegotiating))
	body := pagarmePaid(l.ID)

	rec := f.do(http.MethodPost, "/api/v1/webhooks/pagarme", body,
		map[string]string{"x-hub-signature": payment.Sign([]byte(body), "other-secret")})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(http.MethodPost, "/api/v1/webhooks/pagarme", body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	unchanged, err := f.store.Get(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, pipeline.StageNegotiating, unchanged.Stage)
}

func TestPagarme_UnknownLeadAcknowledged(t *testing.T) {
	f := setup(t)
	body := pagarmePaid(999)

	rec := f.do(http.MethodPost, "/api/v1/webhooks/pagarme", body,
		map[string]string{"x-hub-signature": payment.Sign([]byte(body), pagarmeSecret)})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "lead_not_found")
}

func TestStripe_DisabledWithoutSecret(t *testing.T) {
	f := setup(t)
	rec := f.do(http.MethodPost, "/api/v1/webhooks/stripe", `{}`, map[string]string{"Stripe-Signature": "t=1,v1=x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
