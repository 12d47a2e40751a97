package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/jordanlanch/salesagent/ent"
	"github.com/jordanlanch/salesagent/ent/conversation"
	"github.com/jordanlanch/salesagent/pkg/domain"
	"github.com/jordanlanch/salesagent/pkg/leads"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/testdata"
	"github.com/jordanlanch/salesagent/pkg/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76/webhook"
)

var testNow = time.Date(2026, 5, 10, 15, 0, 0, 0, time.UTC)

type counter struct {
	mu     sync.Mutex
	totals map[product.Line]models.MetricDelta
}

func (c *counter) Add(_ context.Context, line product.Line, d models.MetricDelta) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.totals == nil {
		c.totals = map[product.Line]models.MetricDelta{}
	}
	t := c.totals[line]
	t.DealsWon += d.DealsWon
	t.RevenueCents += d.RevenueCents
	t.LeadsCreated += d.LeadsCreated
	c.totals[line] = t
	return nil
}

type fixture struct {
	client  *ent.Client
	store   *leads.Service
	sender  *testdata.Sender
	counter *counter
	svc     *Service
}

func setup(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{client: testdata.OpenDB(t), sender: &testdata.Sender{}, counter: &counter{}}
	f.store = leads.NewService(f.client, f.counter, logger.Nop(), nil)
	f.svc = NewService(f.store, f.sender, logger.Nop(), nil).WithClock(func() time.Time { return testNow })
	return f
}

func (f *fixture) audits(t *testing.T, leadID int) []string {
	t.Helper()
	rows, err := f.client.Conversation.Query().
		Where(conversation.LeadID(leadID), conversation.KindEQ(conversation.KindAudit)).
		All(context.Background())
	require.NoError(t, err)
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Content
	}
	return out
}

func orderPaid(leadID int, orderID string, amount int, plan string) []byte {
	return []byte(fmt.Sprintf(`{
		"id": "hook_1",
		"type": "order.paid",
		"data": {
			"id": %q,
			"amount": %d,
			"status": "paid",
			"metadata": {"lead_id": "%d", "product": "occhiale", "plan": %q},
			"charges": [{"id": "ch_1", "amount": %d, "payment_method": "pix", "last_transaction": {"payment_method": "pix"}}]
		}
	}`, orderID, amount, leadID, plan, amount))
}

func TestSignature(t *testing.T) {
	body := []byte(`{"type":"order.paid"}`)
	header := Sign(body, "s3cret")

	assert.True(t, VerifySignature(body, header, "s3cret"))
	assert.False(t, VerifySignature(body, header, "other"))
	assert.False(t, VerifySignature([]byte(`{"type":"order.canceled"}`), header, "s3cret"))
	assert.False(t, VerifySignature(body, header[len(signaturePrefix):], "s3cret"))
	assert.False(t, VerifySignature(body, header, ""))
}

func TestParsePagarme_Order(t *testing.T) {
	ev, err := ParsePagarme(orderPaid(42, "or_abc", 39700, "Pro"))
	require.NoError(t, err)

	assert.Equal(t, KindPaid, ev.Kind)
	assert.Equal(t, 42, ev.LeadID)
	assert.Equal(t, product.Occhiale, ev.Product)
	assert.Equal(t, "Pro", ev.Plan)
	assert.Equal(t, "or_abc", ev.OrderID)
	assert.Equal(t, 39700, ev.AmountCents)
	assert.Equal(t, "pix", ev.Method)
}

func TestParsePagarme_ChargeFailed(t *testing.T) {
	body := []byte(`{
		"type": "charge.payment_failed",
		"data": {
			"id": "ch_9",
			"amount": 5700,
			"payment_method": "credit_card",
			"last_transaction": {"gateway_response": {"message": "Cartão recusado"}},
			"order": {"id": "or_9", "metadata": {"lead_id": 7, "product": "ekkle", "plan": "Mensal"}}
		}
	}`)
	ev, err := ParsePagarme(body)
	require.NoError(t, err)

	assert.Equal(t, KindFailed, ev.Kind)
	assert.Equal(t, 7, ev.LeadID)
	assert.Equal(t, product.Ekkle, ev.Product)
	assert.Equal(t, "or_9", ev.OrderID)
	assert.Equal(t, "Cartão recusado", ev.Reason)
}

func TestParsePagarme_UnknownEventAndBadBody(t *testing.T) {
	ev, err := ParsePagarme([]byte(`{"type":"customer.created","data":{"id":"cus_1"}}`))
	require.NoError(t, err)
	assert.Equal(t, KindOther, ev.Kind)
	assert.Zero(t, ev.LeadID)

	_, err = ParsePagarme([]byte(`not json`))
	assert.Error(t, err)
}

func TestApply_PaidWinsLead(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageNegotiating))

	ev, err := ParsePagarme(orderPaid(l.ID, "or_1", 39700, "Pro"))
	require.NoError(t, err)
	res, err := f.svc.Apply(context.Background(), ev)
	require.NoError(t, err)
	assert.True(t, res.Applied)

	won, err := f.store.Get(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, pipeline.StageWon, won.Stage)
	assert.Equal(t, pipeline.RoleOnboarding, won.AssignedAgent)
	assert.Equal(t, "Pro", won.WonPlan)
	require.NotNil(t, won.WonAmountCents)
	assert.Equal(t, 39700, *won.WonAmountCents)
	require.NotNil(t, won.Metadata.Payment)
	assert.Equal(t, StatusPaid, won.Metadata.Payment.Status)
	assert.NotNil(t, won.Metadata.Onboarding)

	assert.Contains(t, f.sender.Last().Content, "Pagamento confirmado")
	assert.Contains(t, f.sender.Last().Content, "R$ 397,00")
	assert.Equal(t, 1, f.counter.totals[product.Occhiale].DealsWon)
	assert.Equal(t, 39700, f.counter.totals[product.Occhiale].RevenueCents)
	assert.Contains(t, f.audits(t, l.ID)[0], "[PAYMENT CONFIRMED] Plano: Pro")
}

func TestApply_DuplicateIgnored(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StagePresenting))
	ev, err := ParsePagarme(orderPaid(l.ID, "or_dup", 19700, "Essencial"))
	require.NoError(t, err)

	_, err = f.svc.Apply(context.Background(), ev)
	require.NoError(t, err)
	res, err := f.svc.Apply(context.Background(), ev)
	require.NoError(t, err)

	assert.Equal(t, "duplicate", res.Ignored)
	assert.Len(t, f.sender.Messages(), 1)
	assert.Equal(t, 1, f.counter.totals[product.Occhiale].DealsWon)
}

func TestApply_RenewalKeepsStage(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageActive))

	ev, err := ParsePagarme(orderPaid(l.ID, "or_renew", 19700, "Essencial"))
	require.NoError(t, err)
	_, err = f.svc.Apply(context.Background(), ev)
	require.NoError(t, err)

	updated, err := f.store.Get(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, pipeline.StageActive, updated.Stage)
	assert.Nil(t, updated.WonAt)
	assert.Zero(t, f.counter.totals[product.Occhiale].DealsWon)
	assert.Equal(t, 19700, f.counter.totals[product.Occhiale].RevenueCents)
}

func TestApply_LostLeadFlagged(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageLost))

	ev, err := ParsePagarme(orderPaid(l.ID, "or_lost", 19700, "Essencial"))
	require.NoError(t, err)
	_, err = f.svc.Apply(context.Background(), ev)
	require.NoError(t, err)

	updated, err := f.store.Get(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, pipeline.StageLost, updated.Stage)
	require.NotNil(t, updated.Metadata.Escalation)
	assert.True(t, updated.Metadata.Escalation.NeedsAttention)
	assert.Equal(t, StatusPaid, updated.Metadata.Payment.Status)
}

func TestApply_FailedNotifiesLead(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageNegotiating), testdata.WithProduct(product.Ekkle))

	_, err := f.svc.Apply(context.Background(), Event{
		Provider: "pagarme", Type: "order.payment_failed", Kind: KindFailed,
		LeadID: l.ID, Product: product.Ekkle, Reason: "saldo insuficiente",
	})
	require.NoError(t, err)

	updated, err := f.store.Get(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, pipeline.StageNegotiating, updated.Stage)
	assert.Equal(t, StatusFailed, updated.Metadata.Payment.Status)
	assert.Equal(t, product.MustGet(product.Ekkle).PaymentFailed, f.sender.Last().Content)
	assert.Equal(t, []string{"[PAYMENT FAILED] saldo insuficiente"}, f.audits(t, l.ID))
}

func TestApply_UnknownLeadAcknowledged(t *testing.T) {
	f := setup(t)
	res, err := f.svc.Apply(context.Background(), Event{Kind: KindPaid, LeadID: 9999})
	require.NoError(t, err)
	assert.Equal(t, "lead_not_found", res.Ignored)

	res, err = f.svc.Apply(context.Background(), Event{Kind: KindPaid})
	require.NoError(t, err)
	assert.Equal(t, "no_lead_id", res.Ignored)
}

// Closer sends a payment link, then the gateway reports the order paid.
func TestPaymentLinkThenWebhookWinsLead(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	payments := &testdata.Payments{}
	exec := tools.NewExecutor(f.store, f.sender, payments, &testdata.Notifier{}, logger.Nop(), nil)
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageNegotiating))

	res := exec.Execute(ctx, tools.Env{Lead: l, Agent: pipeline.RoleCloser},
		tools.CreatePaymentLink{Plan: "Pro", AmountCents: 39700})
	require.False(t, res.IsError, res.Content)
	require.Len(t, payments.Requests, 1)

	pending, err := f.store.Get(ctx, l.ID)
	require.NoError(t, err)
	orderID := pending.Metadata.Payment.OrderID

	ev, err := ParsePagarme(orderPaid(l.ID, orderID, 39700, "Pro"))
	require.NoError(t, err)
	_, err = f.svc.Apply(ctx, ev)
	require.NoError(t, err)

	won, err := f.store.Get(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, pipeline.StageWon, won.Stage)
	require.NotNil(t, won.WonAmountCents)
	assert.Equal(t, 39700, *won.WonAmountCents)
	assert.Contains(t, f.sender.Last().Content, "Pagamento confirmado")
}

func TestPagarmeClient_CreatePaymentLink(t *testing.T) {
	var got pagarmeOrder
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		user, _, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "sk_test", user)
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"or_123","status":"pending","checkouts":[{"id":"chk_1","payment_url":"https://pay.pagar.me/chk_1"}]}`))
	}))
	defer server.Close()

	c := NewPagarmeClient(PagarmeConfig{APIKey: "sk_test", BaseURL: server.URL, SuccessURL: "https://site/{product}/ok?lead={lead}"}, logger.Nop())
	link, err := c.CreatePaymentLink(context.Background(), domain.PaymentRequest{
		LeadID: 5, Product: product.Occhiale, Plan: "Pro", AmountCents: 39700,
		CustomerName: "Marta", Phone: "5511987654321",
	})
	require.NoError(t, err)

	assert.Equal(t, "or_123", link.OrderID)
	assert.Equal(t, "https://pay.pagar.me/chk_1", link.URL)
	assert.Equal(t, "5", got.Metadata[MetaLeadID])
	assert.Equal(t, "occhiale-pro", got.Items[0].Code)
	assert.Equal(t, pagarmePhone{CountryCode: "55", AreaCode: "11", Number: "987654321"}, got.Customer.Phones.Mobile)
	assert.Equal(t, "https://site/occhiale/ok?lead=5", got.Payments[0].Checkout.SuccessURL)
	assert.Len(t, got.Payments[0].Checkout.CreditCard.Installments, 3)
}

func TestPagarmeClient_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid"}`))
	}))
	defer server.Close()

	c := NewPagarmeClient(PagarmeConfig{APIKey: "sk_test", BaseURL: server.URL}, logger.Nop())
	_, err := c.CreatePaymentLink(context.Background(), domain.PaymentRequest{LeadID: 1, AmountCents: 100})
	assert.Error(t, err)

	_, err = NewPagarmeClient(PagarmeConfig{}, logger.Nop()).CreatePaymentLink(context.Background(), domain.PaymentRequest{})
	assert.Error(t, err)
}

func TestStripeProvider_CreatePaymentLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "payment", r.PostForm.Get("mode"))
		assert.Equal(t, "brl", r.PostForm.Get("line_items[0][price_data][currency]"))
		assert.Equal(t, "9", r.PostForm.Get("metadata[lead_id]"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cs_test_1","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_1"}`))
	}))
	defer server.Close()

	p := NewStripeProvider(StripeConfig{SecretKey: "sk_test_x", BackendURL: server.URL, SuccessURL: "https://site/ok"}, logger.Nop())
	link, err := p.CreatePaymentLink(context.Background(), domain.PaymentRequest{
		LeadID: 9, Product: product.Ekkle, Plan: "Anual", AmountCents: 39700,
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", link.OrderID)
	assert.Equal(t, "stripe", link.Provider)
}

func TestParseStripe(t *testing.T) {
	const secret = "whsec_test"
	payload := []byte(`{
		"id": "evt_1",
		"object": "event",
		"type": "checkout.session.completed",
		"data": {"object": {
			"id": "cs_1",
			"object": "checkout.session",
			"amount_total": 5700,
			"payment_status": "paid",
			"payment_method_types": ["card"],
			"metadata": {"lead_id": "11", "product": "ekkle", "plan": "Mensal"}
		}}
	}`)
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{Payload: payload, Secret: secret})

	ev, err := ParseStripe(signed.Payload, signed.Header, secret)
	require.NoError(t, err)
	assert.Equal(t, KindPaid, ev.Kind)
	assert.Equal(t, 11, ev.LeadID)
	assert.Equal(t, product.Ekkle, ev.Product)
	assert.Equal(t, 5700, ev.AmountCents)
	assert.Equal(t, "cs_1", ev.OrderID)

	_, err = ParseStripe(payload, "t=1,v1=bad", secret)
	assert.Error(t, err)
}
