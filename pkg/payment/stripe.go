package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jordanlanch/salesagent/pkg/domain"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
)

// StripeConfig holds Stripe configuration
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	SuccessURL    string
	CancelURL     string
	// BackendURL overrides the API host. Empty uses api.stripe.com.
	BackendURL string
}

// StripeProvider creates one-off Checkout sessions in BRL.
type StripeProvider struct {
	config   StripeConfig
	sessions checkoutsession.Client
	log      logger.Logger
}

// NewStripeProvider creates a provider with its own API client.
func NewStripeProvider(cfg StripeConfig, log logger.Logger) *StripeProvider {
	backend := stripe.GetBackend(stripe.APIBackend)
	if cfg.BackendURL != "" {
		backend = stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
			URL:               stripe.String(cfg.BackendURL),
			MaxNetworkRetries: stripe.Int64(0),
		})
	}
	return &StripeProvider{
		config:   cfg,
		sessions: checkoutsession.Client{B: backend, Key: cfg.SecretKey},
		log:      log,
	}
}

// Name implements domain.PaymentProvider.
func (p *StripeProvider) Name() string { return "stripe" }

// CreatePaymentLink creates a Checkout session for a single payment.
func (p *StripeProvider) CreatePaymentLink(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentLink, error) {
	if p.config.SecretKey == "" {
		return nil, errors.New("stripe secret key not configured")
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyBRL)),
					UnitAmount: stripe.Int64(int64(req.AmountCents)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("%s - Plano %s", req.Product, req.Plan)),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(successURL(p.config.SuccessURL, string(req.Product), req.LeadID)),
		CancelURL:  stripe.String(successURL(p.config.CancelURL, string(req.Product), req.LeadID)),
		ExpiresAt:  stripe.Int64(time.Now().Add(23 * time.Hour).Unix()),
		Metadata:   orderMetadata(req),
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	params.Context = ctx

	sess, err := p.sessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	p.log.Info("Stripe checkout session created", "session_id", sess.ID, "lead_id", req.LeadID, "amount_cents", req.AmountCents)
	return &domain.PaymentLink{Provider: p.Name(), OrderID: sess.ID, URL: sess.URL}, nil
}

// ParseStripe verifies the Stripe-Signature header and maps checkout
// session events onto an Event.
func ParseStripe(payload []byte, signature, secret string) (Event, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return Event{}, fmt.Errorf("webhook signature verification failed: %w", err)
	}

	ev := Event{Provider: "stripe", Type: string(event.Type), Kind: KindOther}
	if !strings.HasPrefix(ev.Type, "checkout.session.") {
		return ev, nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return Event{}, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	ev.OrderID = sess.ID
	ev.AmountCents = int(sess.AmountTotal)
	if len(sess.PaymentMethodTypes) > 0 {
		ev.Method = sess.PaymentMethodTypes[0]
	}
	meta := make(map[string]any, len(sess.Metadata))
	for k, v := range sess.Metadata {
		meta[k] = v
	}
	applyMetadata(&ev, meta)

	switch event.Type {
	case "checkout.session.completed":
		// boleto completes unpaid and settles later via async_payment_succeeded
		if sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid {
			ev.Kind = KindPaid
		}
	case "checkout.session.async_payment_succeeded":
		ev.Kind = KindPaid
	case "checkout.session.async_payment_failed":
		ev.Kind = KindFailed
		ev.Reason = "pagamento assíncrono recusado"
	case "checkout.session.expired":
		ev.Kind = KindCanceled
	}
	return ev, nil
}

