package handlers

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	apierrors "github.com/jordanlanch/salesagent/pkg/api/errors"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/monitoring"
	"github.com/jordanlanch/salesagent/pkg/payment"
	"github.com/jordanlanch/salesagent/pkg/processor"
	"github.com/jordanlanch/salesagent/pkg/ratelimit"
	"github.com/jordanlanch/salesagent/pkg/whatsapp"
	"github.com/labstack/echo/v4"
)

// maxWebhookBody caps webhook payloads read into memory.
const maxWebhookBody = 1 << 20

// MessageProcessor runs one inbound turn.
type MessageProcessor interface {
	Process(ctx context.Context, in processor.Inbound) error
}

// WebhookHandler receives gateway and payment notifications.
type WebhookHandler struct {
	processor     MessageProcessor
	limiter       *ratelimit.Limiter
	payments      *payment.Service
	pagarmeSecret string
	stripeSecret  string
	log           logger.Logger
	inflight      sync.WaitGroup
}

// NewWebhookHandler creates the webhook handler. stripeSecret may be empty
// when Stripe is not the payment provider.
func NewWebhookHandler(p MessageProcessor, limiter *ratelimit.Limiter, payments *payment.Service, pagarmeSecret, stripeSecret string, log logger.Logger) *WebhookHandler {
	return &WebhookHandler{
		processor:     p,
		limiter:       limiter,
		payments:      payments,
		pagarmeSecret: pagarmeSecret,
		stripeSecret:  stripeSecret,
		log:           log,
	}
}

// Wait blocks until every dispatched turn has finished.
func (h *WebhookHandler) Wait() {
	h.inflight.Wait()
}

// Evolution godoc
// @Summary Receive WhatsApp messages
// @Description Evolution API webhook. Only messages.upsert is processed; the turn runs asynchronously.
// @Tags Webhooks
// @Accept json
// @Produce json
// @Param apikey header string true "Webhook API key"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /api/v1/webhooks/evolution [post]
func (h *WebhookHandler) Evolution(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_body",
			Message: "Failed to read request body",
		})
	}

	msg, err := whatsapp.ParseWebhook(body)
	if err != nil {
		return apierrors.ValidationError(c, err)
	}
	if msg == nil {
		return c.JSON(http.StatusOK, map[string]string{"status": "ignored"})
	}

	ctx := c.Request().Context()
	res, err := h.limiter.Allow(ctx, msg.Phone)
	if err != nil {
		h.log.Warn("Rate limiter unavailable", "phone", msg.Phone, "error", err)
	}
	if !res.Allowed {
		h.log.Warn("⚠️ Inbound rate limit exceeded", "phone", msg.Phone, "reset_at", res.ResetAt)
		return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
			Error:   "rate_limit_exceeded",
			Message: "Too many messages from this number",
		})
	}

	in := processor.Inbound{Phone: msg.Phone, Text: msg.Text, Line: msg.Line, PushName: msg.PushName}
	h.log.Info("📩 Message received", "phone", msg.Phone, "product", msg.Line, "message_id", msg.MessageID, "length", len(msg.Text))

	h.inflight.Add(1)
	go func() {
		defer h.inflight.Done()
		// the processor applies its own deadline and sends the apology on failure
		if err := h.processor.Process(context.WithoutCancel(ctx), in); err != nil {
			h.log.Error("❌ Inbound turn failed", "phone", in.Phone, "product", in.Line, "error", err)
		}
	}()

	return c.JSON(http.StatusOK, map[string]string{"status": "received"})
}

// EvolutionStatus godoc
// @Summary Webhook liveness
// @Tags Webhooks
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/v1/webhooks/evolution [get]
func (h *WebhookHandler) EvolutionStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "online",
		"service":   "sales-webhook",
		"version":   monitoring.Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Pagarme godoc
// @Summary Receive Pagar.me events
// @Description Verifies x-hub-signature (sha256 HMAC of the raw body) and applies the event to its lead.
// @Tags Webhooks
// @Accept json
// @Produce json
// @Param x-hub-signature header string true "sha256=<hex hmac>"
// @Success 200 {object} payment.Result
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/webhooks/pagarme [post]
func (h *WebhookHandler) Pagarme(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_body",
			Message: "Failed to read request body",
		})
	}

	if !payment.VerifySignature(body, c.Request().Header.Get("x-hub-signature"), h.pagarmeSecret) {
		h.log.Warn("⚠️ Pagar.me webhook with invalid signature")
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid_signature",
			Message: "Invalid signature",
		})
	}

	ev, err := payment.ParsePagarme(body)
	if err != nil {
		return apierrors.ValidationError(c, err)
	}
	return h.apply(c, ev)
}

// Stripe godoc
// @Summary Receive Stripe events
// @Description Verifies Stripe-Signature and applies checkout session events to their lead.
// @Tags Webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe webhook signature"
// @Success 200 {object} payment.Result
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/webhooks/stripe [post]
func (h *WebhookHandler) Stripe(c echo.Context) error {
	if h.stripeSecret == "" {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_configured",
			Message: "Stripe is not enabled",
		})
	}

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_body",
			Message: "Failed to read request body",
		})
	}

	signature := c.Request().Header.Get("Stripe-Signature")
	if signature == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "missing_signature",
		})
	}

	ev, err := payment.ParseStripe(body, signature, h.stripeSecret)
	if err != nil {
		h.log.Warn("⚠️ Stripe webhook rejected", "error", err)
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_signature",
			Message: "Webhook signature verification failed",
		})
	}
	return h.apply(c, ev)
}

func (h *WebhookHandler) apply(c echo.Context, ev payment.Event) error {
	res, err := h.payments.Apply(c.Request().Context(), ev)
	if err != nil {
		return apierrors.InternalError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, res)
}
