// Package payment creates checkout links and applies payment gateway
// webhooks to leads.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jordanlanch/salesagent/pkg/domain"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/phone"
)

const (
	// DefaultPagarmeURL is the Pagar.me core API.
	DefaultPagarmeURL = "https://api.pagar.me/core/v5"

	checkoutExpiry = 48 * time.Hour
	pixExpiry      = 24 * time.Hour
	maxInstallment = 3
)

// Order metadata keys read back by the webhook.
const (
	MetaLeadID  = "lead_id"
	MetaProduct = "product"
	MetaPlan    = "plan"
	MetaSource  = "source"
)

// PagarmeConfig holds the Pagar.me credentials.
type PagarmeConfig struct {
	APIKey  string
	BaseURL string
	// SuccessURL may contain {product} and {lead} placeholders.
	SuccessURL string
}

// PagarmeClient implements domain.PaymentProvider with hosted checkouts.
type PagarmeClient struct {
	config     PagarmeConfig
	httpClient *http.Client
	log        logger.Logger
}

// NewPagarmeClient creates a client.
func NewPagarmeClient(cfg PagarmeConfig, log logger.Logger) *PagarmeClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultPagarmeURL
	}
	return &PagarmeClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
		log: log,
	}
}

// Name implements domain.PaymentProvider.
func (c *PagarmeClient) Name() string { return "pagarme" }

type pagarmeOrder struct {
	Items    []pagarmeItem     `json:"items"`
	Customer pagarmeCustomer   `json:"customer"`
	Payments []pagarmePayment  `json:"payments"`
	Metadata map[string]string `json:"metadata"`
}

type pagarmeItem struct {
	Amount      int    `json:"amount"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Code        string `json:"code"`
}

type pagarmeCustomer struct {
	Name   string        `json:"name"`
	Email  string        `json:"email,omitempty"`
	Phones pagarmePhones `json:"phones"`
}

type pagarmePhones struct {
	Mobile pagarmePhone `json:"mobile_phone"`
}

type pagarmePhone struct {
	CountryCode string `json:"country_code"`
	AreaCode    string `json:"area_code"`
	Number      string `json:"number"`
}

type pagarmePayment struct {
	Method   string          `json:"payment_method"`
	Checkout pagarmeCheckout `json:"checkout"`
}

type pagarmeCheckout struct {
	ExpiresIn              int                  `json:"expires_in"`
	BillingAddressEditable bool                 `json:"billing_address_editable"`
	CustomerEditable       bool                 `json:"customer_editable"`
	AcceptedMethods        []string             `json:"accepted_payment_methods"`
	SuccessURL             string               `json:"success_url,omitempty"`
	CreditCard             pagarmeCardOptions   `json:"credit_card"`
	Pix                    pagarmeExpiryOptions `json:"pix"`
}

type pagarmeCardOptions struct {
	Installments []pagarmeInstallment `json:"installments"`
}

type pagarmeInstallment struct {
	Number int `json:"number"`
	Total  int `json:"total"`
}

type pagarmeExpiryOptions struct {
	ExpiresIn int `json:"expires_in"`
}

type pagarmeOrderResponse struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Checkouts []struct {
		ID         string `json:"id"`
		PaymentURL string `json:"payment_url"`
	} `json:"checkouts"`
}

// CreatePaymentLink creates an order with a hosted checkout accepting card,
// PIX and boleto.
func (c *PagarmeClient) CreatePaymentLink(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentLink, error) {
	if c.config.APIKey == "" {
		return nil, errors.New("pagarme api key not configured")
	}

	body, err := json.Marshal(c.buildOrder(req))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(c.config.BaseURL, "/")+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(c.config.APIKey, "")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("pagarme request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 256<<10))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error("Pagar.me order rejected", "status", resp.StatusCode, "body", strings.TrimSpace(string(raw)))
		return nil, fmt.Errorf("pagarme returned %d", resp.StatusCode)
	}

	var order pagarmeOrderResponse
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, fmt.Errorf("failed to decode order: %w", err)
	}
	if len(order.Checkouts) == 0 || order.Checkouts[0].PaymentURL == "" {
		return nil, fmt.Errorf("pagarme order %s has no checkout url", order.ID)
	}

	c.log.Info("Pagar.me order created", "order_id", order.ID, "lead_id", req.LeadID, "amount_cents", req.AmountCents)
	return &domain.PaymentLink{Provider: c.Name(), OrderID: order.ID, URL: order.Checkouts[0].PaymentURL}, nil
}

func (c *PagarmeClient) buildOrder(req domain.PaymentRequest) pagarmeOrder {
	installments := make([]pagarmeInstallment, 0, maxInstallment)
	for n := 1; n <= maxInstallment; n++ {
		installments = append(installments, pagarmeInstallment{Number: n, Total: req.AmountCents})
	}

	return pagarmeOrder{
		Items: []pagarmeItem{{
			Amount:      req.AmountCents,
			Description: fmt.Sprintf("%s - Plano %s", req.Product, req.Plan),
			Quantity:    1,
			Code:        string(req.Product) + "-" + strings.ToLower(strings.Join(strings.Fields(req.Plan), "-")),
		}},
		Customer: pagarmeCustomer{
			Name:   req.CustomerName,
			Email:  req.CustomerEmail,
			Phones: pagarmePhones{Mobile: splitPhone(req.Phone)},
		},
		Payments: []pagarmePayment{{
			Method: "checkout",
			Checkout: pagarmeCheckout{
				ExpiresIn:        int(checkoutExpiry.Seconds()),
				CustomerEditable: true,
				AcceptedMethods:  []string{"credit_card", "pix", "boleto"},
				SuccessURL:       successURL(c.config.SuccessURL, string(req.Product), req.LeadID),
				CreditCard:       pagarmeCardOptions{Installments: installments},
				Pix:              pagarmeExpiryOptions{ExpiresIn: int(pixExpiry.Seconds())},
			},
		}},
		Metadata: orderMetadata(req),
	}
}

func orderMetadata(req domain.PaymentRequest) map[string]string {
	return map[string]string{
		MetaLeadID:  strconv.Itoa(req.LeadID),
		MetaProduct: string(req.Product),
		MetaPlan:    req.Plan,
		MetaSource:  "salesagent",
	}
}

// splitPhone turns 5511987654321 into country 55, area 11, number 987654321.
func splitPhone(raw string) pagarmePhone {
	digits := strings.TrimPrefix(phone.Digits(raw), phone.CountryCode)
	p := pagarmePhone{CountryCode: phone.CountryCode}
	if len(digits) > 2 {
		p.AreaCode, p.Number = digits[:2], digits[2:]
	} else {
		p.Number = digits
	}
	return p
}

func successURL(template, line string, leadID int) string {
	if template == "" {
		return ""
	}
	r := strings.NewReplacer("{product}", line, "{lead}", strconv.Itoa(leadID))
	return r.Replace(template)
}
