package domain

import (
	"context"
	"time"

	"github.com/jordanlanch/salesagent/pkg/product"
)

// EscalationAlert describes a conversation handed to a human.
type EscalationAlert struct {
	LeadID   int
	Phone    string
	Name     string
	Company  string
	Product  product.Line
	Reason   string
	Priority string
	Agent    string
	At       time.Time
}

// Notifier tells the sales team about escalations.
type Notifier interface {
	NotifyEscalation(ctx context.Context, alert EscalationAlert) error
}

// PaymentRequest asks a provider for a hosted checkout.
type PaymentRequest struct {
	LeadID        int
	Product       product.Line
	Plan          string
	AmountCents   int
	CustomerName  string
	CustomerEmail string
	Phone         string
}

// PaymentLink is a checkout the customer can open.
type PaymentLink struct {
	Provider string
	OrderID  string
	URL      string
}

// PaymentProvider creates checkout links.
type PaymentProvider interface {
	Name() string
	CreatePaymentLink(ctx context.Context, req PaymentRequest) (*PaymentLink, error)
}
