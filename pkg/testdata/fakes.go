package testdata

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jordanlanch/salesagent/pkg/domain"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/whatsapp"
)

// Sent is one message captured by Sender.
type Sent struct {
	Phone   string
	Content string
	Media   *whatsapp.Media
	Line    product.Line
}

// Sender records messages instead of delivering them. Set Fail to make
// every send report failure.
type Sender struct {
	mu   sync.Mutex
	sent []Sent
	Fail bool
}

func (s *Sender) Send(_ context.Context, phone, content string, line product.Line) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return false
	}
	s.sent = append(s.sent, Sent{Phone: phone, Content: content, Line: line})
	return true
}

func (s *Sender) SendMedia(_ context.Context, phone string, media whatsapp.Media, line product.Line) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return false
	}
	m := media
	s.sent = append(s.sent, Sent{Phone: phone, Content: media.Caption, Media: &m, Line: line})
	return true
}

// Messages returns a copy of everything sent so far.
func (s *Sender) Messages() []Sent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Sent(nil), s.sent...)
}

// Last returns the most recent message or a zero value.
func (s *Sender) Last() Sent {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.sent) == 0 {
		return Sent{}
	}
	return s.sent[len(s.sent)-1]
}

// Notifier records escalation alerts.
type Notifier struct {
	mu     sync.Mutex
	Alerts []domain.EscalationAlert
}

func (n *Notifier) NotifyEscalation(_ context.Context, alert domain.EscalationAlert) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Alerts = append(n.Alerts, alert)
	return nil
}

// Count returns the number of alerts received.
func (n *Notifier) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.Alerts)
}

// Payments is a PaymentProvider returning deterministic links.
type Payments struct {
	mu       sync.Mutex
	Requests []domain.PaymentRequest
	Fail     bool
}

func (p *Payments) Name() string { return "fake" }

func (p *Payments) CreatePaymentLink(_ context.Context, req domain.PaymentRequest) (*domain.PaymentLink, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Fail {
		return nil, errors.New("gateway unavailable")
	}
	p.Requests = append(p.Requests, req)
	id := fmt.Sprintf("or_%d_%d", req.LeadID, len(p.Requests))
	return &domain.PaymentLink{Provider: "fake", OrderID: id, URL: "https://pay.example.com/" + id}, nil
}
