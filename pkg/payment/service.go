package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jordanlanch/salesagent/ent"
	"github.com/jordanlanch/salesagent/pkg/domain"
	"github.com/jordanlanch/salesagent/pkg/leads"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/metrics"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/whatsapp"
)

// ToolName labels conversation rows written by payment webhooks.
const ToolName = "payment_webhook"

// Payment statuses kept in lead metadata.
const (
	StatusPending  = "pending"
	StatusPaid     = "paid"
	StatusFailed   = "failed"
	StatusCanceled = "canceled"
	StatusRefunded = "refunded"
)

// Result says what an event did to its lead.
type Result struct {
	Event   string `json:"event"`
	LeadID  int    `json:"lead_id,omitempty"`
	Applied bool   `json:"applied"`
	Ignored string `json:"ignored,omitempty"`
}

// Service applies gateway events to leads.
type Service struct {
	leads   *leads.Service
	sender  whatsapp.Sender
	log     logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewService creates the payment webhook service.
func NewService(store *leads.Service, sender whatsapp.Sender, log logger.Logger, m *metrics.Metrics) *Service {
	return &Service{
		leads:   store,
		sender:  sender,
		log:     log,
		metrics: m,
		now:     time.Now,
	}
}

// WithClock replaces the time source. Used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Apply handles one normalized event. Events without a known lead are
// acknowledged and ignored so the gateway stops retrying them.
func (s *Service) Apply(ctx context.Context, ev Event) (*Result, error) {
	res := &Result{Event: ev.Type, LeadID: ev.LeadID}
	log := s.log.With("provider", ev.Provider, "event", ev.Type, "lead_id", ev.LeadID, "order_id", ev.OrderID)

	if ev.LeadID == 0 {
		log.Warn("Payment event without lead_id")
		res.Ignored = "no_lead_id"
		return res, nil
	}
	l, err := s.leads.Get(ctx, ev.LeadID)
	if domain.IsNotFound(err) {
		log.Warn("Payment event for unknown lead")
		res.Ignored = "lead_not_found"
		return res, nil
	}
	if err != nil {
		return nil, err
	}
	if ev.Product == "" {
		ev.Product = l.Product
	}

	switch ev.Kind {
	case KindPaid:
		err = s.paid(ctx, l, ev, log, res)
	case KindFailed:
		err = s.failed(ctx, l, ev)
	case KindCanceled, KindRefunded:
		err = s.closed(ctx, l, ev)
	default:
		log.Info("Unhandled payment event")
		res.Ignored = "event_not_handled"
		return res, nil
	}
	if err != nil {
		return nil, err
	}
	if res.Ignored == "" {
		res.Applied = true
	}
	return res, nil
}

func (s *Service) paid(ctx context.Context, l *ent.Lead, ev Event, log logger.Logger, res *Result) error {
	if p := l.Metadata.Payment; p != nil && p.Status == StatusPaid && p.OrderID == ev.OrderID && ev.OrderID != "" {
		log.Info("Payment already applied")
		res.Ignored = "duplicate"
		return nil
	}

	now := s.now()
	plan := firstNonEmpty(ev.Plan, paymentPlan(l), "unknown")
	amount := ev.AmountCents
	if amount == 0 && l.Metadata.Payment != nil {
		amount = l.Metadata.Payment.AmountCents
	}
	markPaid := func(md *models.LeadMetadata) {
		md.Payment = paidState(md.Payment, ev, plan, amount, now)
	}

	// Customers already won or active only get the payment recorded. Leads
	// that cannot reach won (lost, churned) are flagged for a human.
	customer := l.Stage == pipeline.StageWon || l.Stage == pipeline.StageActive
	won := !customer && leads.CheckTransition(l.Stage, pipeline.StageWon) == nil
	var err error
	if won {
		_, err = s.leads.Transition(ctx, l.ID, pipeline.StageWon, func(current *ent.Lead, u *ent.LeadUpdate) error {
			md := current.Metadata
			md.Normalize()
			markPaid(&md)
			md.EnsureOnboarding(now)
			u.SetWonAt(now).
				SetWonPlan(plan).
				SetWonAmountCents(amount).
				SetAssignedAgent(pipeline.RoleOnboarding).
				SetMetadata(md)
			return nil
		})
	} else {
		_, err = s.leads.Mutate(ctx, l.ID, func(current *ent.Lead, u *ent.LeadUpdate) error {
			md := current.Metadata
			md.Normalize()
			markPaid(&md)
			if !customer {
				md.Escalation = &models.EscalationState{
					Reason:         fmt.Sprintf("pagamento recebido com lead em %s", current.Stage),
					Priority:       "high",
					PreviousAgent:  string(current.AssignedAgent),
					EscalatedAt:    now,
					NeedsAttention: true,
				}
			}
			u.SetMetadata(md)
			return nil
		})
	}
	if err != nil {
		return fmt.Errorf("apply payment: %w", err)
	}

	s.audit(ctx, l, fmt.Sprintf("[PAYMENT CONFIRMED] Plano: %s | Valor: %s | Método: %s",
		plan, product.FormatPrice(amount), firstNonEmpty(ev.Method, "N/A")))

	delta := models.MetricDelta{RevenueCents: amount}
	if won {
		delta.DealsWon = 1
		s.metrics.RecordDealWon(string(ev.Product), plan, amount)
		log.Info("💰 Deal won", "plan", plan, "amount_cents", amount)
	} else if customer {
		log.Info("Payment recorded for existing customer", "stage", l.Stage)
	} else {
		s.metrics.RecordEscalation(string(ev.Product), "high")
		log.Warn("⚠️ Payment for lead outside the pipeline, flagged for review", "stage", l.Stage)
	}
	s.leads.Count(ctx, ev.Product, delta)

	if cfg, err := product.Get(ev.Product); err == nil {
		s.send(ctx, l, ev.Product, confirmationText(cfg, plan, amount))
	}
	return nil
}

func (s *Service) failed(ctx context.Context, l *ent.Lead, ev Event) error {
	if err := s.setStatus(ctx, l.ID, StatusFailed); err != nil {
		return err
	}
	if cfg, err := product.Get(ev.Product); err == nil {
		s.send(ctx, l, ev.Product, cfg.PaymentFailed)
	}
	s.audit(ctx, l, "[PAYMENT FAILED] "+firstNonEmpty(ev.Reason, "Motivo desconhecido"))
	return nil
}

func (s *Service) closed(ctx context.Context, l *ent.Lead, ev Event) error {
	status, label := StatusCanceled, "CANCELED"
	if ev.Kind == KindRefunded {
		status, label = StatusRefunded, "REFUNDED"
	}
	if err := s.setStatus(ctx, l.ID, status); err != nil {
		return err
	}
	s.audit(ctx, l, fmt.Sprintf("[PAYMENT %s] pedido %s", label, firstNonEmpty(ev.OrderID, "N/A")))
	return nil
}

func (s *Service) setStatus(ctx context.Context, leadID int, status string) error {
	_, err := s.leads.Mutate(ctx, leadID, func(current *ent.Lead, u *ent.LeadUpdate) error {
		md := current.Metadata
		md.Normalize()
		if md.Payment == nil {
			md.Payment = &models.PaymentState{}
		}
		md.Payment.Status = status
		u.SetMetadata(md)
		return nil
	})
	return err
}

func (s *Service) audit(ctx context.Context, l *ent.Lead, summary string) {
	if err := s.leads.AppendAudit(ctx, l.ID, l.Product, leads.AgentSystem, ToolName, summary); err != nil {
		s.log.Error("Failed to store payment audit", "lead_id", l.ID, "error", err)
	}
}

func (s *Service) send(ctx context.Context, l *ent.Lead, line product.Line, text string) {
	if s.sender == nil || text == "" {
		return
	}
	if !s.sender.Send(ctx, l.Phone, text, line) {
		s.log.Error("Payment notice not delivered", "lead_id", l.ID)
	}
}

func paidState(prev *models.PaymentState, ev Event, plan string, amount int, now time.Time) *models.PaymentState {
	p := models.PaymentState{CreatedAt: now}
	if prev != nil {
		p = *prev
	}
	p.Provider = firstNonEmpty(ev.Provider, p.Provider)
	p.OrderID = firstNonEmpty(ev.OrderID, p.OrderID)
	p.Plan = plan
	p.AmountCents = amount
	p.Status = StatusPaid
	p.Method = ev.Method
	p.PaidAt = &now
	return &p
}

func paymentPlan(l *ent.Lead) string {
	if l.Metadata.Payment != nil {
		return l.Metadata.Payment.Plan
	}
	return ""
}

func confirmationText(cfg *product.Config, plan string, amount int) string {
	var b strings.Builder
	b.WriteString(cfg.PaymentConfirmed)
	fmt.Fprintf(&b, "\n\n✅ *Plano:* %s\n💰 *Valor:* %s", plan, product.FormatPrice(amount))
	return b.String()
}
