// Package processor runs one inbound WhatsApp message end to end: lead
// lookup, classification, the stage agent, the reply and its bookkeeping.
package processor

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"

	"github.com/jordanlanch/salesagent/ent"
	"github.com/jordanlanch/salesagent/ent/conversation"
	"github.com/jordanlanch/salesagent/ent/lead"
	"github.com/jordanlanch/salesagent/pkg/ai/agents"
	"github.com/jordanlanch/salesagent/pkg/classify"
	"github.com/jordanlanch/salesagent/pkg/leads"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/metrics"
	"github.com/jordanlanch/salesagent/pkg/monitoring"
	"github.com/jordanlanch/salesagent/pkg/phone"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/whatsapp"
)

const (
	// DefaultTimeout bounds one inbound turn.
	DefaultTimeout = 2 * time.Minute
	historyLimit   = 50
)

// ErrDeliveryFailed is returned when the agent reply could not be sent.
var ErrDeliveryFailed = errors.New("reply not delivered")

// Inbound is one message received from the gateway. Synthetic messages are
// instructions produced by jobs: they drive the agent but are stored as
// audit rows and do not count as a reply from the lead.
type Inbound struct {
	Phone     string
	Text      string
	Line      product.Line
	PushName  string
	Synthetic bool
}

// Service processes inbound messages.
type Service struct {
	leads   *leads.Service
	agents  *agents.Registry
	sender  whatsapp.Sender
	log     logger.Logger
	metrics *metrics.Metrics
	monitor *monitoring.Monitor
	locks   *keyedMutex
	timeout time.Duration
	now     func() time.Time
}

// NewService creates a processor.
func NewService(store *leads.Service, registry *agents.Registry, sender whatsapp.Sender, log logger.Logger, m *metrics.Metrics) *Service {
	return &Service{
		leads:   store,
		agents:  registry,
		sender:  sender,
		log:     log,
		metrics: m,
		locks:   newKeyedMutex(),
		timeout: DefaultTimeout,
		now:     time.Now,
	}
}

// WithTimeout overrides the per-turn deadline.
func (s *Service) WithTimeout(d time.Duration) *Service {
	s.timeout = d
	return s
}

// WithMonitor records agent turn latency in m.
func (s *Service) WithMonitor(m *monitoring.Monitor) *Service {
	s.monitor = m
	return s
}

// Process handles one message. Turns of the same (phone, line) run one at a
// time. On any failure the product's apology is sent and the error returned.
func (s *Service) Process(ctx context.Context, in Inbound) (err error) {
	normalized, nerr := phone.Normalize(in.Phone)
	if nerr != nil {
		return fmt.Errorf("invalid phone %q: %w", in.Phone, nerr)
	}
	in.Phone = normalized

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	unlock := s.locks.Lock(in.Phone + "|" + string(in.Line))
	defer unlock()

	log := s.log.With("turn_id", uuid.NewString(), "phone", in.Phone, "product", in.Line)

	defer func() {
		if r := recover(); r != nil {
			sentry.CurrentHub().Recover(r)
			log.Error("Message processing panicked", "panic", r)
			err = fmt.Errorf("panic: %v", r)
		}
		if err != nil {
			s.fallback(ctx, in, log)
		}
	}()

	if err = s.handle(ctx, in, log); err != nil {
		log.Error("Failed to process message", "error", err)
	}
	return err
}

func (s *Service) handle(ctx context.Context, in Inbound, log logger.Logger) error {
	cfg, err := product.Get(in.Line)
	if err != nil {
		return err
	}

	l, created, err := s.leads.FindOrCreate(ctx, in.Phone, in.Line, leads.NewLead{
		Name:   in.PushName,
		Stage:  pipeline.StageNew,
		Source: lead.SourceInboundWhatsapp,
	})
	if err != nil {
		return fmt.Errorf("find or create lead: %w", err)
	}
	log = log.With("lead_id", l.ID, "stage", l.Stage)
	if created {
		log.Info("New inbound lead")
	}

	history, err := s.leads.History(ctx, l.ID, historyLimit)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	if l, err = s.recordInbound(ctx, l, in, log); err != nil {
		return err
	}

	if l.AssignedAgent == pipeline.RoleHuman {
		log.Info("Lead handled by a human, skipping agent")
		return nil
	}

	agent := s.agents.For(l.Stage)
	var reply *agents.Reply
	err = s.monitor.Track(string(agent.Role())+".process", func() error {
		var perr error
		reply, perr = agent.Process(ctx, agents.Input{Lead: l, History: history, Product: cfg, Text: in.Text})
		return perr
	})
	if err != nil {
		return err
	}

	text := strings.TrimSpace(reply.Text)
	if text == "" && !in.Synthetic {
		// a lead who wrote in always hears back
		log.Warn("Agent returned an empty reply, sending fallback", "agent", agent.Role())
		text = cfg.Fallback
	}
	if text != "" {
		if !s.sender.Send(ctx, in.Phone, text, in.Line) {
			return ErrDeliveryFailed
		}
		if _, err := s.leads.AppendMessage(ctx, leads.Message{
			LeadID:       l.ID,
			Product:      in.Line,
			Direction:    conversation.DirectionOutbound,
			Content:      text,
			Agent:        string(agent.Role()),
			ToolsCalled:  reply.ToolsCalled,
			TokensInput:  reply.InputTokens,
			TokensOutput: reply.OutputTokens,
			CostCents:    reply.CostCents,
		}); err != nil {
			log.Error("Failed to store reply", "error", err)
		}
	}

	now := s.now()
	if _, err := s.leads.Mutate(ctx, l.ID, func(_ *ent.Lead, u *ent.LeadUpdate) error {
		u.SetLastContactAt(now).AddAiCostCents(reply.CostCents)
		if !in.Synthetic {
			u.SetFollowupCount(0)
		}
		return nil
	}); err != nil {
		log.Error("Failed to update lead after turn", "error", err)
	}

	log.Info("Message processed", "agent", agent.Role(), "tools", reply.ToolsCalled, "escalated", reply.Escalated)
	return nil
}

// recordInbound stores the message and folds what it reveals into the lead.
func (s *Service) recordInbound(ctx context.Context, l *ent.Lead, in Inbound, log logger.Logger) (*ent.Lead, error) {
	if in.Synthetic {
		if err := s.leads.AppendAudit(ctx, l.ID, in.Line, leads.AgentSystem, "", in.Text); err != nil {
			return nil, fmt.Errorf("store instruction: %w", err)
		}
		return l, nil
	}

	intent := classify.ClassifyIntent(in.Text)
	objection, hasObjection := classify.DetectObjection(in.Text)
	sentiment := classify.AnalyzeSentiment(in.Text)
	log.Debug("Inbound classified", "intent", intent, "objection", objection, "sentiment", sentiment.Sentiment)

	if _, err := s.leads.AppendMessage(ctx, leads.Message{
		LeadID:    l.ID,
		Product:   in.Line,
		Direction: conversation.DirectionInbound,
		Content:   in.Text,
		Agent:     string(l.AssignedAgent),
		Intent:    string(intent),
		Objection: string(objection),
	}); err != nil {
		return nil, fmt.Errorf("store inbound: %w", err)
	}
	s.metrics.RecordMessage(string(in.Line), string(conversation.DirectionInbound), true)

	needsName := l.Name == "" && in.PushName != ""
	newObjection := hasObjection && !slices.Contains(l.Objections, string(objection))
	if !needsName && !newObjection {
		return l, nil
	}
	updated, err := s.leads.Mutate(ctx, l.ID, func(current *ent.Lead, u *ent.LeadUpdate) error {
		if current.Name == "" && in.PushName != "" {
			u.SetName(in.PushName)
		}
		if hasObjection && !slices.Contains(current.Objections, string(objection)) {
			u.SetObjections(append(slices.Clone(current.Objections), string(objection)))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update lead profile: %w", err)
	}
	return updated, nil
}

func (s *Service) fallback(ctx context.Context, in Inbound, log logger.Logger) {
	if in.Synthetic {
		return
	}
	cfg, err := product.Get(in.Line)
	if err != nil {
		return
	}
	// the turn context may be what failed
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()
	if !s.sender.Send(sendCtx, in.Phone, cfg.Fallback, in.Line) {
		log.Error("Fallback message not delivered")
	}
}
