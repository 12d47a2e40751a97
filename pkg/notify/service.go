// Package notify alerts the sales team when a conversation is escalated to
// a human, over a Slack webhook and e-mail.
package notify

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/jordanlanch/salesagent/pkg/domain"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/product"
)

// Service fans an escalation out to the configured channels. With no
// channel configured the alert is only logged.
type Service struct {
	slack  SlackClient
	mailer *Mailer
	log    logger.Logger
}

// NewService creates a notifier. slack and mailer may be nil.
func NewService(slack SlackClient, mailer *Mailer, log logger.Logger) *Service {
	return &Service{slack: slack, mailer: mailer, log: log}
}

// IsEnabled returns true if at least one channel is configured.
func (s *Service) IsEnabled() bool {
	return s.slack != nil || s.mailer != nil
}

// NotifyEscalation implements domain.Notifier.
func (s *Service) NotifyEscalation(ctx context.Context, alert domain.EscalationAlert) error {
	if !s.IsEnabled() {
		s.log.Info("📣 Escalation (no alert channel configured)",
			"lead_id", alert.LeadID, "priority", alert.Priority, "reason", alert.Reason)
		return nil
	}

	var errs []error
	if s.slack != nil {
		if err := s.slack.PostEscalation(ctx, alert); err != nil {
			errs = append(errs, err)
		}
	}
	if s.mailer != nil {
		subject := fmt.Sprintf("[%s] Escalação %s: %s", displayName(alert.Product),
			strings.ToUpper(alert.Priority), firstNonEmpty(alert.Name, alert.Phone))
		if err := s.mailer.Send(ctx, subject, plainText(alert), htmlText(alert)); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		s.log.Error("❌ Escalation alert failed", "lead_id", alert.LeadID, "error", err)
		return err
	}
	s.log.Info("📣 Escalation alert sent", "lead_id", alert.LeadID, "priority", alert.Priority)
	return nil
}

func plainText(a domain.EscalationAlert) string {
	return fmt.Sprintf("[ESCALAÇÃO - PRIORIDADE %s]\nMotivo: %s\nLead: %s (%s)\nEmpresa: %s\nProduto: %s\nAgente anterior: %s\nEm: %s",
		strings.ToUpper(a.Priority), a.Reason, firstNonEmpty(a.Name, "N/A"), a.Phone,
		firstNonEmpty(a.Company, "N/A"), displayName(a.Product), a.Agent,
		a.At.Format("02/01/2006 15:04"))
}

func htmlText(a domain.EscalationAlert) string {
	return "<pre>" + html.EscapeString(plainText(a)) + "</pre>"
}

func displayName(line product.Line) string {
	if cfg, err := product.Get(line); err == nil {
		return cfg.DisplayName
	}
	return string(line)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
