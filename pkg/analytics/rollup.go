package analytics

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/jordanlanch/salesagent/ent/conversation"
	"github.com/jordanlanch/salesagent/ent/lead"
	"github.com/jordanlanch/salesagent/ent/salesmetric"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/product"
)

// EscalationTool is the tool name counted as an escalation.
const EscalationTool = "escalate_to_human"

// Rollup recomputes the aggregate rows of the business day containing t
// from the lead and conversation tables, replacing incremental counts.
func (s *Service) Rollup(ctx context.Context, t time.Time) ([]models.DailyMetric, error) {
	day := t.In(Location)
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, Location).UTC()
	end := start.AddDate(0, 0, 1)

	var out []models.DailyMetric
	for _, line := range []product.Line{product.Occhiale, product.Ekkle} {
		m, err := s.computeDay(ctx, line, start, end)
		if err != nil {
			return nil, err
		}

		err = s.db.SalesMetric.Create().
			SetDate(m.Date).
			SetProduct(line).
			SetLeadsCreated(m.LeadsCreated).
			SetMessagesSent(m.MessagesSent).
			SetDealsWon(m.DealsWon).
			SetRevenueCents(m.RevenueCents).
			SetAiCostCents(m.AICostCents).
			SetEscalations(m.Escalations).
			OnConflictColumns(salesmetric.FieldDate, salesmetric.FieldProduct).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to store rollup for %s: %w", line, err)
		}
		out = append(out, m)
	}

	s.log.Info("📊 Daily sales metrics recomputed", "date", Day(start))
	return out, nil
}

func (s *Service) computeDay(ctx context.Context, line product.Line, start, end time.Time) (models.DailyMetric, error) {
	m := models.DailyMetric{Date: Day(start), Product: string(line)}

	created, err := s.db.Lead.Query().
		Where(lead.ProductEQ(line), lead.CreatedAtGTE(start), lead.CreatedAtLT(end)).
		Count(ctx)
	if err != nil {
		return m, fmt.Errorf("count leads: %w", err)
	}
	m.LeadsCreated = created

	won, err := s.db.Lead.Query().
		Where(lead.ProductEQ(line), lead.WonAtGTE(start), lead.WonAtLT(end)).
		All(ctx)
	if err != nil {
		return m, fmt.Errorf("load won leads: %w", err)
	}
	m.DealsWon = len(won)
	for _, l := range won {
		if l.WonAmountCents != nil {
			m.RevenueCents += *l.WonAmountCents
		}
	}

	rows, err := s.db.Conversation.Query().
		Where(
			conversation.ProductEQ(line),
			conversation.CreatedAtGTE(start),
			conversation.CreatedAtLT(end),
		).
		Select(conversation.FieldDirection, conversation.FieldKind, conversation.FieldCostCents, conversation.FieldToolsCalled).
		All(ctx)
	if err != nil {
		return m, fmt.Errorf("load conversations: %w", err)
	}
	for _, c := range rows {
		m.AICostCents += c.CostCents
		if c.Kind == conversation.KindMessage && c.Direction == conversation.DirectionOutbound {
			m.MessagesSent++
		}
		if c.Kind == conversation.KindAudit && slices.Contains(c.ToolsCalled, EscalationTool) {
			m.Escalations++
		}
	}
	return m, nil
}
