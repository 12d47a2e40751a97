package analytics

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/jordanlanch/salesagent/ent"
	"github.com/jordanlanch/salesagent/ent/conversation"
	"github.com/jordanlanch/salesagent/ent/lead"
	"github.com/jordanlanch/salesagent/pkg/cache"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
)

const metricsCacheKey = "dashboard:metrics:"

// Dashboard returns the pipeline summary, served from Redis for up to a
// minute.
func (s *Service) Dashboard(ctx context.Context, line string) (*models.DashboardMetrics, error) {
	key := metricsCacheKey + line
	if s.cache != nil {
		var cached models.DashboardMetrics
		err := s.cache.GetJSON(ctx, key, &cached)
		if err == nil {
			s.metrics.RecordCacheHit("redis")
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			s.log.Warn("Dashboard cache read failed", "error", err)
		}
		s.metrics.RecordCacheMiss("redis")
	}

	m, err := s.computeDashboard(ctx, line)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, m, s.cacheTTL); err != nil {
			s.log.Warn("Dashboard cache write failed", "error", err)
		}
	}
	return m, nil
}

// InvalidateDashboard drops cached summaries.
func (s *Service) InvalidateDashboard(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.DeletePattern(ctx, metricsCacheKey+"*")
}

func (s *Service) computeDashboard(ctx context.Context, line string) (*models.DashboardMetrics, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := s.db.Lead.Query()
	if line != "" {
		query = query.Where(lead.ProductEQ(product.Line(line)))
	}
	leads, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load leads: %w", err)
	}

	now := s.now()
	today := Day(now)
	local := now.In(Location)
	monthStart := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, Location)

	m := &models.DashboardMetrics{
		Product:     line,
		TotalLeads:  len(leads),
		GeneratedAt: now.UTC().Format(time.RFC3339),
	}
	for _, l := range leads {
		if Day(l.CreatedAt) == today {
			m.NewLeadsToday++
		}
		switch l.Stage {
		case pipeline.StageContacted, pipeline.StageQualifying:
			m.InQualification++
		case pipeline.StageQualified:
			m.Qualified++
		case pipeline.StagePresenting, pipeline.StageNegotiating:
			m.InNegotiation++
		case pipeline.StageWon:
			m.DealsWon++
		case pipeline.StageActive:
			m.DealsWon++
			m.ActiveCustomers++
		case pipeline.StageLost:
			m.DealsLost++
		case pipeline.StageChurned:
			m.Churned++
		}
		if l.WonAmountCents != nil {
			m.RevenueCents += *l.WonAmountCents
			if l.WonAt != nil && !l.WonAt.Before(monthStart) {
				m.RevenueThisMonthCents += *l.WonAmountCents
			}
		}
		if l.Metadata.Escalation != nil && l.Metadata.Escalation.NeedsAttention {
			m.NeedsAttention++
		}
	}
	m.ConversionRate = percent(m.DealsWon, m.TotalLeads)
	m.ChurnRate = percent(m.Churned, m.ActiveCustomers+m.Churned)

	convQuery := s.db.Conversation.Query()
	if line != "" {
		convQuery = convQuery.Where(conversation.ProductEQ(product.Line(line)))
	}
	rows, err := convQuery.
		Select(conversation.FieldCostCents, conversation.FieldCreatedAt, conversation.FieldToolsCalled, conversation.FieldKind).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversations: %w", err)
	}
	for _, c := range rows {
		m.AICostCents += c.CostCents
		if !c.CreatedAt.Before(monthStart) {
			m.AICostThisMonthCents += c.CostCents
		}
		if c.Kind == conversation.KindAudit && slices.Contains(c.ToolsCalled, EscalationTool) {
			m.Escalations++
		}
	}
	return m, nil
}

// Funnel counts leads per stage in pipeline order.
func (s *Service) Funnel(ctx context.Context, line string) (*models.FunnelResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var counts []struct {
		Stage string `json:"stage"`
		Count int    `json:"count"`
	}
	query := s.db.Lead.Query()
	if line != "" {
		query = query.Where(lead.ProductEQ(product.Line(line)))
	}
	if err := query.GroupBy(lead.FieldStage).Aggregate(ent.Count()).Scan(ctx, &counts); err != nil {
		return nil, fmt.Errorf("failed to group leads by stage: %w", err)
	}

	byStage := make(map[pipeline.Stage]int, len(counts))
	for _, c := range counts {
		byStage[pipeline.Stage(c.Stage)] = c.Count
	}

	resp := &models.FunnelResponse{Product: line}
	for _, st := range pipeline.Stages() {
		resp.Stages = append(resp.Stages, models.FunnelStage{Stage: string(st), Count: byStage[st]})
		resp.Total += byStage[st]
	}
	return resp, nil
}

// ConversationStats counts stored message rows.
func (s *Service) ConversationStats(ctx context.Context, line string) (*models.ConversationStats, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := s.db.Conversation.Query().Where(conversation.KindEQ(conversation.KindMessage))
	if line != "" {
		query = query.Where(conversation.ProductEQ(product.Line(line)))
	}
	rows, err := query.
		Select(conversation.FieldDirection, conversation.FieldAgent, conversation.FieldCreatedAt,
			conversation.FieldTokensInput, conversation.FieldTokensOutput, conversation.FieldCostCents).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversations: %w", err)
	}

	today := Day(s.now())
	stats := &models.ConversationStats{Total: len(rows), ByAgent: map[string]int{}}
	for _, c := range rows {
		if c.Direction == conversation.DirectionInbound {
			stats.Inbound++
		} else {
			stats.Outbound++
			stats.ByAgent[c.Agent]++
		}
		if Day(c.CreatedAt) == today {
			stats.Today++
		}
		stats.TotalTokens += c.TokensInput + c.TokensOutput
		stats.CostCents += c.CostCents
	}
	return stats, nil
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*10000) / 100
}
