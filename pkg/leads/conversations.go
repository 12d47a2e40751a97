package leads

import (
	"context"
	"fmt"

	"github.com/jordanlanch/salesagent/ent"
	"github.com/jordanlanch/salesagent/ent/conversation"
	"github.com/jordanlanch/salesagent/ent/predicate"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/product"
)

// AgentSystem labels rows not written by an agent.
const AgentSystem = "system"

// Message is a conversation row to append.
type Message struct {
	LeadID       int
	Product      product.Line
	Direction    conversation.Direction
	Content      string
	Agent        string
	ToolsCalled  []string
	Intent       string
	Objection    string
	TokensInput  int
	TokensOutput int
	CostCents    float64
}

// AppendMessage stores a message row. Outbound rows count towards the
// daily messages_sent aggregate.
func (s *Service) AppendMessage(ctx context.Context, m Message) (*ent.Conversation, error) {
	row, err := s.insert(ctx, m, conversation.KindMessage)
	if err != nil {
		return nil, err
	}
	if m.Direction == conversation.DirectionOutbound {
		s.count(ctx, m.Product, models.MetricDelta{MessagesSent: 1, AICostCents: m.CostCents})
	}
	return row, nil
}

// AppendAudit stores a tool or system event. Audit rows never reach the
// LLM context window.
func (s *Service) AppendAudit(ctx context.Context, leadID int, line product.Line, agent, tool, summary string) error {
	m := Message{
		LeadID:    leadID,
		Product:   line,
		Direction: conversation.DirectionOutbound,
		Content:   summary,
		Agent:     agent,
	}
	if tool != "" {
		m.ToolsCalled = []string{tool}
	}
	_, err := s.insert(ctx, m, conversation.KindAudit)
	return err
}

func (s *Service) insert(ctx context.Context, m Message, kind conversation.Kind) (*ent.Conversation, error) {
	if m.Agent == "" {
		m.Agent = AgentSystem
	}
	row, err := s.db.Conversation.Create().
		SetLeadID(m.LeadID).
		SetProduct(m.Product).
		SetDirection(m.Direction).
		SetKind(kind).
		SetContent(m.Content).
		SetAgent(m.Agent).
		SetToolsCalled(m.ToolsCalled).
		SetIntent(m.Intent).
		SetObjection(m.Objection).
		SetTokensInput(m.TokensInput).
		SetTokensOutput(m.TokensOutput).
		SetCostCents(m.CostCents).
		SetCreatedAt(s.now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to store conversation row: %w", err)
	}
	return row, nil
}

// History returns the last limit message rows of a lead in chronological
// order. Audit rows are excluded.
func (s *Service) History(ctx context.Context, leadID, limit int) ([]*ent.Conversation, error) {
	rows, err := s.db.Conversation.Query().
		Where(conversation.LeadID(leadID), conversation.KindEQ(conversation.KindMessage)).
		Order(ent.Desc(conversation.FieldCreatedAt), ent.Desc(conversation.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows, nil
}

// Timeline returns the last limit rows of a lead, audit included, newest first.
func (s *Service) Timeline(ctx context.Context, leadID, limit int) ([]*ent.Conversation, error) {
	return s.db.Conversation.Query().
		Where(conversation.LeadID(leadID)).
		Order(ent.Desc(conversation.FieldCreatedAt), ent.Desc(conversation.FieldID)).
		Limit(limit).
		All(ctx)
}

func conversationOf(leadID int) predicate.Conversation {
	return conversation.LeadID(leadID)
}

// ToConversationResponse converts a row for the API.
func ToConversationResponse(c *ent.Conversation) models.ConversationResponse {
	return models.ConversationResponse{
		ID:           c.ID,
		LeadID:       c.LeadID,
		Product:      string(c.Product),
		Direction:    string(c.Direction),
		Kind:         string(c.Kind),
		Content:      c.Content,
		Agent:        c.Agent,
		ToolsCalled:  c.ToolsCalled,
		Intent:       c.Intent,
		Objection:    c.Objection,
		TokensInput:  c.TokensInput,
		TokensOutput: c.TokensOutput,
		CostCents:    c.CostCents,
		CreatedAt:    c.CreatedAt.Format(timeLayout),
	}
}
