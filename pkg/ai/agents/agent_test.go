package agents

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jordanlanch/salesagent/ent"
	"github.com/jordanlanch/salesagent/ent/conversation"
	"github.com/jordanlanch/salesagent/pkg/ai/llm"
	"github.com/jordanlanch/salesagent/pkg/leads"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/testdata"
	"github.com/jordanlanch/salesagent/pkg/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted replays responses in order and records every request.
type scripted struct {
	mu        sync.Mutex
	responses []*llm.ChatResponse
	requests  []llm.ChatRequest
	err       error
}

func (s *scripted) client() *llm.MockClient {
	return &llm.MockClient{ChatFunc: func(_ context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.requests = append(s.requests, req)
		if s.err != nil {
			return nil, s.err
		}
		if len(s.responses) == 0 {
			return &llm.ChatResponse{Content: "ok", StopReason: llm.StopEndTurn}, nil
		}
		r := s.responses[0]
		if len(s.responses) > 1 {
			s.responses = s.responses[1:]
		}
		return r, nil
	}}
}

func toolUse(calls ...llm.ToolCall) *llm.ChatResponse {
	return &llm.ChatResponse{ToolCalls: calls, StopReason: llm.StopToolUse, Usage: llm.Usage{InputTokens: 1000, OutputTokens: 100}}
}

func text(s string) *llm.ChatResponse {
	return &llm.ChatResponse{Content: s, StopReason: llm.StopEndTurn, Usage: llm.Usage{InputTokens: 1000, OutputTokens: 200}}
}

type fixture struct {
	client *ent.Client
	exec   *tools.Executor
	sender *testdata.Sender
}

func setup(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{client: testdata.OpenDB(t), sender: &testdata.Sender{}}
	store := leads.NewService(f.client, nil, logger.Nop(), nil)
	f.exec = tools.NewExecutor(store, f.sender, &testdata.Payments{}, &testdata.Notifier{}, logger.Nop(), nil).
		WithClock(func() time.Time { return time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC) })
	return f
}

func (f *fixture) agent(t *testing.T, role pipeline.Role, s *scripted, rounds int) *Agent {
	t.Helper()
	a, err := New(role, s.client(), f.exec, rounds, logger.Nop(), nil)
	require.NoError(t, err)
	return a
}

func TestProcess_TextOnly(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client)
	s := &scripted{responses: []*llm.ChatResponse{text("Olá! Como posso ajudar?")}}

	reply, err := f.agent(t, pipeline.RoleHunter, s, 0).Process(context.Background(), Input{Lead: l, Text: "oi"})
	require.NoError(t, err)

	assert.Equal(t, "Olá! Como posso ajudar?", reply.Text)
	assert.Empty(t, reply.ToolsCalled)
	assert.InDelta(t, 0.6, reply.CostCents, 1e-9)
	require.Len(t, s.requests, 1)
	req := s.requests[0]
	assert.Equal(t, 1500, req.MaxTokens)
	assert.Len(t, req.Tools, 4)
	assert.Contains(t, req.System, "Ana")
	assert.Equal(t, []llm.ChatMessage{{Role: llm.RoleUser, Content: "oi"}}, req.Messages)
}

func TestProcess_ToolRound(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client)
	s := &scripted{responses: []*llm.ChatResponse{
		toolUse(llm.ToolCall{ID: "call_1", Name: tools.NameQualifyLead, Arguments: `{"company_size":"medium","pain_points":["estoque","vendas"],"urgency":"now"}`}),
		text("Perfeito, anotei tudo."),
	}}

	reply, err := f.agent(t, pipeline.RoleHunter, s, 0).Process(context.Background(), Input{Lead: l, Text: "temos 30 funcionários"})
	require.NoError(t, err)

	assert.Equal(t, "Perfeito, anotei tudo.", reply.Text)
	assert.Equal(t, []string{tools.NameQualifyLead}, reply.ToolsCalled)
	assert.Equal(t, 2000, reply.InputTokens)
	assert.Equal(t, 300, reply.OutputTokens)

	require.Len(t, s.requests, 2)
	msgs := s.requests[1].Messages
	require.Len(t, msgs, 3)
	assert.Equal(t, llm.RoleAssistant, msgs[1].Role)
	assert.Len(t, msgs[1].ToolCalls, 1)
	assert.Equal(t, llm.RoleTool, msgs[2].Role)
	assert.Equal(t, "call_1", msgs[2].ToolCallID)
	assert.Contains(t, msgs[2].Content, "Score atualizado")

	updated, err := f.client.Lead.Get(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, 85, updated.Score)
	assert.Equal(t, pipeline.StageQualifying, updated.Stage)
}

func TestProcess_ConcurrentCallsKeepOrder(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageActive))
	s := &scripted{responses: []*llm.ChatResponse{
		toolUse(
			llm.ToolCall{ID: "a", Name: tools.NameCheckUsage, Arguments: `{}`},
			llm.ToolCall{ID: "b", Name: tools.NameSendTip, Arguments: `{"tip_category":"growth"}`},
			llm.ToolCall{ID: "c", Name: tools.NameQualifyLead, Arguments: `{}`},
		),
		text("Te mandei uma dica!"),
	}}

	reply, err := f.agent(t, pipeline.RoleCS, s, 0).Process(context.Background(), Input{Lead: l, Text: "tudo bem"})
	require.NoError(t, err)

	assert.Equal(t, []string{tools.NameCheckUsage, tools.NameSendTip, tools.NameQualifyLead}, reply.ToolsCalled)
	msgs := s.requests[1].Messages
	require.Len(t, msgs, 5)
	assert.Equal(t, "a", msgs[2].ToolCallID)
	assert.Contains(t, msgs[2].Content, "Risco de churn")
	assert.Equal(t, "b", msgs[3].ToolCallID)
	assert.Equal(t, "c", msgs[4].ToolCallID)
	// qualify_lead is not a CS tool
	assert.Contains(t, msgs[4].Content, "ERRO:")
	assert.Len(t, f.sender.Messages(), 1)
}

func TestProcess_LoopCapEscalates(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageWon))
	s := &scripted{responses: []*llm.ChatResponse{
		toolUse(llm.ToolCall{ID: "x", Name: tools.NameCheckProgress, Arguments: `{}`}),
	}}

	reply, err := f.agent(t, pipeline.RoleOnboarding, s, 2).Process(context.Background(), Input{Lead: l, Text: "e agora?"})
	require.NoError(t, err)

	assert.True(t, reply.Escalated)
	assert.Equal(t, handoffText, reply.Text)
	assert.Len(t, s.requests, 3)
	assert.Equal(t, []string{tools.NameCheckProgress, tools.NameCheckProgress, tools.NameEscalateToHuman}, reply.ToolsCalled)

	updated, err := f.client.Lead.Get(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, pipeline.RoleHuman, updated.AssignedAgent)
	require.NotNil(t, updated.Metadata.Escalation)
	assert.Equal(t, LoopLimitReason, updated.Metadata.Escalation.Reason)
	assert.Equal(t, "high", updated.Metadata.Escalation.Priority)
}

func TestProcess_LLMError(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client)
	s := &scripted{err: errors.New("upstream 500")}

	_, err := f.agent(t, pipeline.RoleHunter, s, 0).Process(context.Background(), Input{Lead: l, Text: "oi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream 500")
}

func TestBuildMessages(t *testing.T) {
	var history []*ent.Conversation
	for i := range 12 {
		dir := conversation.DirectionInbound
		if i%2 == 1 {
			dir = conversation.DirectionOutbound
		}
		history = append(history, &ent.Conversation{Kind: conversation.KindMessage, Direction: dir, Content: fmt.Sprintf("m%d", i)})
	}
	history = append(history, &ent.Conversation{Kind: conversation.KindAudit, Direction: conversation.DirectionOutbound, Content: "[TIP] x"})

	msgs := BuildMessages(history, "nova")
	require.Len(t, msgs, 11)
	assert.Equal(t, "m2", msgs[0].Content)
	assert.Equal(t, llm.RoleUser, msgs[0].Role)
	assert.Equal(t, llm.RoleAssistant, msgs[1].Role)
	assert.Equal(t, "m11", msgs[9].Content)
	assert.Equal(t, llm.ChatMessage{Role: llm.RoleUser, Content: "nova"}, msgs[10])
}

func TestCost(t *testing.T) {
	assert.InDelta(t, 0.0, Cost(0, 0), 1e-9)
	assert.InDelta(t, 1.8, Cost(1000, 1000), 1e-9)
	assert.InDelta(t, 0.45, Cost(500, 200), 1e-9)
}

func TestRegistry_For(t *testing.T) {
	r := NewRegistry(&llm.MockClient{}, nil, 0, logger.Nop(), nil)
	tests := map[pipeline.Stage]pipeline.Role{
		pipeline.StageNew:         pipeline.RoleHunter,
		pipeline.StageScraped:     pipeline.RoleHunter,
		pipeline.StageNurturing:   pipeline.RoleHunter,
		pipeline.StagePresenting:  pipeline.RoleCloser,
		pipeline.StageNegotiating: pipeline.RoleCloser,
		pipeline.StageWon:         pipeline.RoleOnboarding,
		pipeline.StageActive:      pipeline.RoleCS,
		pipeline.StageLost:        pipeline.RoleHunter,
	}
	for stage, role := range tests {
		t.Run(string(stage), func(t *testing.T) {
			assert.Equal(t, role, r.For(stage).Role())
		})
	}
	assert.Len(t, r.Roles(), 4)

	_, err := New(pipeline.RoleHuman, &llm.MockClient{}, nil, 0, logger.Nop(), nil)
	assert.Error(t, err)
}

func TestPrompts(t *testing.T) {
	cfg := product.MustGet(product.Ekkle)
	now := time.Now()
	md := models.LeadMetadata{Version: models.MetadataVersion}
	ob := md.EnsureOnboarding(now)
	ob.Complete(cfg.OnboardingSteps[0], "")
	md.NPS.Add(6, "", now)
	l := &ent.Lead{Name: "Pr. João", Product: product.Ekkle, Stage: pipeline.StageWon, WonPlan: "Anual", Metadata: md}

	onboarding := OnboardingPrompt(l, cfg)
	assert.Contains(t, onboarding, "Pr. João")
	assert.Contains(t, onboarding, "13%")
	for _, step := range cfg.OnboardingSteps {
		assert.Contains(t, onboarding, step)
	}
	assert.Contains(t, onboarding, "[x] "+cfg.OnboardingSteps[0])

	cs := CSPrompt(l, cfg)
	assert.Contains(t, cs, "NPS anterior: 6 (detractor)")
	assert.Contains(t, cs, "15%")

	closer := CloserPrompt(l, cfg)
	assert.Contains(t, closer, "R$ 57,00/mês")
	assert.Contains(t, closer, "R$ 397,00/ano")
	assert.Contains(t, HunterPrompt(l, cfg), "Não informada")
}
