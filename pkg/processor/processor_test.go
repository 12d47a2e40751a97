package processor

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jordanlanch/salesagent/ent"
	"github.com/jordanlanch/salesagent/ent/conversation"
	"github.com/jordanlanch/salesagent/pkg/ai/agents"
	"github.com/jordanlanch/salesagent/pkg/ai/llm"
	"github.com/jordanlanch/salesagent/pkg/leads"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/monitoring"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/testdata"
	"github.com/jordanlanch/salesagent/pkg/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	client *ent.Client
	store  *leads.Service
	sender *testdata.Sender
	svc    *Service

	mu      sync.Mutex
	systems []string
	respond func(req llm.ChatRequest) (*llm.ChatResponse, error)
}

func setup(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{client: testdata.OpenDB(t), sender: &testdata.Sender{}}
	f.respond = func(llm.ChatRequest) (*llm.ChatResponse, error) {
		return &llm.ChatResponse{Content: "Olá! Sou a Ana.", StopReason: llm.StopEndTurn, Usage: llm.Usage{InputTokens: 1000, OutputTokens: 200}}, nil
	}
	client := &llm.MockClient{ChatFunc: func(_ context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
		f.mu.Lock()
		f.systems = append(f.systems, req.System)
		respond := f.respond
		f.mu.Unlock()
		return respond(req)
	}}

	f.store = leads.NewService(f.client, nil, logger.Nop(), nil)
	exec := tools.NewExecutor(f.store, f.sender, &testdata.Payments{}, &testdata.Notifier{}, logger.Nop(), nil)
	registry := agents.NewRegistry(client, exec, 0, logger.Nop(), nil)
	f.svc = NewService(f.store, registry, f.sender, logger.Nop(), nil)
	return f
}

func (f *fixture) rows(t *testing.T, leadID int) []*ent.Conversation {
	t.Helper()
	rows, err := f.client.Conversation.Query().
		Where(conversation.LeadID(leadID)).
		Order(ent.Asc(conversation.FieldID)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

func TestProcess_NewLeadGetsHunterReply(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	phone := testdata.Phone()

	err := f.svc.Process(ctx, Inbound{Phone: phone, Text: "Olá", Line: product.Occhiale, PushName: "Marta"})
	require.NoError(t, err)

	l, err := f.store.GetByPhone(ctx, phone, product.Occhiale)
	require.NoError(t, err)
	assert.Equal(t, pipeline.StageNew, l.Stage)
	assert.Equal(t, "Marta", l.Name)
	assert.Equal(t, pipeline.RoleHunter, l.AssignedAgent)
	require.NotNil(t, l.LastContactAt)
	assert.InDelta(t, 0.6, l.AiCostCents, 1e-9)

	rows := f.rows(t, l.ID)
	require.Len(t, rows, 2)
	assert.Equal(t, conversation.DirectionInbound, rows[0].Direction)
	assert.Equal(t, "Olá", rows[0].Content)
	assert.Equal(t, conversation.DirectionOutbound, rows[1].Direction)
	assert.Equal(t, "hunter", rows[1].Agent)
	assert.Equal(t, 1000, rows[1].TokensInput)

	require.Len(t, f.systems, 1)
	assert.Contains(t, f.systems[0], "especialista em vendas")
	assert.Equal(t, testdata.Sent{Phone: phone, Content: "Olá! Sou a Ana.", Line: product.Occhiale}, f.sender.Last())
}

func TestProcess_QualifiedLeadGetsCloser(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageQualified))

	require.NoError(t, f.svc.Process(context.Background(), Inbound{Phone: l.Phone, Text: "quero saber mais", Line: l.Product}))

	require.Len(t, f.systems, 1)
	assert.Contains(t, f.systems[0], "especialista em fechamento")
	rows := f.rows(t, l.ID)
	assert.Equal(t, "closer", rows[len(rows)-1].Agent)
}

func TestProcess_QualifyLeadScoresAndAdvances(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageQualifying))

	var calls atomic.Int32
	f.respond = func(llm.ChatRequest) (*llm.ChatResponse, error) {
		if calls.Add(1) == 1 {
			return &llm.ChatResponse{StopReason: llm.StopToolUse, ToolCalls: []llm.ToolCall{{
				ID:        "q1",
				Name:      tools.NameQualifyLead,
				Arguments: `{"company_size":"large","pain_points":["estoque","vendas online","atendimento"],"urgency":"now"}`,
			}}}, nil
		}
		return &llm.ChatResponse{Content: "Ótimo! Vou te apresentar para nosso especialista.", StopReason: llm.StopEndTurn}, nil
	}

	require.NoError(t, f.svc.Process(context.Background(), Inbound{Phone: l.Phone, Text: "somos uma rede com 120 funcionários", Line: l.Product}))

	updated, err := f.store.Get(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, updated.Score)
	assert.Equal(t, pipeline.StageQualified, updated.Stage)

	rows := f.rows(t, l.ID)
	last := rows[len(rows)-1]
	assert.Equal(t, []string{tools.NameQualifyLead}, last.ToolsCalled)
}

func TestProcess_HumanLeadOnlyStoresInbound(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StagePresenting), testdata.WithAgent(pipeline.RoleHuman))

	require.NoError(t, f.svc.Process(context.Background(), Inbound{Phone: l.Phone, Text: "alô?", Line: l.Product}))

	assert.Empty(t, f.systems)
	assert.Empty(t, f.sender.Messages())
	rows := f.rows(t, l.ID)
	require.Len(t, rows, 1)
	assert.Equal(t, conversation.DirectionInbound, rows[0].Direction)
}

func TestProcess_ObjectionMerged(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client)

	require.NoError(t, f.svc.Process(context.Background(), Inbound{Phone: l.Phone, Text: "achei muito caro", Line: l.Product}))
	require.NoError(t, f.svc.Process(context.Background(), Inbound{Phone: l.Phone, Text: "continua caro", Line: l.Product}))

	updated, err := f.store.Get(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"price_objection"}, updated.Objections)

	rows := f.rows(t, l.ID)
	assert.Equal(t, "price_objection", rows[0].Objection)
	assert.Equal(t, "general_inquiry", rows[0].Intent)
}

func TestProcess_LLMFailureSendsFallback(t *testing.T) {
	f := setup(t)
	f.respond = func(llm.ChatRequest) (*llm.ChatResponse, error) {
		return nil, errors.New("rate limited upstream")
	}
	phone := testdata.Phone()

	err := f.svc.Process(context.Background(), Inbound{Phone: phone, Text: "oi", Line: product.Ekkle})
	require.Error(t, err)

	last := f.sender.Last()
	assert.Equal(t, product.MustGet(product.Ekkle).Fallback, last.Content)
	assert.Equal(t, phone, last.Phone)
}

func TestProcess_EmptyReplySendsFallback(t *testing.T) {
	f := setup(t)
	f.respond = func(llm.ChatRequest) (*llm.ChatResponse, error) {
		return &llm.ChatResponse{Content: "  ", StopReason: llm.StopEndTurn, Usage: llm.Usage{InputTokens: 300, OutputTokens: 1}}, nil
	}
	phone := testdata.Phone()

	require.NoError(t, f.svc.Process(context.Background(), Inbound{Phone: phone, Text: "oi", Line: product.Occhiale}))

	fallback := product.MustGet(product.Occhiale).Fallback
	assert.Equal(t, testdata.Sent{Phone: phone, Content: fallback, Line: product.Occhiale}, f.sender.Last())

	l, err := f.store.GetByPhone(context.Background(), phone, product.Occhiale)
	require.NoError(t, err)
	rows := f.rows(t, l.ID)
	require.Len(t, rows, 2)
	assert.Equal(t, conversation.DirectionOutbound, rows[1].Direction)
	assert.Equal(t, fallback, rows[1].Content)
	assert.Equal(t, "hunter", rows[1].Agent)
	assert.Equal(t, 300, rows[1].TokensInput)
}

func TestProcess_EmptyReplyToSyntheticTurnStaysSilent(t *testing.T) {
	f := setup(t)
	f.respond = func(llm.ChatRequest) (*llm.ChatResponse, error) {
		return &llm.ChatResponse{StopReason: llm.StopEndTurn}, nil
	}
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageContacted))

	require.NoError(t, f.svc.Process(context.Background(), Inbound{
		Phone: l.Phone, Text: "[FOLLOW-UP #1] Retomando contato automaticamente.", Line: l.Product, Synthetic: true,
	}))

	assert.Empty(t, f.sender.Messages())
	rows := f.rows(t, l.ID)
	require.Len(t, rows, 1)
	assert.Equal(t, conversation.KindAudit, rows[0].Kind)
}

func TestProcess_MonitorRecordsAgentTurns(t *testing.T) {
	f := setup(t)
	mon := monitoring.New(logger.Nop())
	f.svc.WithMonitor(mon)
	ctx := context.Background()

	require.NoError(t, f.svc.Process(ctx, Inbound{Phone: testdata.Phone(), Text: "oi", Line: product.Occhiale}))
	f.respond = func(llm.ChatRequest) (*llm.ChatResponse, error) {
		return nil, errors.New("upstream down")
	}
	require.Error(t, f.svc.Process(ctx, Inbound{Phone: testdata.Phone(), Text: "oi", Line: product.Occhiale}))

	stats := mon.Snapshot()["hunter.process"]
	assert.Equal(t, 2, stats.Count)
	assert.Equal(t, 50.0, stats.ErrorRate)
}

func TestProcess_PanicSendsFallback(t *testing.T) {
	f := setup(t)
	f.respond = func(llm.ChatRequest) (*llm.ChatResponse, error) {
		panic("boom")
	}

	err := f.svc.Process(context.Background(), Inbound{Phone: testdata.Phone(), Text: "oi", Line: product.Occhiale})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic")
	assert.Equal(t, product.MustGet(product.Occhiale).Fallback, f.sender.Last().Content)
}

func TestProcess_DeliveryFailure(t *testing.T) {
	f := setup(t)
	f.sender.Fail = true

	err := f.svc.Process(context.Background(), Inbound{Phone: testdata.Phone(), Text: "oi", Line: product.Occhiale})
	assert.ErrorIs(t, err, ErrDeliveryFailed)
}

func TestProcess_SyntheticFollowup(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageContacted), testdata.WithFollowupCount(1))

	require.NoError(t, f.svc.Process(context.Background(), Inbound{
		Phone: l.Phone, Text: "[FOLLOW-UP #2] Retomando contato automaticamente.", Line: l.Product, Synthetic: true,
	}))

	updated, err := f.store.Get(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.FollowupCount)

	rows := f.rows(t, l.ID)
	require.Len(t, rows, 2)
	assert.Equal(t, conversation.KindAudit, rows[0].Kind)
	assert.True(t, strings.HasPrefix(rows[0].Content, "[FOLLOW-UP #2]"))
	assert.Equal(t, conversation.KindMessage, rows[1].Kind)
}

func TestProcess_InvalidPhone(t *testing.T) {
	f := setup(t)
	err := f.svc.Process(context.Background(), Inbound{Phone: "12", Text: "oi", Line: product.Occhiale})
	require.Error(t, err)
	assert.Empty(t, f.sender.Messages())
}

func TestProcess_ConcurrentTurnsShareOneLead(t *testing.T) {
	f := setup(t)
	phone := testdata.Phone()

	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, f.svc.Process(context.Background(), Inbound{Phone: phone, Text: "oi", Line: product.Occhiale}))
		}()
	}
	wg.Wait()

	n, err := f.client.Lead.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Zero(t, f.svc.locks.size())
}

func TestKeyedMutex(t *testing.T) {
	k := newKeyedMutex()
	unlock := k.Lock("a")

	acquired := make(chan struct{})
	go func() {
		u := k.Lock("a")
		close(acquired)
		u()
	}()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while held")
	case <-time.After(50 * time.Millisecond):
	}

	other := k.Lock("b")
	other()

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("lock not released")
	}
}
