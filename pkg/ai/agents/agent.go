// Package agents implements the stage-specific sales agents. Each agent wraps
// an LLM conversation whose tool calls are executed against the lead store.
package agents

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jordanlanch/salesagent/ent"
	"github.com/jordanlanch/salesagent/ent/conversation"
	"github.com/jordanlanch/salesagent/pkg/ai/llm"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/metrics"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/tools"
)

const (
	// DefaultMaxRounds bounds the LLM ↔ tool loop of one turn.
	DefaultMaxRounds = 5
	historyWindow    = 10
	temperature      = 0.7

	// LoopLimitReason is the escalation reason used when the loop hits its cap.
	LoopLimitReason = "tool loop limit reached"
	handoffText     = "Vou passar sua conversa para um especialista da nossa equipe. Em breve alguém fala com você! 🙏"
)

// Token prices in cents per thousand tokens.
const (
	inputCentsPer1K  = 0.3
	outputCentsPer1K = 1.5
)

var maxTokens = map[pipeline.Role]int{
	pipeline.RoleHunter:     1500,
	pipeline.RoleCloser:     2000,
	pipeline.RoleOnboarding: 1500,
	pipeline.RoleCS:         1500,
}

// ToolRunner executes the tool calls an agent's LLM requests.
type ToolRunner interface {
	ExecuteRaw(ctx context.Context, env tools.Env, name, arguments string) tools.Result
	Execute(ctx context.Context, env tools.Env, call tools.Call) tools.Result
}

// Input is one inbound turn. History holds conversation rows oldest first;
// Product may be nil, in which case the lead's line is looked up.
type Input struct {
	Lead    *ent.Lead
	History []*ent.Conversation
	Product *product.Config
	Text    string
}

// Reply is the outcome of one agent turn.
type Reply struct {
	Text         string
	ToolsCalled  []string
	InputTokens  int
	OutputTokens int
	CostCents    float64
	// Escalated is set when the loop cap handed the lead to a human.
	Escalated bool
}

// Agent is one sales role bound to an LLM and the tool executor.
type Agent struct {
	role      pipeline.Role
	llm       llm.Client
	tools     ToolRunner
	prompt    PromptBuilder
	maxTokens int
	maxRounds int
	log       logger.Logger
	metrics   *metrics.Metrics
}

// New creates the agent for role. maxRounds <= 0 uses DefaultMaxRounds.
func New(role pipeline.Role, client llm.Client, runner ToolRunner, maxRounds int, log logger.Logger, m *metrics.Metrics) (*Agent, error) {
	prompt, ok := prompts[role]
	if !ok {
		return nil, fmt.Errorf("no agent for role %q", role)
	}
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	return &Agent{
		role:      role,
		llm:       client,
		tools:     runner,
		prompt:    prompt,
		maxTokens: maxTokens[role],
		maxRounds: maxRounds,
		log:       log.With("agent", role),
		metrics:   m,
	}, nil
}

// Role returns the role the agent plays.
func (a *Agent) Role() pipeline.Role { return a.role }

// Process runs one turn: the LLM is called with the role prompt, the recent
// history and the new text, and tool calls are executed until the model
// answers with text or the round cap is hit. LLM errors are returned.
func (a *Agent) Process(ctx context.Context, in Input) (*Reply, error) {
	start := time.Now()
	cfg := in.Product
	if cfg == nil {
		var err error
		if cfg, err = product.Get(in.Lead.Product); err != nil {
			return nil, err
		}
	}

	req := llm.ChatRequest{
		System:      a.prompt(in.Lead, cfg),
		Messages:    BuildMessages(in.History, in.Text),
		Tools:       tools.ForRole(a.role),
		MaxTokens:   a.maxTokens,
		Temperature: temperature,
	}
	env := tools.Env{Lead: in.Lead, Agent: a.role}
	reply := &Reply{}

	resp, err := a.chat(ctx, req, reply)
	if err != nil {
		return nil, err
	}

	for round := 0; resp.StopReason == llm.StopToolUse && len(resp.ToolCalls) > 0; round++ {
		if round >= a.maxRounds {
			a.log.Warn("Tool loop limit reached, escalating", "lead_id", in.Lead.ID, "rounds", round)
			a.tools.Execute(ctx, env, tools.EscalateToHuman{Reason: LoopLimitReason, Priority: "high"})
			reply.ToolsCalled = append(reply.ToolsCalled, tools.NameEscalateToHuman)
			reply.Text = handoffText
			reply.Escalated = true
			a.finish(in.Lead, reply, start)
			return reply, nil
		}

		results := a.runTools(ctx, env, resp.ToolCalls)
		req.Messages = append(req.Messages, llm.ChatMessage{
			Role:      llm.RoleAssistant,
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})
		for i, call := range resp.ToolCalls {
			reply.ToolsCalled = append(reply.ToolsCalled, call.Name)
			content := results[i].Content
			if results[i].IsError {
				content = "ERRO: " + content
			}
			req.Messages = append(req.Messages, llm.ChatMessage{
				Role:       llm.RoleTool,
				Content:    content,
				ToolCallID: call.ID,
			})
		}

		if resp, err = a.chat(ctx, req, reply); err != nil {
			return nil, err
		}
	}

	reply.Text = resp.Content
	a.finish(in.Lead, reply, start)
	return reply, nil
}

func (a *Agent) chat(ctx context.Context, req llm.ChatRequest, reply *Reply) (*llm.ChatResponse, error) {
	resp, err := a.llm.Chat(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s llm call failed: %w", a.role, err)
	}
	reply.InputTokens += resp.Usage.InputTokens
	reply.OutputTokens += resp.Usage.OutputTokens
	return resp, nil
}

// runTools executes every call of one response concurrently. Results keep
// the order of calls.
func (a *Agent) runTools(ctx context.Context, env tools.Env, calls []llm.ToolCall) []tools.Result {
	results := make([]tools.Result, len(calls))
	var g errgroup.Group
	for i, call := range calls {
		g.Go(func() error {
			results[i] = a.tools.ExecuteRaw(ctx, env, call.Name, call.Arguments)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (a *Agent) finish(l *ent.Lead, reply *Reply, start time.Time) {
	reply.CostCents = Cost(reply.InputTokens, reply.OutputTokens)
	d := time.Since(start)
	a.metrics.RecordAgentTurn(string(l.Product), string(a.role), d, reply.InputTokens, reply.OutputTokens, reply.CostCents)
	a.log.Info("Agent turn completed",
		"lead_id", l.ID,
		"tools", len(reply.ToolsCalled),
		"tokens_in", reply.InputTokens,
		"tokens_out", reply.OutputTokens,
		"duration_ms", d.Milliseconds())
}

// Cost converts token usage into cents.
func Cost(inputTokens, outputTokens int) float64 {
	return (float64(inputTokens)*inputCentsPer1K + float64(outputTokens)*outputCentsPer1K) / 1000
}

// BuildMessages maps the last message rows to chat turns and appends text
// as the newest user turn.
func BuildMessages(history []*ent.Conversation, text string) []llm.ChatMessage {
	rows := make([]*ent.Conversation, 0, len(history))
	for _, c := range history {
		if c.Kind == conversation.KindMessage {
			rows = append(rows, c)
		}
	}
	if len(rows) > historyWindow {
		rows = rows[len(rows)-historyWindow:]
	}

	msgs := make([]llm.ChatMessage, 0, len(rows)+1)
	for _, c := range rows {
		role := llm.RoleAssistant
		if c.Direction == conversation.DirectionInbound {
			role = llm.RoleUser
		}
		msgs = append(msgs, llm.ChatMessage{Role: role, Content: c.Content})
	}
	return append(msgs, llm.ChatMessage{Role: llm.RoleUser, Content: text})
}
