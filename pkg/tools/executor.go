package tools

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jordanlanch/salesagent/ent"
	"github.com/jordanlanch/salesagent/ent/conversation"
	"github.com/jordanlanch/salesagent/pkg/domain"
	"github.com/jordanlanch/salesagent/pkg/leads"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/metrics"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/whatsapp"
)

// Result is what the LLM sees after a tool ran.
type Result struct {
	Content string
	IsError bool
}

// Env identifies the lead and agent a call runs for. Lead is the snapshot the
// agent turn started with; mutations always re-read the row.
type Env struct {
	Lead  *ent.Lead
	Agent pipeline.Role
}

// outcome is a successful tool run: Content goes back to the LLM, Audit to
// the conversation log (Content when empty).
type outcome struct {
	Content string
	Audit   string
}

var errSendFailed = errors.New("message not delivered")

// Executor runs tool calls against the lead store and the messaging gateway.
type Executor struct {
	leads    *leads.Service
	sender   whatsapp.MediaSender
	payments domain.PaymentProvider
	notifier domain.Notifier
	log      logger.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

// NewExecutor creates an executor. payments and notifier may be nil: payment
// links then fail with an error result and escalations are only logged.
func NewExecutor(store *leads.Service, sender whatsapp.MediaSender, payments domain.PaymentProvider, notifier domain.Notifier, log logger.Logger, m *metrics.Metrics) *Executor {
	return &Executor{
		leads:    store,
		sender:   sender,
		payments: payments,
		notifier: notifier,
		log:      log,
		metrics:  m,
		now:      time.Now,
	}
}

// WithClock replaces the time source. Used by tests.
func (e *Executor) WithClock(now func() time.Time) *Executor {
	e.now = now
	return e
}

// ExecuteRaw decodes and runs a call as requested by the LLM.
func (e *Executor) ExecuteRaw(ctx context.Context, env Env, name, arguments string) Result {
	if !Allowed(env.Agent, name) {
		e.metrics.RecordToolCall(name, false)
		return Result{Content: fmt.Sprintf("Ferramenta %q não disponível para o agente %s.", name, env.Agent), IsError: true}
	}
	call, err := Decode(name, arguments)
	if err != nil {
		e.metrics.RecordToolCall(name, false)
		return Result{Content: err.Error(), IsError: true}
	}
	return e.Execute(ctx, env, call)
}

// Execute runs one call. Errors and panics become error results and every
// run leaves an audit row.
func (e *Executor) Execute(ctx context.Context, env Env, call Call) (res Result) {
	name := call.ToolName()
	log := e.log.With("tool", name, "lead_id", env.Lead.ID, "agent", env.Agent)

	var summary string
	defer func() {
		if r := recover(); r != nil {
			log.Error("Tool panicked", "panic", r)
			res = Result{Content: fmt.Sprintf("Erro interno ao executar %s.", name), IsError: true}
		}
		switch {
		case res.IsError:
			summary = "[ERRO] " + res.Content
		case summary == "":
			summary = res.Content
		}
		e.metrics.RecordToolCall(name, !res.IsError)
		e.audit(ctx, env, name, summary)
	}()

	out, err := e.dispatch(ctx, env, call)
	if err != nil {
		log.Warn("Tool failed", "error", err)
		return Result{Content: errorMessage(err), IsError: true}
	}

	log.Info("Tool executed")
	summary = out.Audit
	return Result{Content: out.Content}
}

func (e *Executor) dispatch(ctx context.Context, env Env, call Call) (outcome, error) {
	switch c := call.(type) {
	case QualifyLead:
		return e.qualifyLead(ctx, env, c)
	case TransferToCloser:
		return e.transferToCloser(ctx, env, c)
	case MarkAsNurture:
		return e.markAsNurture(ctx, env, c)
	case EscalateToHuman:
		return e.escalate(ctx, env, c)
	case SendDemoContent:
		return e.sendDemoContent(ctx, env, c)
	case GenerateProposal:
		return e.generateProposal(ctx, env, c)
	case CreatePaymentLink:
		return e.createPaymentLink(ctx, env, c)
	case ScheduleDemoCall:
		return e.scheduleDemoCall(ctx, env, c)
	case UpdateStage:
		return e.updateStage(ctx, env, c)
	case CompleteStep:
		return e.completeStep(ctx, env, c)
	case SendTutorial:
		return e.sendTutorial(ctx, env, c)
	case CheckProgress:
		return e.checkProgress(ctx, env)
	case CheckUsage:
		return e.checkUsage(ctx, env)
	case SendTip:
		return e.sendTip(ctx, env, c)
	case OfferUpgrade:
		return e.offerUpgrade(ctx, env, c)
	case CollectNPS:
		return e.collectNPS(ctx, env, c)
	default:
		return outcome{}, fmt.Errorf("%w: %T", ErrUnknownTool, call)
	}
}

func (e *Executor) audit(ctx context.Context, env Env, tool, summary string) {
	if err := e.leads.AppendAudit(ctx, env.Lead.ID, env.Lead.Product, string(env.Agent), tool, summary); err != nil {
		e.log.Warn("Failed to store tool audit", "tool", tool, "lead_id", env.Lead.ID, "error", err)
	}
}

// errorMessage turns an error into text the LLM can act on.
func errorMessage(err error) string {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	if errors.Is(err, errSendFailed) {
		return "Não foi possível enviar a mensagem pelo WhatsApp."
	}
	return err.Error()
}

// config returns the product configuration of the env's lead.
func config(env Env) (*product.Config, error) {
	return product.Get(env.Lead.Product)
}

// sendText delivers text to the lead and stores it as an outbound message so
// the agent sees it in later turns.
func (e *Executor) sendText(ctx context.Context, env Env, tool, text string) error {
	if !e.sender.Send(ctx, env.Lead.Phone, text, env.Lead.Product) {
		return errSendFailed
	}
	e.record(ctx, env, tool, text)
	return nil
}

func (e *Executor) sendMedia(ctx context.Context, env Env, tool string, media whatsapp.Media) error {
	if !e.sender.SendMedia(ctx, env.Lead.Phone, media, env.Lead.Product) {
		return errSendFailed
	}
	e.record(ctx, env, tool, media.Caption)
	return nil
}

func (e *Executor) record(ctx context.Context, env Env, tool, text string) {
	_, err := e.leads.AppendMessage(ctx, leads.Message{
		LeadID:      env.Lead.ID,
		Product:     env.Lead.Product,
		Direction:   conversation.DirectionOutbound,
		Content:     text,
		Agent:       string(env.Agent),
		ToolsCalled: []string{tool},
	})
	if err != nil {
		e.log.Warn("Failed to store tool message", "tool", tool, "lead_id", env.Lead.ID, "error", err)
	}
}
