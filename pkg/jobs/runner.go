package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jordanlanch/salesagent/ent"
	"github.com/jordanlanch/salesagent/ent/conversation"
	"github.com/jordanlanch/salesagent/ent/lead"
	"github.com/jordanlanch/salesagent/pkg/backup"
	"github.com/jordanlanch/salesagent/pkg/cache"
	"github.com/jordanlanch/salesagent/pkg/leads"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/metrics"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/processor"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/scraper"
	"github.com/jordanlanch/salesagent/pkg/tools"
	"github.com/jordanlanch/salesagent/pkg/whatsapp"
)

// Job names accepted by Run and the cron endpoint.
const (
	JobOutbound = "outbound"
	JobFollowup = "followup"
	JobNurture  = "nurture"
	JobCS       = "cs"
	JobScraper  = "scraper"
	JobMetrics  = "metrics"
	JobBackup   = "backup"
)

const (
	// BatchSize bounds the leads one run touches.
	BatchSize = 20
	// DefaultPause separates follow-up turns, which send through the agent
	// instead of the outbound queue.
	DefaultPause = 3 * time.Second
	// DefaultTimeout bounds one job run.
	DefaultTimeout = 10 * time.Minute

	maxFollowups    = 3
	followupEvery   = 24 * time.Hour
	nurtureEvery    = 3 * 24 * time.Hour
	churnSilentDays = 14
	churnBatch      = 10
	npsEvery        = 30 * 24 * time.Hour
	npsBatch        = 5
	npsScan         = 50

	nurtureLostReason = "Nurture campaign completed without response"
)

// ErrUnknownJob is returned for names outside the job list.
var ErrUnknownJob = errors.New("unknown job")

// ErrJobRunning is returned when another run of the same job holds the lock.
var ErrJobRunning = errors.New("job already running")

// Names lists every job in scheduling order.
func Names() []string {
	return []string{JobOutbound, JobFollowup, JobNurture, JobCS, JobScraper, JobMetrics, JobBackup}
}

// Processor runs one conversation turn.
type Processor interface {
	Process(ctx context.Context, in processor.Inbound) error
}

// Scraper ingests places for a product line.
type Scraper interface {
	Run(ctx context.Context, line product.Line, cities []string) (*scraper.Result, error)
}

// Rollup recomputes the daily aggregate.
type Rollup interface {
	Rollup(ctx context.Context, t time.Time) ([]models.DailyMetric, error)
}

// Backup exports leads and conversations.
type Backup interface {
	Run(ctx context.Context, at time.Time) (*backup.Result, error)
}

// Options narrows a run. Only the scraper reads them.
type Options struct {
	Product string   `json:"product"`
	Cities  []string `json:"cities"`
}

// Report is the outcome of one run.
type Report struct {
	Job       string         `json:"job"`
	Processed int            `json:"processed"`
	Total     int            `json:"total"`
	Failed    int            `json:"failed"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// Runner executes the batch jobs against the lead store. Scraper, rollup,
// backup and cache are optional.
type Runner struct {
	leads     *leads.Service
	processor Processor
	sender    whatsapp.Sender
	scraper   Scraper
	rollup    Rollup
	backup    Backup
	cache     *cache.Client
	log       logger.Logger
	metrics   *metrics.Metrics
	pause     time.Duration
	now       func() time.Time
}

// Deps are the collaborators of a Runner.
type Deps struct {
	Leads     *leads.Service
	Processor Processor
	Sender    whatsapp.Sender
	Scraper   Scraper
	Rollup    Rollup
	Backup    Backup
	Cache     *cache.Client
	Log       logger.Logger
	Metrics   *metrics.Metrics
}

// NewRunner creates a runner.
func NewRunner(d Deps) *Runner {
	return &Runner{
		leads:     d.Leads,
		processor: d.Processor,
		sender:    d.Sender,
		scraper:   d.Scraper,
		rollup:    d.Rollup,
		backup:    d.Backup,
		cache:     d.Cache,
		log:       d.Log,
		metrics:   d.Metrics,
		pause:     DefaultPause,
		now:       time.Now,
	}
}

// WithPause overrides the delay between follow-up turns.
func (r *Runner) WithPause(d time.Duration) *Runner {
	r.pause = d
	return r
}

// WithClock replaces the time source. Used by tests.
func (r *Runner) WithClock(now func() time.Time) *Runner {
	r.now = now
	return r
}

// Run executes one job by name. When a cache is configured, concurrent runs
// of the same job across instances are refused.
func (r *Runner) Run(ctx context.Context, name string, opts Options) (rep *Report, err error) {
	run, ok := map[string]func(context.Context, Options) (*Report, error){
		JobOutbound: r.outbound,
		JobFollowup: r.followup,
		JobNurture:  r.nurture,
		JobCS:       r.customerSuccess,
		JobScraper:  r.scrape,
		JobMetrics:  r.dailyMetrics,
		JobBackup:   r.runBackup,
	}[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownJob, name)
	}

	if r.cache != nil {
		key := "job:" + name
		acquired, lockErr := r.cache.Acquire(ctx, key, DefaultTimeout)
		if lockErr != nil {
			r.log.Warn("Job lock unavailable, running unlocked", "job", name, "error", lockErr)
		} else if !acquired {
			return nil, ErrJobRunning
		} else {
			defer r.cache.Delete(context.WithoutCancel(ctx), key)
		}
	}

	start := time.Now()
	r.log.Info("🕐 Running job", "job", name)
	defer func() {
		r.metrics.RecordCronRun(name, time.Since(start), err == nil)
		if err != nil {
			r.log.Error("❌ Job failed", "job", name, "error", err)
			return
		}
		r.log.Info("✅ Job completed", "job", name, "processed", rep.Processed, "total", rep.Total,
			"failed", rep.Failed, "duration", time.Since(start))
	}()

	rep, err = run(ctx, opts)
	if rep != nil {
		rep.Job = name
		rep.Timestamp = r.now()
	}
	return rep, err
}

func (r *Runner) outbound(ctx context.Context, _ Options) (*Report, error) {
	now := r.now()
	due, err := r.leads.Due(ctx, []pipeline.Stage{pipeline.StageScraped}, now, BatchSize)
	if err != nil {
		return nil, err
	}

	rep := &Report{Total: len(due)}
	for _, l := range due {
		cfg, err := product.Get(l.Product)
		if err != nil {
			rep.Failed++
			continue
		}
		text := cfg.FirstContactMessage(l.CompanyName)
		if !r.sender.Send(ctx, l.Phone, text, l.Product) {
			r.log.Warn("First contact not delivered", "lead_id", l.ID)
			rep.Failed++
			continue
		}
		r.record(ctx, l, pipeline.RoleHunter, text)

		next := now.Add(followupEvery)
		if _, err := r.leads.Transition(ctx, l.ID, pipeline.StageContacted, func(_ *ent.Lead, u *ent.LeadUpdate) error {
			u.SetLastContactAt(now).
				SetNextFollowupAt(next).
				SetFollowupCount(0).
				SetAssignedAgent(pipeline.RoleHunter)
			return nil
		}); err != nil {
			r.log.Error("Failed to mark lead contacted", "lead_id", l.ID, "error", err)
			rep.Failed++
			continue
		}
		rep.Processed++
	}
	return rep, nil
}

func (r *Runner) followup(ctx context.Context, _ Options) (*Report, error) {
	now := r.now()
	due, err := r.leads.Client().Lead.Query().
		Where(
			lead.StageIn(pipeline.StageContacted, pipeline.StageQualifying, pipeline.StagePresenting),
			lead.NextFollowupAtNotNil(),
			lead.NextFollowupAtLT(now),
			lead.FollowupCountLT(maxFollowups),
		).
		Order(ent.Asc(lead.FieldNextFollowupAt)).
		Limit(BatchSize).
		All(ctx)
	if err != nil {
		return nil, err
	}

	rep := &Report{Total: len(due)}
	for i, l := range due {
		if i > 0 {
			if err := sleep(ctx, r.pause); err != nil {
				return rep, err
			}
		}
		n := l.FollowupCount + 1
		err := r.processor.Process(ctx, processor.Inbound{
			Phone:     l.Phone,
			Text:      fmt.Sprintf("[FOLLOW-UP #%d] Retomando contato automaticamente.", n),
			Line:      l.Product,
			Synthetic: true,
		})
		if err != nil {
			r.log.Warn("Follow-up turn failed", "lead_id", l.ID, "error", err)
			rep.Failed++
			continue
		}
		next := r.now().Add(followupEvery)
		if _, err := r.leads.Mutate(ctx, l.ID, func(current *ent.Lead, u *ent.LeadUpdate) error {
			u.SetFollowupCount(current.FollowupCount + 1).SetNextFollowupAt(next)
			return nil
		}); err != nil {
			rep.Failed++
			continue
		}
		rep.Processed++
	}
	return rep, nil
}

func (r *Runner) nurture(ctx context.Context, _ Options) (*Report, error) {
	now := r.now()
	due, err := r.leads.Client().Lead.Query().
		Where(
			lead.StageEQ(pipeline.StageNurturing),
			lead.NextFollowupAtNotNil(),
			lead.NextFollowupAtLT(now),
		).
		Order(ent.Asc(lead.FieldNextFollowupAt)).
		Limit(BatchSize).
		All(ctx)
	if err != nil {
		return nil, err
	}

	rep := &Report{Total: len(due)}
	completed := 0
	for _, l := range due {
		cfg, err := product.Get(l.Product)
		if err != nil {
			rep.Failed++
			continue
		}
		index := 0
		if l.Metadata.Nurture != nil {
			index = l.Metadata.Nurture.Index
		}

		if index >= len(cfg.NurtureDrip) {
			if _, err := r.leads.Transition(ctx, l.ID, pipeline.StageLost, func(_ *ent.Lead, u *ent.LeadUpdate) error {
				u.SetLostAt(now).SetLostReason(nurtureLostReason).ClearNextFollowupAt()
				return nil
			}); err != nil {
				rep.Failed++
				continue
			}
			completed++
			rep.Processed++
			continue
		}

		text := cfg.NurtureDrip[index]
		if !r.sender.Send(ctx, l.Phone, text, l.Product) {
			rep.Failed++
			continue
		}
		r.record(ctx, l, pipeline.RoleHunter, text)

		next := now.Add(nurtureEvery)
		if _, err := r.leads.Mutate(ctx, l.ID, func(current *ent.Lead, u *ent.LeadUpdate) error {
			md := current.Metadata
			md.Normalize()
			if md.Nurture == nil {
				md.Nurture = &models.NurtureState{StartedAt: now}
			}
			md.Nurture.Index = index + 1
			md.Nurture.LastSentAt = &now
			u.SetMetadata(md).SetLastContactAt(now).SetNextFollowupAt(next)
			return nil
		}); err != nil {
			rep.Failed++
			continue
		}
		rep.Processed++
	}
	rep.Details = map[string]any{"completed": completed}
	return rep, nil
}

func (r *Runner) customerSuccess(ctx context.Context, _ Options) (*Report, error) {
	now := r.now()
	rep := &Report{Details: map[string]any{}}

	silent, err := r.leads.Client().Lead.Query().
		Where(
			lead.StageEQ(pipeline.StageActive),
			lead.LastContactAtNotNil(),
			lead.LastContactAtLT(now.AddDate(0, 0, -churnSilentDays)),
		).
		Order(ent.Asc(lead.FieldLastContactAt)).
		Limit(churnBatch).
		All(ctx)
	if err != nil {
		return nil, err
	}
	churn := 0
	for _, l := range silent {
		rep.Total++
		days := tools.DaysSince(l.LastContactAt, now)
		text := churnText(l, days)
		if !r.sender.Send(ctx, l.Phone, text, l.Product) {
			rep.Failed++
			continue
		}
		r.record(ctx, l, pipeline.RoleCS, text)
		if _, err := r.leads.Mutate(ctx, l.ID, func(current *ent.Lead, u *ent.LeadUpdate) error {
			md := current.Metadata
			md.Normalize()
			md.EnsureSuccess().LastChurnPingAt = &now
			u.SetMetadata(md).SetLastContactAt(now)
			return nil
		}); err != nil {
			rep.Failed++
			continue
		}
		churn++
		rep.Processed++
	}

	customers, err := r.leads.Client().Lead.Query().
		Where(lead.StageEQ(pipeline.StageActive)).
		Order(ent.Asc(lead.FieldID)).
		Limit(npsScan).
		All(ctx)
	if err != nil {
		return rep, err
	}
	surveys := 0
	for _, l := range customers {
		if surveys >= npsBatch {
			break
		}
		if last, ok := l.Metadata.NPS.LastActivity(); ok && now.Sub(last) < npsEvery {
			continue
		}
		rep.Total++
		text := tools.SurveyText(l.Product, l.Name)
		if text == "" || !r.sender.Send(ctx, l.Phone, text, l.Product) {
			rep.Failed++
			continue
		}
		r.record(ctx, l, pipeline.RoleCS, text)
		if _, err := r.leads.Mutate(ctx, l.ID, func(current *ent.Lead, u *ent.LeadUpdate) error {
			md := current.Metadata
			md.Normalize()
			md.NPS.LastSurveyAt = &now
			u.SetMetadata(md)
			return nil
		}); err != nil {
			rep.Failed++
			continue
		}
		surveys++
		rep.Processed++
	}

	rep.Details["churn_prevention"] = churn
	rep.Details["nps_sent"] = surveys
	return rep, nil
}

func (r *Runner) scrape(ctx context.Context, opts Options) (*Report, error) {
	if r.scraper == nil {
		return nil, errors.New("scraper not configured")
	}
	lines := []product.Line{product.Occhiale, product.Ekkle}
	if opts.Product != "" {
		line, err := product.ParseLine(opts.Product)
		if err != nil {
			return nil, err
		}
		lines = []product.Line{line}
	}

	rep := &Report{Details: map[string]any{}}
	for _, line := range lines {
		res, err := r.scraper.Run(ctx, line, opts.Cities)
		if err != nil {
			return rep, err
		}
		rep.Total += res.Total
		rep.Processed += res.New
		rep.Failed += res.Errors
		rep.Details[string(line)] = res
	}
	return rep, nil
}

func (r *Runner) dailyMetrics(ctx context.Context, _ Options) (*Report, error) {
	if r.rollup == nil {
		return nil, errors.New("metrics rollup not configured")
	}
	rows, err := r.rollup.Rollup(ctx, r.now())
	if err != nil {
		return nil, err
	}
	return &Report{Total: len(rows), Processed: len(rows), Details: map[string]any{"rows": rows}}, nil
}

func (r *Runner) runBackup(ctx context.Context, _ Options) (*Report, error) {
	if r.backup == nil {
		return nil, errors.New("backup not configured")
	}
	res, err := r.backup.Run(ctx, r.now())
	if err != nil {
		return nil, err
	}
	return &Report{Total: res.Leads + res.Conversations, Processed: res.Leads + res.Conversations, Details: map[string]any{"backup": res}}, nil
}

// record stores a templated send as an outbound message row.
func (r *Runner) record(ctx context.Context, l *ent.Lead, agent pipeline.Role, text string) {
	if _, err := r.leads.AppendMessage(ctx, leads.Message{
		LeadID:    l.ID,
		Product:   l.Product,
		Direction: conversation.DirectionOutbound,
		Content:   text,
		Agent:     string(agent),
	}); err != nil {
		r.log.Warn("Failed to store templated message", "lead_id", l.ID, "error", err)
	}
	r.metrics.RecordMessage(string(l.Product), "outbound", true)
}

func churnText(l *ent.Lead, days int) string {
	high := tools.ChurnRisk(days) == tools.RiskHigh
	name := l.Name
	switch {
	case l.Product == product.Ekkle && high:
		return fmt.Sprintf("Pastor(a) %s! 🙏 Faz um tempinho que não nos falamos. Como está a %s?\n\n"+
			"Notei que faz %d dias sem acesso ao EKKLE. Posso ajudar com alguma dificuldade? Estou aqui! ⚡",
			name, orDefault(l.CompanyName, "igreja"), days)
	case l.Product == product.Ekkle:
		return fmt.Sprintf("Oi, pastor(a) %s! 🙏 Passando com uma dica:\n\n"+
			"💡 Lembre de pedir para os líderes preencherem o relatório de célula toda semana. "+
			"Os dados ajudam a identificar células prontas para multiplicar!\n\nPrecisa de algo? Estou aqui! ⚡", name)
	case high:
		return fmt.Sprintf("Olá, %s! 👋 Faz um tempinho que não nos falamos. Está tudo bem com a %s?\n\n"+
			"Notei que faz %d dias que você não acessa o painel. Posso te ajudar com alguma coisa? Estou aqui para isso! 😊",
			orDefault(name, "amigo(a)"), orDefault(l.CompanyName, "sua ótica"), days)
	default:
		return fmt.Sprintf("Oi, %s! 😊 Passando para dar uma dica rápida:\n\n"+
			"💡 Você sabia que pode ver quais óculos seus clientes mais olham no site? "+
			"Vá em Relatórios > Produtos Mais Vistos. Isso ajuda a montar a vitrine!\n\nPrecisa de algo? Estou aqui!",
			orDefault(name, "amigo(a)"))
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
