package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jordanlanch/salesagent/ent"
	"github.com/jordanlanch/salesagent/pkg/backup"
	"github.com/jordanlanch/salesagent/pkg/cache"
	"github.com/jordanlanch/salesagent/pkg/leads"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/processor"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/scraper"
	"github.com/jordanlanch/salesagent/pkg/testdata"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday 12:00 in Sao Paulo.
var testNow = time.Date(2026, 5, 11, 15, 0, 0, 0, time.UTC)

type fakeProcessor struct {
	mu  sync.Mutex
	in  []processor.Inbound
	err error
}

func (p *fakeProcessor) Process(_ context.Context, in processor.Inbound) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.in = append(p.in, in)
	return p.err
}

type fakeScraper struct{ lines []product.Line }

func (s *fakeScraper) Run(_ context.Context, line product.Line, _ []string) (*scraper.Result, error) {
	s.lines = append(s.lines, line)
	return &scraper.Result{Product: line, Total: 4, New: 2, Errors: 1}, nil
}

type fakeBackup struct{}

func (fakeBackup) Run(_ context.Context, _ time.Time) (*backup.Result, error) {
	return &backup.Result{Leads: 3, Conversations: 7}, nil
}

type fixture struct {
	client *ent.Client
	store  *leads.Service
	sender *testdata.Sender
	proc   *fakeProcessor
	runner *Runner
}

func setup(t *testing.T, deps ...func(*Deps)) *fixture {
	t.Helper()
	client := testdata.OpenDB(t)
	f := &fixture{
		client: client,
		store:  leads.NewService(client, nil, logger.Nop(), nil),
		sender: &testdata.Sender{},
		proc:   &fakeProcessor{},
	}
	d := Deps{Leads: f.store, Processor: f.proc, Sender: f.sender, Log: logger.Nop()}
	for _, fn := range deps {
		fn(&d)
	}
	f.runner = NewRunner(d).WithPause(0).WithClock(func() time.Time { return testNow })
	return f
}

func (f *fixture) reload(t *testing.T, id int) *ent.Lead {
	t.Helper()
	l, err := f.store.Get(context.Background(), id)
	require.NoError(t, err)
	return l
}

func TestRun_UnknownJob(t *testing.T) {
	f := setup(t)
	_, err := f.runner.Run(context.Background(), "reindex", Options{})
	assert.ErrorIs(t, err, ErrUnknownJob)
}

func TestOutbound_ContactsDueScrapedLeads(t *testing.T) {
	f := setup(t)
	due := testdata.NewLead(t, f.client,
		testdata.WithStage(pipeline.StageScraped),
		testdata.WithNextFollowup(testNow.Add(-time.Hour)))
	later := testdata.NewLead(t, f.client,
		testdata.WithStage(pipeline.StageScraped),
		testdata.WithNextFollowup(testNow.Add(time.Hour)))

	rep, err := f.runner.Run(context.Background(), JobOutbound, Options{})
	require.NoError(t, err)
	assert.Equal(t, JobOutbound, rep.Job)
	assert.Equal(t, 1, rep.Total)
	assert.Equal(t, 1, rep.Processed)

	require.Len(t, f.sender.Messages(), 1)
	cfg := product.MustGet(product.Occhiale)
	assert.Equal(t, due.Phone, f.sender.Last().Phone)
	assert.Equal(t, cfg.FirstContactMessage(due.CompanyName), f.sender.Last().Content)

	got := f.reload(t, due.ID)
	assert.Equal(t, pipeline.StageContacted, got.Stage)
	assert.Equal(t, pipeline.RoleHunter, got.AssignedAgent)
	assert.Zero(t, got.FollowupCount)
	require.NotNil(t, got.NextFollowupAt)
	assert.True(t, got.NextFollowupAt.Equal(testNow.Add(24*time.Hour)))

	history, err := f.store.History(context.Background(), due.ID, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "hunter", history[0].Agent)

	assert.Equal(t, pipeline.StageScraped, f.reload(t, later.ID).Stage)
}

func TestOutbound_UndeliveredStaysScraped(t *testing.T) {
	f := setup(t)
	f.sender.Fail = true
	l := testdata.NewLead(t, f.client,
		testdata.WithStage(pipeline.StageScraped),
		testdata.WithNextFollowup(testNow.Add(-time.Hour)))

	rep, err := f.runner.Run(context.Background(), JobOutbound, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Failed)
	assert.Equal(t, pipeline.StageScraped, f.reload(t, l.ID).Stage)
}

func TestFollowup_RunsSyntheticTurns(t *testing.T) {
	f := setup(t)
	due := testdata.NewLead(t, f.client,
		testdata.WithStage(pipeline.StageQualifying),
		testdata.WithNextFollowup(testNow.Add(-2*time.Hour)),
		testdata.WithFollowupCount(1))
	exhausted := testdata.NewLead(t, f.client,
		testdata.WithStage(pipeline.StageContacted),
		testdata.WithNextFollowup(testNow.Add(-2*time.Hour)),
		testdata.WithFollowupCount(3))
	negotiating := testdata.NewLead(t, f.client,
		testdata.WithStage(pipeline.StageNegotiating),
		testdata.WithNextFollowup(testNow.Add(-2*time.Hour)))

	rep, err := f.runner.Run(context.Background(), JobFollowup, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Processed)

	require.Len(t, f.proc.in, 1)
	in := f.proc.in[0]
	assert.True(t, in.Synthetic)
	assert.Equal(t, due.Phone, in.Phone)
	assert.Equal(t, "[FOLLOW-UP #2] Retomando contato automaticamente.", in.Text)

	got := f.reload(t, due.ID)
	assert.Equal(t, 2, got.FollowupCount)
	assert.True(t, got.NextFollowupAt.Equal(testNow.Add(24*time.Hour)))

	assert.Equal(t, 3, f.reload(t, exhausted.ID).FollowupCount)
	assert.Zero(t, f.reload(t, negotiating.ID).FollowupCount)
}

func TestFollowup_ProcessorErrorCounted(t *testing.T) {
	f := setup(t)
	f.proc.err = errors.New("llm down")
	l := testdata.NewLead(t, f.client,
		testdata.WithStage(pipeline.StageContacted),
		testdata.WithNextFollowup(testNow.Add(-time.Hour)))

	rep, err := f.runner.Run(context.Background(), JobFollowup, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Failed)
	assert.Zero(t, f.reload(t, l.ID).FollowupCount)
}

func TestNurture_SendsDripAndClosesExhausted(t *testing.T) {
	f := setup(t)
	cfg := product.MustGet(product.Occhiale)
	fresh := testdata.NewLead(t, f.client,
		testdata.WithStage(pipeline.StageNurturing),
		testdata.WithNextFollowup(testNow.Add(-time.Hour)))
	done := testdata.NewLead(t, f.client,
		testdata.WithStage(pipeline.StageNurturing),
		testdata.WithNextFollowup(testNow.Add(-time.Hour)),
		testdata.WithMetadata(models.LeadMetadata{
			Version: models.MetadataVersion,
			Nurture: &models.NurtureState{Index: len(cfg.NurtureDrip), StartedAt: testNow.AddDate(0, 0, -15)},
		}))

	rep, err := f.runner.Run(context.Background(), JobNurture, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Processed)
	assert.Equal(t, 1, rep.Details["completed"])

	require.Len(t, f.sender.Messages(), 1)
	assert.Equal(t, cfg.NurtureDrip[0], f.sender.Last().Content)

	got := f.reload(t, fresh.ID)
	require.NotNil(t, got.Metadata.Nurture)
	assert.Equal(t, 1, got.Metadata.Nurture.Index)
	assert.True(t, got.NextFollowupAt.Equal(testNow.Add(72*time.Hour)))

	lost := f.reload(t, done.ID)
	assert.Equal(t, pipeline.StageLost, lost.Stage)
	assert.Equal(t, "Nurture campaign completed without response", lost.LostReason)
	assert.Nil(t, lost.NextFollowupAt)
}

func TestCustomerSuccess_ChurnAndNPS(t *testing.T) {
	f := setup(t)
	recentSurvey := testNow.AddDate(0, 0, -10)
	silent := testdata.NewLead(t, f.client,
		testdata.WithStage(pipeline.StageActive),
		testdata.WithLastContact(testNow.AddDate(0, 0, -40)))
	surveyed := testdata.NewLead(t, f.client,
		testdata.WithStage(pipeline.StageActive),
		testdata.WithLastContact(testNow.AddDate(0, 0, -2)),
		testdata.WithMetadata(models.LeadMetadata{
			Version: models.MetadataVersion,
			NPS:     models.NpsHistory{LastSurveyAt: &recentSurvey},
		}))

	rep, err := f.runner.Run(context.Background(), JobCS, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Details["churn_prevention"])
	assert.Equal(t, 1, rep.Details["nps_sent"])
	assert.Equal(t, 2, rep.Processed)

	msgs := f.sender.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, silent.Phone, msgs[0].Phone)
	assert.Contains(t, msgs[0].Content, "40 dias")
	assert.Equal(t, silent.Phone, msgs[1].Phone)
	assert.Contains(t, msgs[1].Content, "0 a 10")

	got := f.reload(t, silent.ID)
	require.NotNil(t, got.Metadata.Success)
	require.NotNil(t, got.Metadata.Success.LastChurnPingAt)
	require.NotNil(t, got.Metadata.NPS.LastSurveyAt)
	assert.True(t, got.LastContactAt.Equal(testNow))

	assert.True(t, f.reload(t, surveyed.ID).Metadata.NPS.LastSurveyAt.Equal(recentSurvey))
}

func TestScrape_AllLinesOrOne(t *testing.T) {
	s := &fakeScraper{}
	f := setup(t, func(d *Deps) { d.Scraper = s })

	rep, err := f.runner.Run(context.Background(), JobScraper, Options{})
	require.NoError(t, err)
	assert.Equal(t, []product.Line{product.Occhiale, product.Ekkle}, s.lines)
	assert.Equal(t, 8, rep.Total)
	assert.Equal(t, 4, rep.Processed)
	assert.Equal(t, 2, rep.Failed)

	s.lines = nil
	_, err = f.runner.Run(context.Background(), JobScraper, Options{Product: "ekkle"})
	require.NoError(t, err)
	assert.Equal(t, []product.Line{product.Ekkle}, s.lines)

	_, err = f.runner.Run(context.Background(), JobScraper, Options{Product: "nope"})
	assert.Error(t, err)
}

func TestBackupAndMetrics(t *testing.T) {
	f := setup(t, func(d *Deps) { d.Backup = fakeBackup{} })

	rep, err := f.runner.Run(context.Background(), JobBackup, Options{})
	require.NoError(t, err)
	assert.Equal(t, 10, rep.Processed)

	_, err = f.runner.Run(context.Background(), JobMetrics, Options{})
	assert.Error(t, err)
}

func TestRun_LockRefusesConcurrentRun(t *testing.T) {
	mr := miniredis.RunT(t)
	c := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { c.Close() })
	f := setup(t, func(d *Deps) { d.Cache = c })
	ctx := context.Background()

	acquired, err := c.Acquire(ctx, "job:outbound", time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)

	_, err = f.runner.Run(ctx, JobOutbound, Options{})
	assert.ErrorIs(t, err, ErrJobRunning)

	require.NoError(t, c.Delete(ctx, "job:outbound"))
	_, err = f.runner.Run(ctx, JobOutbound, Options{})
	require.NoError(t, err)
	assert.False(t, mr.Exists("job:outbound"))
}
