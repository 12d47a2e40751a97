package leads

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jordanlanch/salesagent/ent"
	"github.com/jordanlanch/salesagent/ent/conversation"
	"github.com/jordanlanch/salesagent/ent/lead"
	"github.com/jordanlanch/salesagent/pkg/domain"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter struct {
	mu     sync.Mutex
	deltas map[product.Line]models.MetricDelta
}

func (f *fakeCounter) Add(_ context.Context, line product.Line, d models.MetricDelta) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deltas == nil {
		f.deltas = map[product.Line]models.MetricDelta{}
	}
	cur := f.deltas[line]
	cur.LeadsCreated += d.LeadsCreated
	cur.MessagesSent += d.MessagesSent
	cur.AICostCents += d.AICostCents
	f.deltas[line] = cur
	return nil
}

func setupService(t *testing.T) (*Service, *ent.Client, *fakeCounter) {
	t.Helper()
	client := testdata.OpenDB(t)
	counter := &fakeCounter{}
	return NewService(client, counter, logger.Nop(), nil), client, counter
}

func TestFindOrCreate_UniquePerPhoneAndProduct(t *testing.T) {
	svc, client, counter := setupService(t)
	ctx := context.Background()

	first, created, err := svc.FindOrCreate(ctx, "5511999990000", product.Occhiale, NewLead{Name: "Maria"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, pipeline.StageNew, first.Stage)
	assert.Equal(t, pipeline.RoleHunter, first.AssignedAgent)
	assert.Equal(t, 0, first.Score)
	assert.Equal(t, lead.SourceInboundWhatsapp, first.Source)

	for i := 0; i < 3; i++ {
		again, created, err := svc.FindOrCreate(ctx, "5511999990000", product.Occhiale, NewLead{Name: "Other"})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, again.ID)
		assert.Equal(t, "Maria", again.Name)
	}

	other, created, err := svc.FindOrCreate(ctx, "5511999990000", product.Ekkle, NewLead{})
	require.NoError(t, err)
	assert.True(t, created, "the same phone is a distinct lead on another product")
	assert.NotEqual(t, first.ID, other.ID)

	n, err := client.Lead.Query().Where(lead.Phone("5511999990000")).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, counter.deltas[product.Occhiale].LeadsCreated)
}

func TestCreate_DuplicateIsConflict(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "5511999990000", product.Occhiale, NewLead{Source: lead.SourceManual})
	require.NoError(t, err)

	_, err = svc.Create(ctx, "5511999990000", product.Occhiale, NewLead{Source: lead.SourceManual})
	assert.True(t, domain.IsConflict(err))
}

func TestMutate_IncrementsVersion(t *testing.T) {
	svc, client, _ := setupService(t)
	ctx := context.Background()
	l := testdata.NewLead(t, client)

	updated, err := svc.Mutate(ctx, l.ID, func(_ *ent.Lead, u *ent.LeadUpdate) error {
		u.SetScore(42)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, updated.Score)
	assert.Equal(t, l.Version+1, updated.Version)
}

func TestMutate_RetriesOnVersionConflict(t *testing.T) {
	svc, client, _ := setupService(t)
	ctx := context.Background()
	l := testdata.NewLead(t, client)

	calls := 0
	updated, err := svc.Mutate(ctx, l.ID, func(current *ent.Lead, u *ent.LeadUpdate) error {
		calls++
		if calls == 1 {
			// A concurrent writer bumps the version between read and write.
			_, err := client.Lead.UpdateOneID(l.ID).AddVersion(1).SetCity("Campinas").Save(ctx)
			require.NoError(t, err)
		}
		u.AddFollowupCount(1)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, updated.FollowupCount)
	assert.Equal(t, "Campinas", updated.City, "the concurrent write is preserved")
	assert.Equal(t, l.Version+2, updated.Version)
}

func TestMutate_GivesUpAfterMaxAttempts(t *testing.T) {
	svc, client, _ := setupService(t)
	ctx := context.Background()
	l := testdata.NewLead(t, client)

	calls := 0
	_, err := svc.Mutate(ctx, l.ID, func(current *ent.Lead, u *ent.LeadUpdate) error {
		calls++
		_, err := client.Lead.UpdateOneID(l.ID).AddVersion(1).Save(ctx)
		require.NoError(t, err)
		u.SetScore(99)
		return nil
	})

	assert.True(t, domain.IsConflict(err))
	assert.Equal(t, MaxMutateAttempts, calls)

	fresh, err := svc.Get(ctx, l.ID)
	require.NoError(t, err)
	assert.NotEqual(t, 99, fresh.Score)
}

func TestMutate_MissingLead(t *testing.T) {
	svc, _, _ := setupService(t)
	_, err := svc.Mutate(context.Background(), 12345, func(*ent.Lead, *ent.LeadUpdate) error { return nil })
	assert.True(t, domain.IsNotFound(err))
}

func TestTransition(t *testing.T) {
	svc, client, _ := setupService(t)
	ctx := context.Background()

	l := testdata.NewLead(t, client, testdata.WithStage(pipeline.StageNegotiating))
	won, err := svc.Transition(ctx, l.ID, pipeline.StageWon, func(_ *ent.Lead, u *ent.LeadUpdate) error {
		u.SetAssignedAgent(pipeline.RoleOnboarding)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, pipeline.StageWon, won.Stage)
	assert.Equal(t, pipeline.RoleOnboarding, won.AssignedAgent)

	lost := testdata.NewLead(t, client, testdata.WithStage(pipeline.StageLost))
	_, err = svc.Transition(ctx, lost.ID, pipeline.StageQualified, nil)
	assert.True(t, domain.IsTransition(err))
}

func TestHistory_ExcludesAuditAndKeepsOrder(t *testing.T) {
	svc, client, _ := setupService(t)
	ctx := context.Background()
	l := testdata.NewLead(t, client)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	tick := 0
	svc.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	for i, content := range []string{"oi", "olá, tudo bem?", "quanto custa?", "R$ 197"} {
		dir := conversation.DirectionInbound
		if i%2 == 1 {
			dir = conversation.DirectionOutbound
		}
		_, err := svc.AppendMessage(ctx, Message{LeadID: l.ID, Product: l.Product, Direction: dir, Content: content, Agent: "hunter"})
		require.NoError(t, err)
	}
	require.NoError(t, svc.AppendAudit(ctx, l.ID, l.Product, "hunter", "qualify_lead", "score 55"))

	history, err := svc.History(ctx, l.ID, 3)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "olá, tudo bem?", history[0].Content)
	assert.Equal(t, "R$ 197", history[2].Content)

	timeline, err := svc.Timeline(ctx, l.ID, 10)
	require.NoError(t, err)
	require.Len(t, timeline, 5)
	assert.Equal(t, conversation.KindAudit, timeline[0].Kind)
	assert.Equal(t, []string{"qualify_lead"}, timeline[0].ToolsCalled)
}

func TestDue(t *testing.T) {
	svc, client, _ := setupService(t)
	ctx := context.Background()
	now := time.Now()

	due := testdata.NewLead(t, client, testdata.WithStage(pipeline.StageScraped), testdata.WithNextFollowup(now.Add(-time.Hour)))
	testdata.NewLead(t, client, testdata.WithStage(pipeline.StageScraped), testdata.WithNextFollowup(now.Add(time.Hour)))
	testdata.NewLead(t, client, testdata.WithStage(pipeline.StageNurturing), testdata.WithNextFollowup(now.Add(-time.Hour)))

	rows, err := svc.Due(ctx, []pipeline.Stage{pipeline.StageScraped}, now, 20)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, due.ID, rows[0].ID)
}
