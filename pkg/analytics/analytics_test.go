package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jordanlanch/salesagent/ent"
	"github.com/jordanlanch/salesagent/ent/conversation"
	"github.com/jordanlanch/salesagent/pkg/cache"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) (*Service, *ent.Client) {
	t.Helper()
	client := testdata.OpenDB(t)
	return NewService(client, nil, logger.Nop(), nil), client
}

func addMessage(t *testing.T, client *ent.Client, l *ent.Lead, dir conversation.Direction, kind conversation.Kind, tools []string, cost float64) {
	t.Helper()
	_, err := client.Conversation.Create().
		SetLeadID(l.ID).
		SetProduct(l.Product).
		SetDirection(dir).
		SetKind(kind).
		SetContent("x").
		SetAgent("hunter").
		SetToolsCalled(tools).
		SetCostCents(cost).
		Save(context.Background())
	require.NoError(t, err)
}

func TestAdd_UpsertsDailyRow(t *testing.T) {
	svc, client := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, product.Occhiale, models.MetricDelta{LeadsCreated: 1}))
	require.NoError(t, svc.Add(ctx, product.Occhiale, models.MetricDelta{MessagesSent: 2, AICostCents: 0.5}))
	require.NoError(t, svc.Add(ctx, product.Occhiale, models.MetricDelta{DealsWon: 1, RevenueCents: 19700}))
	require.NoError(t, svc.Add(ctx, product.Ekkle, models.MetricDelta{LeadsCreated: 3}))

	rows, err := client.SalesMetric.Query().All(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	daily, err := svc.Daily(ctx, "occhiale", 7)
	require.NoError(t, err)
	require.Len(t, daily, 1)
	assert.Equal(t, 1, daily[0].LeadsCreated)
	assert.Equal(t, 2, daily[0].MessagesSent)
	assert.Equal(t, 1, daily[0].DealsWon)
	assert.Equal(t, 19700, daily[0].RevenueCents)
	assert.InDelta(t, 0.5, daily[0].AICostCents, 1e-9)
}

func TestRollup_RecomputesFromTables(t *testing.T) {
	svc, client := setupService(t)
	ctx := context.Background()

	now := time.Now()
	amount := 39700
	won := testdata.NewLead(t, client, testdata.WithStage(pipeline.StageWon))
	_, err := won.Update().SetWonAt(now).SetWonAmountCents(amount).Save(ctx)
	require.NoError(t, err)
	testdata.NewLead(t, client, testdata.WithProduct(product.Ekkle))

	addMessage(t, client, won, conversation.DirectionInbound, conversation.KindMessage, nil, 0)
	addMessage(t, client, won, conversation.DirectionOutbound, conversation.KindMessage, nil, 0.25)
	addMessage(t, client, won, conversation.DirectionOutbound, conversation.KindAudit, []string{EscalationTool}, 0)

	// Stale incremental counts are replaced.
	require.NoError(t, svc.Add(ctx, product.Occhiale, models.MetricDelta{MessagesSent: 40}))

	out, err := svc.Rollup(ctx, now)
	require.NoError(t, err)
	require.Len(t, out, 2)

	occ := out[0]
	assert.Equal(t, "occhiale", occ.Product)
	assert.Equal(t, 1, occ.LeadsCreated)
	assert.Equal(t, 1, occ.MessagesSent)
	assert.Equal(t, 1, occ.DealsWon)
	assert.Equal(t, 39700, occ.RevenueCents)
	assert.Equal(t, 1, occ.Escalations)
	assert.InDelta(t, 0.25, occ.AICostCents, 1e-9)

	daily, err := svc.Daily(ctx, "occhiale", 1)
	require.NoError(t, err)
	require.Len(t, daily, 1)
	assert.Equal(t, 1, daily[0].MessagesSent)
}

func TestDashboardAndFunnel(t *testing.T) {
	svc, client := setupService(t)
	ctx := context.Background()

	for _, st := range []pipeline.Stage{pipeline.StageNew, pipeline.StageQualifying, pipeline.StageActive, pipeline.StageChurned, pipeline.StageLost} {
		testdata.NewLead(t, client, testdata.WithStage(st))
	}
	testdata.NewLead(t, client, testdata.WithMetadata(models.LeadMetadata{
		Escalation: &models.EscalationState{Reason: "angry", NeedsAttention: true},
	}))

	m, err := svc.Dashboard(ctx, "occhiale")
	require.NoError(t, err)
	assert.Equal(t, 6, m.TotalLeads)
	assert.Equal(t, 6, m.NewLeadsToday)
	assert.Equal(t, 1, m.InQualification)
	assert.Equal(t, 1, m.DealsWon)
	assert.Equal(t, 1, m.DealsLost)
	assert.Equal(t, 1, m.ActiveCustomers)
	assert.Equal(t, 50.0, m.ChurnRate)
	assert.Equal(t, 16.67, m.ConversionRate)
	assert.Equal(t, 1, m.NeedsAttention)

	funnel, err := svc.Funnel(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 6, funnel.Total)
	assert.Len(t, funnel.Stages, len(pipeline.Stages()))
	assert.Equal(t, "scraped", funnel.Stages[0].Stage)
	assert.Equal(t, 2, funnel.Stages[1].Count, "two leads in new")
}

func TestDashboard_CachedInRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	c, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	defer c.Close()

	client := testdata.OpenDB(t)
	svc := NewService(client, c, logger.Nop(), nil)
	ctx := context.Background()

	testdata.NewLead(t, client)
	first, err := svc.Dashboard(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 1, first.TotalLeads)

	testdata.NewLead(t, client)
	cached, err := svc.Dashboard(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 1, cached.TotalLeads, "served from cache within the TTL")

	mr.FastForward(61 * time.Second)
	fresh, err := svc.Dashboard(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, fresh.TotalLeads)

	require.NoError(t, svc.InvalidateDashboard(ctx))
}

func TestConversationStats(t *testing.T) {
	svc, client := setupService(t)
	ctx := context.Background()
	l := testdata.NewLead(t, client)

	addMessage(t, client, l, conversation.DirectionInbound, conversation.KindMessage, nil, 0)
	addMessage(t, client, l, conversation.DirectionOutbound, conversation.KindMessage, nil, 0.3)
	addMessage(t, client, l, conversation.DirectionOutbound, conversation.KindAudit, []string{"qualify_lead"}, 0)

	stats, err := svc.ConversationStats(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Inbound)
	assert.Equal(t, 1, stats.Outbound)
	assert.Equal(t, 2, stats.Today)
	assert.Equal(t, 1, stats.ByAgent["hunter"])
}
