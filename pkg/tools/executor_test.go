package tools

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jordanlanch/salesagent/ent"
	"github.com/jordanlanch/salesagent/ent/conversation"
	"github.com/jordanlanch/salesagent/pkg/domain"
	"github.com/jordanlanch/salesagent/pkg/leads"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/testdata"
	"github.com/jordanlanch/salesagent/pkg/whatsapp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

type fixture struct {
	client   *ent.Client
	store    *leads.Service
	sender   *testdata.Sender
	payments *testdata.Payments
	notifier *testdata.Notifier
	exec     *Executor
}

func setup(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		client:   testdata.OpenDB(t),
		sender:   &testdata.Sender{},
		payments: &testdata.Payments{},
		notifier: &testdata.Notifier{},
	}
	f.store = leads.NewService(f.client, nil, logger.Nop(), nil)
	f.exec = NewExecutor(f.store, f.sender, f.payments, f.notifier, logger.Nop(), nil).
		WithClock(func() time.Time { return testNow })
	return f
}

func (f *fixture) reload(t *testing.T, id int) *ent.Lead {
	t.Helper()
	l, err := f.client.Lead.Get(context.Background(), id)
	require.NoError(t, err)
	return l
}

func (f *fixture) audits(t *testing.T, id int) []*ent.Conversation {
	t.Helper()
	rows, err := f.client.Conversation.Query().
		Where(conversation.LeadID(id), conversation.KindEQ(conversation.KindAudit)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

func env(l *ent.Lead) Env {
	return Env{Lead: l, Agent: pipeline.AgentFor(l.Stage)}
}

func TestDecode(t *testing.T) {
	t.Run("valid call", func(t *testing.T) {
		call, err := Decode(NameQualifyLead, `{"company_size":"small","pain_points":["estoque"],"urgency":"now"}`)
		require.NoError(t, err)
		q, ok := call.(QualifyLead)
		require.True(t, ok)
		assert.Equal(t, []string{"estoque"}, q.PainPoints)
	})

	t.Run("unknown tool", func(t *testing.T) {
		_, err := Decode("launch_rockets", `{}`)
		assert.ErrorIs(t, err, ErrUnknownTool)
	})

	t.Run("enum violation", func(t *testing.T) {
		_, err := Decode(NameEscalateToHuman, `{"reason":"x","priority":"urgent"}`)
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
		assert.Contains(t, err.Error(), "priority")
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := Decode(NameSendTip, `{"tip_category":`)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("empty arguments", func(t *testing.T) {
		call, err := Decode(NameCheckProgress, "")
		require.NoError(t, err)
		assert.Equal(t, CheckProgress{}, call)
	})

	t.Run("nps score bounds", func(t *testing.T) {
		_, err := Decode(NameCollectNPS, `{"score":11}`)
		assert.Error(t, err)
		call, err := Decode(NameCollectNPS, `{"score":0}`)
		require.NoError(t, err)
		require.NotNil(t, call.(CollectNPS).Score)
	})
}

func TestForRole(t *testing.T) {
	assert.Len(t, ForRole(pipeline.RoleHunter), 4)
	assert.Len(t, ForRole(pipeline.RoleCloser), 6)
	assert.Len(t, ForRole(pipeline.RoleOnboarding), 4)
	assert.Len(t, ForRole(pipeline.RoleCS), 5)
	assert.Empty(t, ForRole(pipeline.RoleHuman))

	for name, def := range definitions {
		var s map[string]any
		require.NoError(t, json.Unmarshal(def.Parameters, &s), name)
		assert.Equal(t, "object", s["type"], name)
		_, ok := decoders[name]
		assert.True(t, ok, "definition %s has a decoder", name)
	}
}

func TestExecuteRaw_RejectsToolOfOtherRole(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageNew))

	res := f.exec.ExecuteRaw(context.Background(), env(l), NameGenerateProposal, `{"plan":"Pro"}`)
	assert.True(t, res.IsError)
	assert.Empty(t, f.sender.Messages())
}

func TestQualifyLead_AdvancesOneStepPerCall(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageNew))

	call := QualifyLead{
		CompanyName: "Ótica Central",
		CompanySize: "large",
		PainPoints:  []string{"sem site", "atendimento lento", "estoque"},
		Urgency:     "now",
	}
	res := f.exec.Execute(ctx, env(l), call)
	require.False(t, res.IsError, res.Content)
	assert.Contains(t, res.Content, "100/100")

	got := f.reload(t, l.ID)
	assert.Equal(t, pipeline.StageQualifying, got.Stage)
	assert.Equal(t, 100, got.Score)
	assert.Equal(t, "Ótica Central", got.CompanyName)
	require.NotNil(t, got.Metadata.Qualification)
	assert.Equal(t, "now", got.Metadata.Qualification.Urgency)

	res = f.exec.Execute(ctx, env(got), call)
	require.False(t, res.IsError, res.Content)
	got = f.reload(t, l.ID)
	assert.Equal(t, pipeline.StageQualified, got.Stage)
	assert.Equal(t, pipeline.RoleCloser, got.AssignedAgent)
	assert.Len(t, f.audits(t, l.ID), 2)
}

func TestQualifyLead_LowScoreKeepsStage(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageNew))

	res := f.exec.Execute(context.Background(), env(l), QualifyLead{CompanySize: "micro", Urgency: "researching"})
	require.False(t, res.IsError)
	got := f.reload(t, l.ID)
	assert.Equal(t, pipeline.StageNew, got.Stage)
	assert.Equal(t, 20, got.Score)
}

func TestTransferToCloser(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageQualifying))

	res := f.exec.Execute(context.Background(), env(l), TransferToCloser{Reason: "BANT completo", Summary: "quer loja online"})
	require.False(t, res.IsError, res.Content)

	got := f.reload(t, l.ID)
	assert.Equal(t, pipeline.StageQualified, got.Stage)
	assert.Equal(t, pipeline.RoleCloser, got.AssignedAgent)
	require.NotNil(t, got.Metadata.Handoff)
	assert.Equal(t, "quer loja online", got.Metadata.Handoff.Summary)

	audits := f.audits(t, l.ID)
	require.Len(t, audits, 1)
	assert.Equal(t, []string{NameTransferToCloser}, audits[0].ToolsCalled)
	assert.Contains(t, audits[0].Content, "TRANSFERÊNCIA")
}

func TestMarkAsNurture_DefaultDays(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageContacted), testdata.WithFollowupCount(2))

	res := f.exec.Execute(context.Background(), env(l), MarkAsNurture{Reason: "sem orçamento"})
	require.False(t, res.IsError, res.Content)

	got := f.reload(t, l.ID)
	assert.Equal(t, pipeline.StageNurturing, got.Stage)
	require.NotNil(t, got.NextFollowupAt)
	assert.WithinDuration(t, testNow.AddDate(0, 0, 30), *got.NextFollowupAt, time.Second)
	assert.Equal(t, 0, got.FollowupCount)
	require.NotNil(t, got.Metadata.Nurture)
	assert.Equal(t, 0, got.Metadata.Nurture.Index)
}

func TestEscalateToHuman(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StagePresenting))

	res := f.exec.Execute(context.Background(), env(l), EscalateToHuman{Reason: "pediu gerente", Priority: "high"})
	require.False(t, res.IsError)
	assert.Contains(t, res.Content, "2 horas")

	got := f.reload(t, l.ID)
	assert.Equal(t, pipeline.RoleHuman, got.AssignedAgent)
	assert.Equal(t, pipeline.StagePresenting, got.Stage)
	require.NotNil(t, got.Metadata.Escalation)
	assert.True(t, got.Metadata.Escalation.NeedsAttention)
	assert.Equal(t, "closer", got.Metadata.Escalation.PreviousAgent)

	require.Equal(t, 1, f.notifier.Count())
	assert.Equal(t, "high", f.notifier.Alerts[0].Priority)
	assert.Contains(t, f.audits(t, l.ID)[0].Content, "PRIORIDADE HIGH")
}

func TestGenerateProposal(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageQualified))

	res := f.exec.Execute(context.Background(), env(l), GenerateProposal{Plan: "essencial", DiscountPercent: 50})
	require.False(t, res.IsError, res.Content)
	// discount is capped at 20%: 197,00 - 39,40
	assert.Contains(t, res.Content, "R$ 157,60")
	assert.Contains(t, res.Content, "20%")

	sent := f.sender.Last()
	assert.Equal(t, l.Phone, sent.Phone)
	assert.Contains(t, sent.Content, "PROPOSTA COMERCIAL")
	assert.Contains(t, sent.Content, "Plano Essencial")

	got := f.reload(t, l.ID)
	assert.Equal(t, pipeline.StageNegotiating, got.Stage)
	require.NotNil(t, got.Metadata.Proposal)
	assert.Equal(t, 15760, got.Metadata.Proposal.AmountCents)

	msgs, err := f.store.History(context.Background(), l.ID, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1, "the proposal text is part of the conversation")
	assert.Equal(t, []string{NameGenerateProposal}, msgs[0].ToolsCalled)
}

func TestGenerateProposal_AnnualBilling(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StagePresenting))

	res := f.exec.Execute(context.Background(), env(l), GenerateProposal{Plan: "Pro", Billing: "annual"})
	require.False(t, res.IsError, res.Content)
	got := f.reload(t, l.ID)
	assert.Equal(t, 397000, got.Metadata.Proposal.AmountCents)
	assert.Contains(t, f.sender.Last().Content, "/ano")
}

func TestGenerateProposal_Errors(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	unknown := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageQualified))
	res := f.exec.Execute(ctx, env(unknown), GenerateProposal{Plan: "Platinum"})
	assert.True(t, res.IsError)
	assert.Contains(t, res.Content, "Essencial")

	won := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageWon))
	res = f.exec.Execute(ctx, Env{Lead: won, Agent: pipeline.RoleCloser}, GenerateProposal{Plan: "Pro"})
	assert.True(t, res.IsError, "won leads cannot move back to negotiating")
	assert.Empty(t, f.sender.Messages())
	assert.Equal(t, pipeline.StageWon, f.reload(t, won.ID).Stage)

	audits := f.audits(t, won.ID)
	require.Len(t, audits, 1)
	assert.Contains(t, audits[0].Content, "[ERRO]")
}

func TestCreatePaymentLink(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageNegotiating))

	res := f.exec.Execute(context.Background(), env(l), CreatePaymentLink{Plan: "pro", AmountCents: 39700})
	require.False(t, res.IsError, res.Content)

	require.Len(t, f.payments.Requests, 1)
	req := f.payments.Requests[0]
	assert.Equal(t, l.ID, req.LeadID)
	assert.Equal(t, "Pro", req.Plan)
	assert.Equal(t, l.Name, req.CustomerName)

	got := f.reload(t, l.ID)
	require.NotNil(t, got.Metadata.Payment)
	assert.Equal(t, "pending", got.Metadata.Payment.Status)
	assert.Contains(t, f.sender.Last().Content, got.Metadata.Payment.URL)
	assert.Contains(t, f.sender.Last().Content, "R$ 397,00")
}

func TestCreatePaymentLink_ProviderFailure(t *testing.T) {
	f := setup(t)
	f.payments.Fail = true
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageNegotiating))

	res := f.exec.Execute(context.Background(), env(l), CreatePaymentLink{Plan: "Pro", AmountCents: 39700})
	assert.True(t, res.IsError)
	assert.Empty(t, f.sender.Messages())
	assert.Nil(t, f.reload(t, l.ID).Metadata.Payment)
}

func TestScheduleDemoCall(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StagePresenting))

	res := f.exec.Execute(context.Background(), env(l), ScheduleDemoCall{PreferredDate: "2026-05-12"})
	require.False(t, res.IsError, res.Content)
	assert.Contains(t, res.Content, "14:00")

	got := f.reload(t, l.ID)
	want := time.Date(2026, 5, 12, 17, 0, 0, 0, time.UTC)
	require.NotNil(t, got.NextFollowupAt)
	assert.True(t, want.Equal(*got.NextFollowupAt), "14:00 in Brasília is 17:00 UTC, got %s", got.NextFollowupAt)

	res = f.exec.Execute(context.Background(), env(l), ScheduleDemoCall{PreferredDate: "2026-05-01", PreferredTime: "10:00"})
	assert.True(t, res.IsError, "past dates are rejected")
}

func TestSendDemoContent(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StagePresenting))
	ctx := context.Background()

	res := f.exec.Execute(ctx, env(l), SendDemoContent{ContentType: "video_storefront"})
	require.False(t, res.IsError, res.Content)
	media := f.sender.Last().Media
	require.NotNil(t, media)
	assert.Equal(t, "video", media.Kind)

	res = f.exec.Execute(ctx, env(l), SendDemoContent{ContentType: "case_study"})
	require.False(t, res.IsError, res.Content)
	assert.Nil(t, f.sender.Last().Media)
	assert.Contains(t, f.sender.Last().Content, "Case de Sucesso")

	got := f.reload(t, l.ID)
	assert.Equal(t, []string{"video_storefront", "case_study"}, got.Metadata.Demo.ContentSent)
}

func TestUpdateStage(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	t.Run("lost without reason", func(t *testing.T) {
		l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageNegotiating))
		res := f.exec.Execute(ctx, env(l), UpdateStage{NewStage: pipeline.StageLost})
		require.False(t, res.IsError, res.Content)

		got := f.reload(t, l.ID)
		assert.Equal(t, pipeline.StageLost, got.Stage)
		assert.Equal(t, "Não informado", got.LostReason)
		assert.NotNil(t, got.LostAt)
	})

	t.Run("won starts onboarding", func(t *testing.T) {
		md := models.LeadMetadata{Version: models.MetadataVersion, Proposal: &models.ProposalState{Plan: "Pro", AmountCents: 39700}}
		l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageNegotiating), testdata.WithMetadata(md))
		res := f.exec.Execute(ctx, env(l), UpdateStage{NewStage: pipeline.StageWon})
		require.False(t, res.IsError, res.Content)

		got := f.reload(t, l.ID)
		assert.Equal(t, pipeline.StageWon, got.Stage)
		assert.Equal(t, pipeline.RoleOnboarding, got.AssignedAgent)
		assert.Equal(t, "Pro", got.WonPlan)
		require.NotNil(t, got.WonAmountCents)
		assert.Equal(t, 39700, *got.WonAmountCents)
		assert.NotNil(t, got.Metadata.Onboarding)
	})

	t.Run("illegal transition", func(t *testing.T) {
		l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageLost))
		res := f.exec.Execute(ctx, Env{Lead: l, Agent: pipeline.RoleCloser}, UpdateStage{NewStage: pipeline.StagePresenting})
		assert.True(t, res.IsError)
		assert.Equal(t, pipeline.StageLost, f.reload(t, l.ID).Stage)
	})
}

func TestCompleteStep_Idempotent(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageWon))

	res := f.exec.Execute(ctx, env(l), CompleteStep{StepName: "welcome"})
	require.False(t, res.IsError, res.Content)
	assert.Contains(t, res.Content, "13%")
	assert.Contains(t, res.Content, "store_setup")

	res = f.exec.Execute(ctx, env(l), CompleteStep{StepName: "welcome"})
	require.False(t, res.IsError, res.Content)
	assert.Contains(t, res.Content, "13%")

	got := f.reload(t, l.ID)
	assert.Equal(t, []string{"welcome"}, got.Metadata.Onboarding.CompletedSteps)

	res = f.exec.Execute(ctx, env(l), CompleteStep{StepName: "cells_import"})
	assert.True(t, res.IsError, "steps of the other product line are rejected")
}

func TestCompleteStep_AllStepsActivateCustomer(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageWon))
	steps := product.MustGet(product.Occhiale).OnboardingSteps

	var res Result
	for _, s := range steps {
		res = f.exec.Execute(ctx, env(l), CompleteStep{StepName: s})
		require.False(t, res.IsError, res.Content)
	}
	assert.Contains(t, res.Content, "ONBOARDING COMPLETO")

	got := f.reload(t, l.ID)
	assert.Equal(t, pipeline.StageActive, got.Stage)
	assert.Equal(t, pipeline.RoleCS, got.AssignedAgent)
	assert.NotNil(t, got.Metadata.Onboarding.CompletedAt)

	progress := f.exec.Execute(ctx, Env{Lead: got, Agent: pipeline.RoleOnboarding}, CheckProgress{})
	assert.Contains(t, progress.Content, "100%")
	assert.Contains(t, progress.Content, "Pendentes: nenhum")
}

func TestSendTutorial(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageWon))

	res := f.exec.Execute(context.Background(), env(l), SendTutorial{StepName: "store_setup", Format: "video"})
	require.False(t, res.IsError, res.Content)
	assert.Contains(t, res.Content, "enviado como texto")
	assert.Contains(t, f.sender.Last().Content, "Passo 2 de 8")

	res = f.exec.Execute(context.Background(), env(l), SendTutorial{StepName: "nope"})
	assert.True(t, res.IsError)
}

func TestSendTip_RotatesAndCounts(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageActive))
	tips := product.MustGet(product.Occhiale).Tips["growth"]

	res := f.exec.Execute(ctx, env(l), SendTip{TipCategory: "growth"})
	require.False(t, res.IsError, res.Content)
	assert.Contains(t, f.sender.Last().Content, tips[0])

	got := f.reload(t, l.ID)
	res = f.exec.Execute(ctx, env(got), SendTip{TipCategory: "growth"})
	require.False(t, res.IsError, res.Content)
	assert.Contains(t, f.sender.Last().Content, tips[1])

	got = f.reload(t, l.ID)
	assert.Equal(t, 2, got.Metadata.Success.TipsSentCount)
	assert.Equal(t, "growth", got.Metadata.Success.LastTipCategory)
}

func TestOfferUpgrade_CapsDiscount(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageActive))

	res := f.exec.Execute(context.Background(), env(l), OfferUpgrade{TargetPlan: "Pro", Reason: "cresceu", DiscountPercent: 40})
	require.False(t, res.IsError, res.Content)
	// 15% of 397,00
	assert.Contains(t, res.Content, "R$ 337,45")

	got := f.reload(t, l.ID)
	require.Len(t, got.Metadata.Success.UpgradeOffers, 1)
	assert.Equal(t, 15, got.Metadata.Success.UpgradeOffers[0].DiscountPercent)
}

func TestCollectNPS(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageActive))

	res := f.exec.Execute(ctx, env(l), CollectNPS{})
	require.False(t, res.IsError, res.Content)
	assert.Contains(t, f.sender.Last().Content, "0 a 10")
	got := f.reload(t, l.ID)
	require.NotNil(t, got.Metadata.NPS.LastSurveyAt)

	score := 4
	res = f.exec.Execute(ctx, env(got), CollectNPS{Score: &score, Feedback: "lento"})
	require.False(t, res.IsError, res.Content)
	assert.Contains(t, res.Content, "detractor")

	got = f.reload(t, l.ID)
	require.Len(t, got.Metadata.NPS.Entries, 1)
	assert.Equal(t, models.NpsDetractor, got.Metadata.NPS.Entries[0].Category)
	assert.Len(t, f.sender.Messages(), 1, "recording a score sends nothing")
}

func TestCheckUsage(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageActive), testdata.WithLastContact(testNow.AddDate(0, 0, -20)))

	res := f.exec.Execute(context.Background(), env(l), CheckUsage{})
	require.False(t, res.IsError)
	assert.Contains(t, res.Content, "Dias desde último contato: 20")
	assert.Contains(t, res.Content, "Risco de churn: medium")
}

func TestChurnRisk(t *testing.T) {
	assert.Equal(t, RiskLow, ChurnRisk(14))
	assert.Equal(t, RiskMedium, ChurnRisk(15))
	assert.Equal(t, RiskHigh, ChurnRisk(31))
	assert.Equal(t, RiskHigh, ChurnRisk(DaysSince(nil, testNow)))
}

type panickySender struct{ *testdata.Sender }

func (panickySender) Send(context.Context, string, string, product.Line) bool { panic("boom") }

func TestExecute_RecoversFromPanics(t *testing.T) {
	f := setup(t)
	f.exec.sender = panickySender{&testdata.Sender{}}
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageActive))

	res := f.exec.Execute(context.Background(), env(l), SendTip{TipCategory: "feature"})
	assert.True(t, res.IsError)
	assert.Len(t, f.audits(t, l.ID), 1)
}

func TestExecute_SendFailure(t *testing.T) {
	f := setup(t)
	f.sender.Fail = true
	l := testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageActive))

	res := f.exec.Execute(context.Background(), env(l), SendTip{TipCategory: "feature"})
	assert.True(t, res.IsError)
	assert.Contains(t, res.Content, "WhatsApp")
	assert.Nil(t, f.reload(t, l.ID).Metadata.Success, "nothing is recorded when the send fails")
}

var _ whatsapp.MediaSender = panickySender{}
