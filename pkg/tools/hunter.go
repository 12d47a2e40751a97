package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/jordanlanch/salesagent/ent"
	"github.com/jordanlanch/salesagent/pkg/domain"
	"github.com/jordanlanch/salesagent/pkg/leads"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/scoring"
)

const defaultNurtureDays = 30

func (e *Executor) qualifyLead(ctx context.Context, env Env, c QualifyLead) (outcome, error) {
	score := scoring.Score(scoring.Input{
		Size:       c.CompanySize,
		PainPoints: c.PainPoints,
		Urgency:    c.Urgency,
		Adjustment: c.ScoreAdjustment,
	})
	action := scoring.Recommend(score)
	now := e.now()

	updated, err := e.leads.Mutate(ctx, env.Lead.ID, func(current *ent.Lead, u *ent.LeadUpdate) error {
		next := scoring.StageAfterQualification(current.Stage, score)
		if next != current.Stage {
			if err := leads.CheckTransition(current.Stage, next); err != nil {
				return err
			}
			u.SetStage(next)
			if current.AssignedAgent != pipeline.RoleHuman {
				u.SetAssignedAgent(pipeline.AgentFor(next))
			}
		}
		if name := strings.TrimSpace(c.CompanyName); name != "" {
			u.SetCompanyName(name)
		}

		md := current.Metadata
		md.Normalize()
		md.Qualification = &models.QualificationState{
			Urgency:        string(c.Urgency),
			Recommendation: string(action),
			QualifiedAt:    now,
		}
		u.SetCompanySize(c.CompanySize).
			SetPainPoints(c.PainPoints).
			SetScore(score).
			SetMetadata(md)
		return nil
	})
	if err != nil {
		return outcome{}, err
	}

	return outcome{
		Content: fmt.Sprintf("Score atualizado para %d/100. Estágio: %s. Recomendação: %s.", score, updated.Stage, action),
	}, nil
}

func (e *Executor) transferToCloser(ctx context.Context, env Env, c TransferToCloser) (outcome, error) {
	now := e.now()
	_, err := e.leads.Mutate(ctx, env.Lead.ID, func(current *ent.Lead, u *ent.LeadUpdate) error {
		// already in a closing stage: only the owner changes
		if pipeline.AgentFor(current.Stage) != pipeline.RoleCloser {
			if err := leads.CheckTransition(current.Stage, pipeline.StageQualified); err != nil {
				return err
			}
			u.SetStage(pipeline.StageQualified)
		}

		md := current.Metadata
		md.Normalize()
		md.Handoff = &models.HandoffState{Reason: c.Reason, Summary: c.Summary, TransferredAt: now}
		u.SetAssignedAgent(pipeline.RoleCloser).SetMetadata(md)
		return nil
	})
	if err != nil {
		return outcome{}, err
	}

	return outcome{
		Content: "Lead transferido para o agente Closer com sucesso!",
		Audit:   fmt.Sprintf("[TRANSFERÊNCIA PARA CLOSER] Razão: %s | Resumo: %s", c.Reason, c.Summary),
	}, nil
}

func (e *Executor) markAsNurture(ctx context.Context, env Env, c MarkAsNurture) (outcome, error) {
	days := c.NextContactDays
	if days <= 0 {
		days = defaultNurtureDays
	}
	now := e.now()
	next := now.AddDate(0, 0, days)

	_, err := e.leads.Transition(ctx, env.Lead.ID, pipeline.StageNurturing, func(current *ent.Lead, u *ent.LeadUpdate) error {
		md := current.Metadata
		md.Normalize()
		md.Nurture = &models.NurtureState{Reason: c.Reason, StartedAt: now}
		u.SetNextFollowupAt(next).
			SetFollowupCount(0).
			SetAssignedAgent(pipeline.RoleHunter).
			SetMetadata(md)
		return nil
	})
	if err != nil {
		return outcome{}, err
	}

	return outcome{
		Content: fmt.Sprintf("Lead movido para nurturing. Próximo contato em %d dias (%s).", days, next.Format("02/01/2006")),
		Audit:   fmt.Sprintf("[NURTURING] %s | próximo contato %s", c.Reason, next.Format("02/01/2006")),
	}, nil
}

var escalationReplies = map[string]string{
	"high":   "🚨 ESCALAÇÃO URGENTE! Um especialista vai entrar em contato em até 2 horas.",
	"medium": "⏰ Caso transferido para um especialista. Retornaremos em até 24 horas.",
	"low":    "✅ Passamos seu caso para nossa equipe. Em breve alguém vai te ajudar!",
}

func (e *Executor) escalate(ctx context.Context, env Env, c EscalateToHuman) (outcome, error) {
	now := e.now()
	updated, err := e.leads.Mutate(ctx, env.Lead.ID, func(current *ent.Lead, u *ent.LeadUpdate) error {
		md := current.Metadata
		md.Normalize()
		md.Escalation = &models.EscalationState{
			Reason:         c.Reason,
			Priority:       c.Priority,
			PreviousAgent:  string(current.AssignedAgent),
			EscalatedAt:    now,
			NeedsAttention: true,
		}
		u.SetAssignedAgent(pipeline.RoleHuman).SetMetadata(md)
		return nil
	})
	if err != nil {
		return outcome{}, err
	}

	e.metrics.RecordEscalation(string(updated.Product), c.Priority)
	e.leads.Count(ctx, updated.Product, models.MetricDelta{Escalations: 1})
	e.notify(ctx, domain.EscalationAlert{
		LeadID:   updated.ID,
		Phone:    updated.Phone,
		Name:     updated.Name,
		Company:  updated.CompanyName,
		Product:  updated.Product,
		Reason:   c.Reason,
		Priority: c.Priority,
		Agent:    string(env.Agent),
		At:       now,
	})

	name := updated.Name
	if name == "" {
		name = "N/A"
	}
	return outcome{
		Content: escalationReplies[c.Priority],
		Audit:   fmt.Sprintf("[ESCALAÇÃO - PRIORIDADE %s] Motivo: %s | Lead: %s (%s)", strings.ToUpper(c.Priority), c.Reason, name, updated.Phone),
	}, nil
}

func (e *Executor) notify(ctx context.Context, alert domain.EscalationAlert) {
	if e.notifier == nil {
		e.log.Warn("Escalation without notifier", "lead_id", alert.LeadID, "priority", alert.Priority)
		return
	}
	if err := e.notifier.NotifyEscalation(ctx, alert); err != nil {
		e.log.Error("Failed to notify escalation", "lead_id", alert.LeadID, "error", err)
	}
}
