package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jordanlanch/salesagent/ent"
	"github.com/jordanlanch/salesagent/pkg/domain"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
)

// errStepDone aborts the mutation of an already completed step.
var errStepDone = errors.New("step already completed")

func (e *Executor) completeStep(ctx context.Context, env Env, c CompleteStep) (outcome, error) {
	cfg, err := config(env)
	if err != nil {
		return outcome{}, err
	}
	if !cfg.HasStep(c.StepName) {
		return outcome{}, domain.NewValidationError(fmt.Sprintf("passo %q não existe. Passos: %s", c.StepName, strings.Join(cfg.OnboardingSteps, ", ")))
	}

	now := e.now()
	total := len(cfg.OnboardingSteps)
	var state models.OnboardingState

	updated, err := e.leads.Mutate(ctx, env.Lead.ID, func(current *ent.Lead, u *ent.LeadUpdate) error {
		md := current.Metadata
		md.Normalize()
		ob := md.EnsureOnboarding(now)
		if !ob.Complete(c.StepName, c.Notes) {
			state = *ob
			return errStepDone
		}
		if ob.Progress(total) >= 100 {
			ob.CompletedAt = &now
			if current.Stage == pipeline.StageWon {
				u.SetStage(pipeline.StageActive).SetAssignedAgent(pipeline.RoleCS)
			}
		}
		state = *ob
		u.SetMetadata(md)
		return nil
	})
	repeated := errors.Is(err, errStepDone)
	if err != nil && !repeated {
		return outcome{}, err
	}

	progress := state.Progress(total)
	next := nextStep(cfg, &state)
	var content string
	switch {
	case repeated:
		content = fmt.Sprintf("Passo %q já estava concluído. Progresso: %d%%.", c.StepName, progress)
	case next == "":
		content = fmt.Sprintf("Passo %q concluído! Progresso: %d%%. ONBOARDING COMPLETO! Cliente movido para CS.", c.StepName, progress)
	default:
		content = fmt.Sprintf("Passo %q concluído! Progresso: %d%%. Próximo: %q.", c.StepName, progress, next)
	}
	if repeated && next != "" {
		content += fmt.Sprintf(" Próximo: %q.", next)
	}

	audit := fmt.Sprintf("[ONBOARDING] Passo %q concluído. Progresso: %d%%", c.StepName, progress)
	if c.Notes != "" {
		audit += " | Notas: " + c.Notes
	}
	if updated != nil && updated.Stage == pipeline.StageActive && env.Lead.Stage != pipeline.StageActive {
		audit += " | cliente ativo"
	}
	if repeated {
		audit = content
	}
	return outcome{Content: content, Audit: audit}, nil
}

func nextStep(cfg *product.Config, ob *models.OnboardingState) string {
	for _, s := range cfg.OnboardingSteps {
		if !ob.Has(s) {
			return s
		}
	}
	return ""
}

func (e *Executor) sendTutorial(ctx context.Context, env Env, c SendTutorial) (outcome, error) {
	cfg, err := config(env)
	if err != nil {
		return outcome{}, err
	}
	body, ok := cfg.StepTutorials[c.StepName]
	if !ok {
		return outcome{}, domain.NewNotFoundError(fmt.Sprintf("tutorial do passo %q", c.StepName))
	}

	position := 0
	for i, s := range cfg.OnboardingSteps {
		if s == c.StepName {
			position = i + 1
		}
	}
	text := fmt.Sprintf("📘 *Passo %d de %d: %s*\n\n%s", position, len(cfg.OnboardingSteps), stepTitle(c.StepName), body)
	if err := e.sendText(ctx, env, NameSendTutorial, text); err != nil {
		return outcome{}, err
	}

	content := fmt.Sprintf("Tutorial %q enviado com sucesso!", c.StepName)
	if c.Format != "" && c.Format != "text" {
		// tutorials have no media yet
		content += fmt.Sprintf(" Formato %s indisponível, enviado como texto.", c.Format)
	}
	return outcome{
		Content: content,
		Audit:   fmt.Sprintf("[TUTORIAL: %s] %s", c.StepName, truncate(body, 100)),
	}, nil
}

// stepTitle turns "store_setup" into "Store setup".
func stepTitle(step string) string {
	s := strings.ReplaceAll(step, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (e *Executor) checkProgress(ctx context.Context, env Env) (outcome, error) {
	cfg, err := config(env)
	if err != nil {
		return outcome{}, err
	}
	l, err := e.leads.Get(ctx, env.Lead.ID)
	if err != nil {
		return outcome{}, err
	}

	var ob models.OnboardingState
	if l.Metadata.Onboarding != nil {
		ob = *l.Metadata.Onboarding
	}
	var done, pending []string
	for _, s := range cfg.OnboardingSteps {
		if ob.Has(s) {
			done = append(done, s)
		} else {
			pending = append(pending, s)
		}
	}

	return outcome{
		Content: fmt.Sprintf("Progresso: %d%% (%d/%d passos). Concluídos: %s. Pendentes: %s.",
			ob.Progress(len(cfg.OnboardingSteps)), len(done), len(cfg.OnboardingSteps), listOrNone(done), listOrNone(pending)),
	}, nil
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "nenhum"
	}
	return strings.Join(items, ", ")
}
