package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jordanlanch/salesagent/ent"
	"github.com/jordanlanch/salesagent/pkg/domain"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/product"
)

const (
	maxUpgradeDiscount = 15
	// neverContacted stands in for the day count of a lead never reached.
	neverContacted = 999
)

// Churn risk levels.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// ChurnRisk maps days of silence to a risk level.
func ChurnRisk(daysSilent int) string {
	switch {
	case daysSilent > 30:
		return RiskHigh
	case daysSilent > 14:
		return RiskMedium
	default:
		return RiskLow
	}
}

// DaysSince counts whole days between t and now; nil means never.
func DaysSince(t *time.Time, now time.Time) int {
	if t == nil {
		return neverContacted
	}
	return int(now.Sub(*t) / (24 * time.Hour))
}

func (e *Executor) checkUsage(ctx context.Context, env Env) (outcome, error) {
	l, err := e.leads.Get(ctx, env.Lead.ID)
	if err != nil {
		return outcome{}, err
	}
	now := e.now()
	days := DaysSince(l.LastContactAt, now)

	plan := l.WonPlan
	if plan == "" {
		plan = "Não definido"
	}
	since := l.CreatedAt
	if l.WonAt != nil {
		since = *l.WonAt
	}

	var b strings.Builder
	b.WriteString("Uso do cliente:\n")
	fmt.Fprintf(&b, "- Dias desde último contato: %d\n", days)
	fmt.Fprintf(&b, "- Risco de churn: %s\n", ChurnRisk(days))
	fmt.Fprintf(&b, "- Plano: %s\n", plan)
	fmt.Fprintf(&b, "- Cliente desde: %s\n", since.Format("02/01/2006"))
	if ob := l.Metadata.Onboarding; ob != nil {
		if cfg, err := config(env); err == nil {
			fmt.Fprintf(&b, "- Onboarding: %d%%\n", ob.Progress(len(cfg.OnboardingSteps)))
		}
	}
	if n := len(l.Metadata.NPS.Entries); n > 0 {
		last := l.Metadata.NPS.Entries[n-1]
		fmt.Fprintf(&b, "- Último NPS: %d (%s)\n", last.Score, last.Category)
	}
	if s := l.Metadata.Success; s != nil {
		fmt.Fprintf(&b, "- Dicas enviadas: %d\n", s.TipsSentCount)
	}
	return outcome{Content: strings.TrimRight(b.String(), "\n")}, nil
}

func (e *Executor) sendTip(ctx context.Context, env Env, c SendTip) (outcome, error) {
	cfg, err := config(env)
	if err != nil {
		return outcome{}, err
	}

	sent := 0
	if s := env.Lead.Metadata.Success; s != nil {
		sent = s.TipsSentCount
	}
	text := strings.TrimSpace(c.CustomTip)
	if text == "" {
		tip, ok := cfg.Tip(c.TipCategory, sent)
		if !ok {
			return outcome{}, domain.NewNotFoundError("dica da categoria " + c.TipCategory)
		}
		text = "💡 *Dica " + cfg.DisplayName + "*\n\n" + tip
	}
	if err := e.sendText(ctx, env, NameSendTip, text); err != nil {
		return outcome{}, err
	}

	now := e.now()
	if _, err := e.leads.Mutate(ctx, env.Lead.ID, func(current *ent.Lead, u *ent.LeadUpdate) error {
		md := current.Metadata
		md.Normalize()
		s := md.EnsureSuccess()
		s.TipsSentCount++
		s.LastTipCategory = c.TipCategory
		s.LastTipAt = &now
		u.SetMetadata(md)
		return nil
	}); err != nil {
		return outcome{}, err
	}

	return outcome{
		Content: fmt.Sprintf("Dica de %q enviada com sucesso!", c.TipCategory),
		Audit:   fmt.Sprintf("[TIP: %s] %s", c.TipCategory, truncate(text, 100)),
	}, nil
}

func (e *Executor) offerUpgrade(ctx context.Context, env Env, c OfferUpgrade) (outcome, error) {
	cfg, err := config(env)
	if err != nil {
		return outcome{}, err
	}
	plan, ok := cfg.PlanByName(c.TargetPlan)
	if !ok {
		return outcome{}, domain.NewNotFoundError(fmt.Sprintf("plano %q", c.TargetPlan))
	}
	discount := min(c.DiscountPercent, maxUpgradeDiscount)
	final := discounted(plan.PriceCents, discount)

	text := upgradeText(cfg, env.Lead.Name, plan, discount, final)
	if err := e.sendText(ctx, env, NameOfferUpgrade, text); err != nil {
		return outcome{}, err
	}

	now := e.now()
	if _, err := e.leads.Mutate(ctx, env.Lead.ID, func(current *ent.Lead, u *ent.LeadUpdate) error {
		md := current.Metadata
		md.Normalize()
		s := md.EnsureSuccess()
		s.UpgradeOffers = append(s.UpgradeOffers, models.UpgradeOffer{
			TargetPlan:      plan.Name,
			Reason:          c.Reason,
			DiscountPercent: discount,
			OfferedAt:       now,
		})
		u.SetMetadata(md)
		return nil
	}); err != nil {
		return outcome{}, err
	}

	return outcome{
		Content: fmt.Sprintf("Oferta de upgrade para plano %s enviada! Valor: %s.", plan.Name, product.FormatPrice(final)),
		Audit:   fmt.Sprintf("[UPGRADE OFFER] Plano %s - %s | %s", plan.Name, product.FormatPrice(final), c.Reason),
	}, nil
}

func upgradeText(cfg *product.Config, name string, plan product.Plan, discount, final int) string {
	church := cfg.Line == product.Ekkle
	var b strings.Builder
	if church {
		fmt.Fprintf(&b, "🚀 *Upgrade Especial para sua Igreja!*\n\nPastor(a) %s! Que tal ir além?\n\n", name)
	} else {
		fmt.Fprintf(&b, "🚀 *Upgrade Especial para Você!*\n\nOlá, %s! Percebi que seu negócio está crescendo. Que tal potencializar ainda mais?\n\n", firstNonEmpty(name, "amigo(a)"))
	}
	fmt.Fprintf(&b, "*Plano %s*, tudo que você tem hoje e mais:\n", plan.Name)
	features := plan.Features
	if len(features) > 3 {
		features = features[len(features)-3:]
	}
	for _, f := range features {
		fmt.Fprintf(&b, "✨ %s\n", f)
	}
	b.WriteString("\n💰 *Investimento:* ")
	if discount > 0 {
		fmt.Fprintf(&b, "~%s~ → *%s*\n🎉 Desconto especial de %d%% por ser nosso cliente!\n", product.FormatPrice(plan.PriceCents), product.FormatPrice(final), discount)
	} else {
		fmt.Fprintf(&b, "*%s*\n", product.FormatPrice(final))
	}
	b.WriteString("\nQuer saber mais sobre o upgrade?")
	return b.String()
}

// SurveyText is the NPS question sent to a customer.
func SurveyText(line product.Line, name string) string {
	cfg, err := product.Get(line)
	if err != nil {
		return ""
	}
	if line == product.Ekkle {
		return fmt.Sprintf("📊 *Pesquisa Rápida - %s*\n\nPastor(a) %s! Queremos servir cada vez melhor.\n\n"+
			"Em uma escala de *0 a 10*, o quanto você recomendaria o %s para outro pastor?\n\nResponda com um número de 0 a 10. 🙏",
			cfg.DisplayName, name, cfg.DisplayName)
	}
	return fmt.Sprintf("📊 *Pesquisa Rápida - %s*\n\nOlá, %s! Queremos melhorar sempre.\n\n"+
		"Em uma escala de *0 a 10*, o quanto você recomendaria o %s para outro dono de ótica?\n\nResponda com um número de 0 a 10. 😊",
		cfg.DisplayName, firstNonEmpty(name, "amigo(a)"), cfg.DisplayName)
}

var npsGuidance = map[string]string{
	models.NpsPromoter:  "Cliente promotor! Boa oportunidade para pedir indicação.",
	models.NpsPassive:   "Cliente passivo. Buscar formas de encantar.",
	models.NpsDetractor: "ATENÇÃO: Cliente detrator! Priorizar resolução de problemas.",
}

func (e *Executor) collectNPS(ctx context.Context, env Env, c CollectNPS) (outcome, error) {
	now := e.now()

	if c.Score == nil {
		if err := e.sendText(ctx, env, NameCollectNPS, SurveyText(env.Lead.Product, env.Lead.Name)); err != nil {
			return outcome{}, err
		}
		if _, err := e.leads.Mutate(ctx, env.Lead.ID, func(current *ent.Lead, u *ent.LeadUpdate) error {
			md := current.Metadata
			md.Normalize()
			md.NPS.LastSurveyAt = &now
			u.SetMetadata(md)
			return nil
		}); err != nil {
			return outcome{}, err
		}
		return outcome{Content: "Pesquisa NPS enviada! Aguardando resposta do cliente.", Audit: "[NPS SURVEY SENT]"}, nil
	}

	var entry models.NpsEntry
	if _, err := e.leads.Mutate(ctx, env.Lead.ID, func(current *ent.Lead, u *ent.LeadUpdate) error {
		md := current.Metadata
		md.Normalize()
		entry = md.NPS.Add(*c.Score, c.Feedback, now)
		u.SetMetadata(md)
		return nil
	}); err != nil {
		return outcome{}, err
	}

	content := fmt.Sprintf("NPS coletado: %d/10 (%s).", entry.Score, entry.Category)
	if c.Feedback != "" {
		content += fmt.Sprintf(" Feedback: %q.", c.Feedback)
	}
	content += " " + npsGuidance[entry.Category]

	audit := fmt.Sprintf("[NPS COLLECTED] Score: %d/10", entry.Score)
	if c.Feedback != "" {
		audit += " | Feedback: " + c.Feedback
	}
	return outcome{Content: content, Audit: audit}, nil
}
