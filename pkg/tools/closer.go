package tools

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jordanlanch/salesagent/ent"
	"github.com/jordanlanch/salesagent/pkg/domain"
	"github.com/jordanlanch/salesagent/pkg/leads"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/whatsapp"
)

const (
	maxProposalDiscount = 20
	defaultDemoTime     = "14:00"
	lostReasonUnknown   = "Não informado"
)

// brasilia is the fixed offset demo times are given in.
var brasilia = time.FixedZone("BRT", -3*60*60)

func (e *Executor) sendDemoContent(ctx context.Context, env Env, c SendDemoContent) (outcome, error) {
	cfg, err := config(env)
	if err != nil {
		return outcome{}, err
	}
	asset, ok := cfg.DemoContent[c.ContentType]
	if !ok {
		return outcome{}, domain.NewNotFoundError("conteúdo demo " + c.ContentType)
	}

	var sent string
	if asset.Kind == "text" || asset.URL == "" {
		sent = caseStudyText(cfg)
		err = e.sendText(ctx, env, NameSendDemoContent, sent)
	} else {
		sent = asset.Caption
		err = e.sendMedia(ctx, env, NameSendDemoContent, whatsapp.Media{Kind: asset.Kind, URL: asset.URL, Caption: asset.Caption})
	}
	if err != nil {
		return outcome{}, err
	}

	now := e.now()
	if _, err := e.leads.Mutate(ctx, env.Lead.ID, func(current *ent.Lead, u *ent.LeadUpdate) error {
		md := current.Metadata
		md.Normalize()
		demo := md.EnsureDemo()
		demo.ContentSent = append(demo.ContentSent, c.ContentType)
		demo.RequestedAt = &now
		u.SetMetadata(md)
		return nil
	}); err != nil {
		return outcome{}, err
	}

	content := fmt.Sprintf("Conteúdo demo %q enviado com sucesso!", c.ContentType)
	if c.Context != "" {
		content += " Contexto: " + c.Context
	}
	return outcome{Content: content, Audit: fmt.Sprintf("[DEMO: %s] %s", c.ContentType, truncate(sent, 100))}, nil
}

func caseStudyText(cfg *product.Config) string {
	if len(cfg.CaseStudies) == 0 {
		return "Case de sucesso em breve!"
	}
	cs := cfg.CaseStudies[0]
	var b strings.Builder
	fmt.Fprintf(&b, "📋 *Case de Sucesso - %s (%s)*\n\n", cs.Customer, cs.City)
	fmt.Fprintf(&b, "📈 *Resultado:* %s\n", cs.Result)
	for _, other := range cfg.CaseStudies[1:] {
		fmt.Fprintf(&b, "• %s (%s): %s\n", other.Customer, other.City, other.Result)
	}
	if cfg.Line == product.Ekkle {
		b.WriteString("\nQuer ver como ficaria para a sua igreja? 🙏")
	} else {
		b.WriteString("\nQuer ver como ficaria para a sua ótica? 😊")
	}
	return b.String()
}

// discounted applies a whole-percent discount, rounding the discount amount.
func discounted(cents, percent int) int {
	return cents - int(math.Round(float64(cents)*float64(percent)/100))
}

func (e *Executor) generateProposal(ctx context.Context, env Env, c GenerateProposal) (outcome, error) {
	cfg, err := config(env)
	if err != nil {
		return outcome{}, err
	}
	plan, ok := cfg.PlanByName(c.Plan)
	if !ok {
		return outcome{}, domain.NewNotFoundError(fmt.Sprintf("plano %q (disponíveis: %s)", c.Plan, strings.Join(cfg.PlanNames(), ", ")))
	}
	if env.Lead.Stage != pipeline.StageNegotiating {
		if err := leads.CheckTransition(env.Lead.Stage, pipeline.StageNegotiating); err != nil {
			return outcome{}, err
		}
	}

	discount := min(c.DiscountPercent, maxProposalDiscount)
	billing := c.Billing
	if billing == "" {
		billing = "monthly"
	}
	final := discounted(plan.PriceCents, discount)
	amount := final
	if billing == "annual" {
		amount = product.PlanPriceCents(product.Plan{PriceCents: final, AnnualMultiplier: plan.AnnualMultiplier}, billing)
	}

	text := proposalText(cfg, env.Lead.Name, plan, discount, final, billing)
	if err := e.sendText(ctx, env, NameGenerateProposal, text); err != nil {
		return outcome{}, err
	}

	now := e.now()
	if _, err := e.leads.Mutate(ctx, env.Lead.ID, func(current *ent.Lead, u *ent.LeadUpdate) error {
		if current.Stage != pipeline.StageNegotiating {
			if err := leads.CheckTransition(current.Stage, pipeline.StageNegotiating); err != nil {
				return err
			}
			u.SetStage(pipeline.StageNegotiating)
		}
		md := current.Metadata
		md.Normalize()
		md.Proposal = &models.ProposalState{
			Plan:            plan.Name,
			Billing:         billing,
			DiscountPercent: discount,
			AmountCents:     amount,
			SentAt:          now,
		}
		u.SetMetadata(md)
		return nil
	}); err != nil {
		return outcome{}, err
	}

	content := fmt.Sprintf("Proposta enviada! Plano %s por %s", plan.Name, product.FormatPrice(final))
	if discount > 0 {
		content += fmt.Sprintf(" (%d%% de desconto)", discount)
	}
	if billing == "annual" {
		content += fmt.Sprintf(". Cobrança anual: %s", product.FormatPrice(amount))
	}
	return outcome{
		Content: content + ".",
		Audit:   fmt.Sprintf("[PROPOSTA] Plano %s, %s, desconto %d%%", plan.Name, product.FormatPrice(amount), discount),
	}, nil
}

func proposalText(cfg *product.Config, leadName string, plan product.Plan, discount, final int, billing string) string {
	church := cfg.Line == product.Ekkle
	if leadName == "" && !church {
		leadName = "amigo(a)"
	}
	suffix := ""
	if plan.Interval == "monthly" {
		suffix = "/mês"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 *PROPOSTA COMERCIAL - %s*\n\n", strings.ToUpper(cfg.DisplayName))
	if church {
		fmt.Fprintf(&b, "Pastor(a) %s, preparei uma proposta especial:\n\n", leadName)
	} else {
		fmt.Fprintf(&b, "Olá, %s! Preparei uma proposta especial para você:\n\n", leadName)
	}
	fmt.Fprintf(&b, "*Plano %s*\n", plan.Name)
	for _, f := range plan.Features {
		fmt.Fprintf(&b, "✅ %s\n", f)
	}
	b.WriteString("\n💰 *Investimento:*\n")
	if discount > 0 {
		fmt.Fprintf(&b, "~%s%s~ → *%s%s*\n🎉 Desconto especial de %d%%!\n",
			product.FormatPrice(plan.PriceCents), suffix, product.FormatPrice(final), suffix, discount)
	} else {
		fmt.Fprintf(&b, "*%s%s*\n", product.FormatPrice(final), suffix)
	}
	if billing == "annual" && plan.AnnualMultiplier > 0 {
		fmt.Fprintf(&b, "\n📅 Pagamento anual: *%s/ano* (economia de %d meses!)\n",
			product.FormatPrice(final*plan.AnnualMultiplier), 12-plan.AnnualMultiplier)
	}
	b.WriteString("\n💡 *Garantia:* 7 dias para testar. Se não gostar, devolvemos 100% do valor.\n\n")
	if church {
		b.WriteString("Quer seguir com essa proposta? Posso gerar o link de pagamento agora! 🙏")
	} else {
		b.WriteString("Quer seguir com essa proposta? Posso gerar o link de pagamento agora! 😊")
	}
	return b.String()
}

func (e *Executor) createPaymentLink(ctx context.Context, env Env, c CreatePaymentLink) (outcome, error) {
	if e.payments == nil {
		return outcome{}, domain.NewValidationError("Sistema de pagamento não configurado")
	}
	cfg, err := config(env)
	if err != nil {
		return outcome{}, err
	}
	planName := strings.TrimSpace(c.Plan)
	if plan, ok := cfg.PlanByName(planName); ok {
		planName = plan.Name
	}

	name := firstNonEmpty(c.CustomerName, env.Lead.Name, "Cliente")
	link, err := e.payments.CreatePaymentLink(ctx, domain.PaymentRequest{
		LeadID:        env.Lead.ID,
		Product:       env.Lead.Product,
		Plan:          planName,
		AmountCents:   c.AmountCents,
		CustomerName:  name,
		CustomerEmail: firstNonEmpty(c.CustomerEmail, env.Lead.Email),
		Phone:         env.Lead.Phone,
	})
	if err != nil {
		return outcome{}, domain.NewExternalError(e.payments.Name(), err)
	}

	text := paymentText(cfg, planName, link.URL, c.AmountCents)
	if err := e.sendText(ctx, env, NameCreatePaymentLink, text); err != nil {
		return outcome{}, err
	}

	now := e.now()
	if _, err := e.leads.Mutate(ctx, env.Lead.ID, func(current *ent.Lead, u *ent.LeadUpdate) error {
		md := current.Metadata
		md.Normalize()
		md.Payment = &models.PaymentState{
			Provider:    link.Provider,
			OrderID:     link.OrderID,
			URL:         link.URL,
			Plan:        planName,
			AmountCents: c.AmountCents,
			CreatedAt:   now,
			Status:      "pending",
		}
		u.SetMetadata(md)
		return nil
	}); err != nil {
		return outcome{}, err
	}

	return outcome{
		Content: fmt.Sprintf("Link de pagamento criado e enviado: %s (%s).", link.URL, product.FormatPrice(c.AmountCents)),
		Audit:   fmt.Sprintf("[PAYMENT LINK] %s | Plano %s | %s | pedido %s", link.URL, planName, product.FormatPrice(c.AmountCents), link.OrderID),
	}, nil
}

func paymentText(cfg *product.Config, plan, url string, cents int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "💳 *Link de Pagamento - %s*\n\n", cfg.DisplayName)
	if cfg.Line == product.Ekkle {
		fmt.Fprintf(&b, "Pastor(a), aqui está o link para ativar o %s na sua igreja:\n\n", cfg.DisplayName)
	} else {
		fmt.Fprintf(&b, "Aqui está o link para finalizar sua assinatura do *Plano %s*:\n\n", plan)
	}
	fmt.Fprintf(&b, "🔗 %s\n\n💰 Valor: *%s*\n\n", url, product.FormatPrice(cents))
	b.WriteString("✅ Aceita: Cartão de crédito, PIX e boleto\n⏰ Link válido por 48 horas\n\n")
	b.WriteString("Qualquer dúvida, é só me chamar!")
	return b.String()
}

func (e *Executor) scheduleDemoCall(ctx context.Context, env Env, c ScheduleDemoCall) (outcome, error) {
	cfg, err := config(env)
	if err != nil {
		return outcome{}, err
	}
	at := c.PreferredTime
	if at == "" {
		at = defaultDemoTime
	}
	when, err := time.ParseInLocation("2006-01-02 15:04", c.PreferredDate+" "+at, brasilia)
	if err != nil {
		return outcome{}, domain.NewValidationError("data ou horário inválido: " + err.Error())
	}
	now := e.now()
	if when.Before(now) {
		return outcome{}, domain.NewValidationError(fmt.Sprintf("a data %s %s já passou", c.PreferredDate, at))
	}

	text := demoText(cfg, c.PreferredDate, at)
	if err := e.sendText(ctx, env, NameScheduleDemoCall, text); err != nil {
		return outcome{}, err
	}

	if _, err := e.leads.Mutate(ctx, env.Lead.ID, func(current *ent.Lead, u *ent.LeadUpdate) error {
		md := current.Metadata
		md.Normalize()
		demo := md.EnsureDemo()
		demo.ScheduledFor = &when
		demo.RequestedAt = &now
		u.SetMetadata(md).SetNextFollowupAt(when)
		return nil
	}); err != nil {
		return outcome{}, err
	}

	return outcome{
		Content: fmt.Sprintf("Demo agendada para %s às %s. Lead será contatado por um especialista.", c.PreferredDate, at),
		Audit:   fmt.Sprintf("[DEMO AGENDADA] %s às %s", c.PreferredDate, at),
	}, nil
}

func demoText(cfg *product.Config, date, at string) string {
	var b strings.Builder
	b.WriteString("📅 *Demo Agendada!*\n\n")
	if cfg.Line == product.Ekkle {
		fmt.Fprintf(&b, "Pastor(a), sua demonstração do %s está confirmada:\n\n", cfg.DisplayName)
	} else {
		fmt.Fprintf(&b, "Perfeito! Sua demonstração do %s está confirmada:\n\n", cfg.DisplayName)
	}
	fmt.Fprintf(&b, "📆 Data: *%s*\n⏰ Horário: *%s (horário de Brasília)*\n📱 Via: *Chamada de vídeo pelo WhatsApp*\n\n", date, at)
	b.WriteString("Um especialista vai te ligar nesse horário para mostrar tudo ao vivo!\n\nAté lá!")
	return b.String()
}

var stageReplies = map[pipeline.Stage]string{
	pipeline.StagePresenting:  "Lead movido para apresentação. Closer assumindo.",
	pipeline.StageNegotiating: "Lead em negociação. Proposta sendo discutida.",
	pipeline.StageWon:         "VENDA FECHADA! Lead movido para onboarding.",
}

func (e *Executor) updateStage(ctx context.Context, env Env, c UpdateStage) (outcome, error) {
	now := e.now()
	reason := strings.TrimSpace(c.Reason)
	var from pipeline.Stage

	updated, err := e.leads.Transition(ctx, env.Lead.ID, c.NewStage, func(current *ent.Lead, u *ent.LeadUpdate) error {
		from = current.Stage
		switch c.NewStage {
		case pipeline.StageWon:
			md := current.Metadata
			md.Normalize()
			md.EnsureOnboarding(now)
			u.SetWonAt(now).SetAssignedAgent(pipeline.RoleOnboarding).SetMetadata(md)
			if current.WonPlan == "" && md.Proposal != nil {
				u.SetWonPlan(md.Proposal.Plan).SetWonAmountCents(md.Proposal.AmountCents)
			}
		case pipeline.StageLost:
			if reason == "" {
				reason = lostReasonUnknown
			}
			u.SetLostAt(now).SetLostReason(reason)
		default:
			if current.AssignedAgent != pipeline.RoleHuman {
				u.SetAssignedAgent(pipeline.RoleCloser)
			}
		}
		return nil
	})
	if err != nil {
		return outcome{}, err
	}

	if c.NewStage == pipeline.StageWon && from != pipeline.StageWon {
		amount := 0
		if updated.WonAmountCents != nil {
			amount = *updated.WonAmountCents
		}
		e.metrics.RecordDealWon(string(updated.Product), updated.WonPlan, amount)
		e.leads.Count(ctx, updated.Product, models.MetricDelta{DealsWon: 1})
	}

	content, ok := stageReplies[c.NewStage]
	if !ok {
		content = fmt.Sprintf("Lead perdido. Motivo: %s.", reason)
	}
	audit := fmt.Sprintf("[STAGE CHANGE] %s → %s", from, c.NewStage)
	if reason != "" {
		audit += " | Motivo: " + reason
	}
	return outcome{Content: content, Audit: audit}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
