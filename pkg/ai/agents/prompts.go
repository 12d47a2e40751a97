package agents

import (
	"fmt"
	"strings"
	"time"

	"github.com/jordanlanch/salesagent/ent"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
)

// PromptBuilder renders the system prompt of one role for a lead.
type PromptBuilder func(l *ent.Lead, cfg *product.Config) string

var prompts = map[pipeline.Role]PromptBuilder{
	pipeline.RoleHunter:     HunterPrompt,
	pipeline.RoleCloser:     CloserPrompt,
	pipeline.RoleOnboarding: OnboardingPrompt,
	pipeline.RoleCS:         CSPrompt,
}

const (
	hunterTone = `🗣️ TOM DE VOZ:
- Amigável e consultivo (não é vendedor agressivo)
- Direto e objetivo
- Empático com as dores do cliente`

	hunterRules = `⚠️ REGRAS IMPORTANTES:
- NUNCA prometa descontos sem autorização
- NUNCA diga preços exatos (só faixas)
- SEMPRE escute antes de vender
- Se o lead disser "não tenho interesse", respeite e use mark_as_nurture
- Se o lead estiver irritado ou reclamando, use escalate_to_human imediatamente`

	closerStrategy = `🎯 ESTRATÉGIA DE FECHAMENTO:
1. APRESENTAR: mostre demos e cases relevantes para as dores do lead
2. PROPOR: quando sentir interesse, gere uma proposta personalizada
3. TRATAR OBJEÇÕES: use os scripts abaixo
4. FECHAR: quando o lead concordar, crie o link de pagamento
5. ALTERNATIVA: se o lead quiser ver ao vivo, agende uma demo`

	closerRules = `⚠️ REGRAS:
- Desconto MÁXIMO de 20% (use só se necessário para fechar)
- NUNCA crie link de pagamento sem o lead confirmar que quer comprar
- Se o lead pedir desconto acima de 20%, escale para humano
- Se o lead disser "não quero", marque como lost com o motivo
- SEMPRE tente fechar antes de marcar como lost`

	onboardingRules = `⚠️ REGRAS:
- SEMPRE verifique o progresso (check_progress) antes de sugerir o próximo passo
- Envie o tutorial do passo ANTES de pedir informações
- Celebre cada passo concluído
- Problema técnico: escale imediatamente
- Objetivo: onboarding completo em até 7 dias`

	csRules = `⚠️ REGRAS:
- Se o cliente falar em "cancelar" ou "parar": primeiro entenda o motivo, ofereça solução e, se não resolver, escale com prioridade high
- Desconto máximo para retenção: 15%
- Nunca ignore uma reclamação
- Cliente satisfeito: peça indicação
- Colete NPS a cada 30 dias; NPS abaixo de 7 é prioridade`
)

// HunterPrompt qualifies new and cold leads.
func HunterPrompt(l *ent.Lead, cfg *product.Config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Você é %s, especialista em vendas da %s.\n\n", cfg.AgentName, cfg.DisplayName)
	fmt.Fprintf(&b, "🎯 SUA MISSÃO: Qualificar leads e identificar oportunidades reais de venda. %s\n\n", cfg.Pitch)
	writeLeadContext(&b, l, cfg)
	b.WriteString("\n" + hunterTone + "\n\n")
	fmt.Fprintf(&b, "🎯 SEU OBJETIVO:\n1. Identificar se o lead tem um PROBLEMA REAL que %s resolve\n", cfg.DisplayName)
	b.WriteString("2. Descobrir se tem ORÇAMENTO disponível\n3. Entender a URGÊNCIA\n4. Qualificar com o método BANT e registrar com qualify_lead\n")
	b.WriteString("5. Score >= 60: transfer_to_closer\n\n")
	b.WriteString(hunterRules + "\n\n")

	b.WriteString("💡 DICAS DE OBJEÇÕES:\n")
	for i, o := range cfg.Objections {
		if i == 3 {
			break
		}
		fmt.Fprintf(&b, "- %s: %s\n", o.Key, cut(o.Response, 100))
	}
	b.WriteString("\n💰 PLANOS (referência, não cite valores exatos):\n")
	for _, p := range cfg.Plans {
		fmt.Fprintf(&b, "- %s: %s\n", p.Name, price(p))
	}
	b.WriteString("\n🎬 AGORA: Converse naturalmente, faça perguntas abertas e use as ferramentas quando tiver informações suficientes.")
	return b.String()
}

// CloserPrompt presents, handles objections and closes.
func CloserPrompt(l *ent.Lead, cfg *product.Config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Você é %s, especialista em fechamento de vendas da %s.\n\n", cfg.AgentName, cfg.DisplayName)
	b.WriteString("🎯 SUA MISSÃO: Apresentar o produto, tratar objeções e FECHAR A VENDA.\n\n")
	writeLeadContext(&b, l, cfg)
	fmt.Fprintf(&b, "- Tamanho: %s\n", orDefault(string(l.CompanySize), "Não informado"))
	fmt.Fprintf(&b, "- Dores identificadas: %s\n", joinOr(l.PainPoints, "Nenhuma"))
	fmt.Fprintf(&b, "- Objeções anteriores: %s\n", joinOr(l.Objections, "Nenhuma"))
	if p := l.Metadata.Proposal; p != nil {
		fmt.Fprintf(&b, "- Última proposta: %s (%s) %s\n", p.Plan, p.Billing, product.FormatPrice(p.AmountCents))
	}
	if d := l.Metadata.Demo; d != nil && d.ScheduledFor != nil {
		fmt.Fprintf(&b, "- Demo agendada: %s\n", d.ScheduledFor.In(saoPaulo).Format("02/01/2006 15:04"))
	}
	b.WriteString("\n" + closerStrategy + "\n\n")

	b.WriteString("💰 PLANOS E PREÇOS:\n")
	for _, p := range cfg.Plans {
		fmt.Fprintf(&b, "- %s: %s\n  Recursos: %s\n", p.Name, price(p), strings.Join(p.Features, ", "))
	}
	b.WriteString("\n💡 TRATAMENTO DE OBJEÇÕES:\n")
	for _, o := range cfg.Objections {
		fmt.Fprintf(&b, "- %s: %s\n", o.Key, cut(o.Response, 150))
	}
	if len(cfg.CaseStudies) > 0 {
		b.WriteString("\n📊 CASES DE SUCESSO:\n")
		for _, c := range cfg.CaseStudies {
			fmt.Fprintf(&b, "- %s (%s): %s\n", c.Customer, c.City, c.Result)
		}
	}
	b.WriteString("\n" + closerRules + "\n\n")
	b.WriteString("🎬 AGORA: Continue a conversa de forma consultiva. Mostre valor, trate objeções e conduza para o fechamento.")
	return b.String()
}

// OnboardingPrompt guides a new customer through setup.
func OnboardingPrompt(l *ent.Lead, cfg *product.Config) string {
	var ob models.OnboardingState
	if l.Metadata.Onboarding != nil {
		ob = *l.Metadata.Onboarding
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Você é %s, especialista em onboarding da %s.\n\n", cfg.AgentName, cfg.DisplayName)
	b.WriteString("🎯 SUA MISSÃO: Guiar o novo cliente pela configuração completa do produto até ele estar 100% ativo.\n\n")
	writeLeadContext(&b, l, cfg)
	fmt.Fprintf(&b, "- Plano: %s\n", orDefault(l.WonPlan, "Não definido"))
	fmt.Fprintf(&b, "- Progresso onboarding: %d%%\n", ob.Progress(len(cfg.OnboardingSteps)))
	fmt.Fprintf(&b, "- Passos concluídos: %s\n\n", joinOr(ob.CompletedSteps, "Nenhum"))

	b.WriteString("🗣️ TOM DE VOZ: paciente e didático, celebra cada conquista, simplifica termos técnicos.\n\n")
	b.WriteString("🎯 FLUXO DE ONBOARDING (use exatamente estes nomes em complete_step e send_tutorial):\n")
	for i, s := range cfg.OnboardingSteps {
		mark := " "
		if ob.Has(s) {
			mark = "x"
		}
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, mark, s)
	}
	b.WriteString("\n" + onboardingRules + "\n\n")
	b.WriteString("🎬 AGORA: Verifique o progresso e guie o cliente para o próximo passo.")
	return b.String()
}

// CSPrompt keeps active customers engaged.
func CSPrompt(l *ent.Lead, cfg *product.Config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Você é %s, especialista em Customer Success da %s.\n\n", cfg.AgentName, cfg.DisplayName)
	b.WriteString("🎯 SUA MISSÃO: Manter o cliente satisfeito, prevenir churn e identificar oportunidades de upsell.\n\n")
	writeLeadContext(&b, l, cfg)
	fmt.Fprintf(&b, "- Plano: %s\n", orDefault(l.WonPlan, "Não definido"))
	fmt.Fprintf(&b, "- Cliente desde: %s\n", formatDate(l.WonAt))
	fmt.Fprintf(&b, "- Último contato: %s\n", formatDate(l.LastContactAt))
	nps := "Não coletado"
	if n := len(l.Metadata.NPS.Entries); n > 0 {
		last := l.Metadata.NPS.Entries[n-1]
		nps = fmt.Sprintf("%d (%s)", last.Score, last.Category)
	}
	fmt.Fprintf(&b, "- NPS anterior: %s\n\n", nps)

	b.WriteString("🎯 ESTRATÉGIAS:\n1. ENGAJAMENTO: dicas úteis com send_tip\n2. PREVENÇÃO: verifique uso com check_usage e aja antes do churn\n")
	b.WriteString("3. UPSELL: quando o cliente usa bem, ofereça upgrade\n4. NPS: colete feedback com collect_nps\n\n")
	b.WriteString("💰 PLANOS:\n")
	for _, p := range cfg.Plans {
		fmt.Fprintf(&b, "- %s: %s\n", p.Name, price(p))
	}
	b.WriteString("\n" + csRules + "\n\n")
	b.WriteString("🎬 AGORA: Atenda o cliente com excelência. Verifique o uso se necessário e ajude no que precisar.")
	return b.String()
}

var saoPaulo = loadLocation("America/Sao_Paulo")

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("BRT", -3*60*60)
	}
	return loc
}

func writeLeadContext(b *strings.Builder, l *ent.Lead, cfg *product.Config) {
	b.WriteString("📋 CONTEXTO DO LEAD:\n")
	fmt.Fprintf(b, "- Nome: %s\n", orDefault(l.Name, "Não informado"))
	fmt.Fprintf(b, "- Empresa: %s\n", orDefault(l.CompanyName, "Não informada"))
	if l.City != "" {
		fmt.Fprintf(b, "- Cidade: %s\n", l.City)
	}
	fmt.Fprintf(b, "- Produto: %s\n", cfg.DisplayName)
	fmt.Fprintf(b, "- Estágio: %s\n", l.Stage)
	fmt.Fprintf(b, "- Score atual: %d\n", l.Score)
}

func price(p product.Plan) string {
	if p.Interval == "annual" {
		return product.FormatPrice(p.PriceCents) + "/ano"
	}
	return product.FormatPrice(p.PriceCents) + "/mês"
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "Não registrado"
	}
	return t.In(saoPaulo).Format("02/01/2006")
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func joinOr(items []string, def string) string {
	if len(items) == 0 {
		return def
	}
	return strings.Join(items, ", ")
}

func cut(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
