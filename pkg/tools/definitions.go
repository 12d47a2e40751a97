package tools

import (
	"encoding/json"

	"github.com/jordanlanch/salesagent/pkg/ai/llm"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
)

var definitions = map[string]llm.ToolDefinition{
	NameQualifyLead: {
		Name:        NameQualifyLead,
		Description: "Registra as respostas de qualificação (BANT) do lead e recalcula o score de 0 a 100.",
		Parameters: schema(`{
			"type": "object",
			"properties": {
				"company_name": {"type": "string", "description": "Nome do negócio"},
				"company_size": {"type": "string", "enum": ["micro", "small", "medium", "large"]},
				"pain_points": {"type": "array", "items": {"type": "string"}, "description": "Dores relatadas"},
				"urgency": {"type": "string", "enum": ["now", "next_month", "researching"]},
				"score_adjustment": {"type": "integer", "minimum": -20, "maximum": 20}
			},
			"required": ["company_size", "pain_points", "urgency"]
		}`),
	},
	NameTransferToCloser: {
		Name:        NameTransferToCloser,
		Description: "Transfere um lead qualificado para o agente Closer.",
		Parameters: schema(`{
			"type": "object",
			"properties": {
				"reason": {"type": "string"},
				"summary": {"type": "string", "description": "Resumo da conversa para o Closer"}
			},
			"required": ["reason", "summary"]
		}`),
	},
	NameMarkAsNurture: {
		Name:        NameMarkAsNurture,
		Description: "Move o lead para a campanha de nutrição quando ainda não é o momento de comprar.",
		Parameters: schema(`{
			"type": "object",
			"properties": {
				"reason": {"type": "string"},
				"next_contact_days": {"type": "integer", "minimum": 1, "maximum": 365, "default": 30}
			},
			"required": ["reason"]
		}`),
	},
	NameEscalateToHuman: {
		Name:        NameEscalateToHuman,
		Description: "Transfere a conversa para um humano da equipe comercial.",
		Parameters: schema(`{
			"type": "object",
			"properties": {
				"reason": {"type": "string"},
				"priority": {"type": "string", "enum": ["low", "medium", "high"]}
			},
			"required": ["reason", "priority"]
		}`),
	},
	NameSendDemoContent: {
		Name:        NameSendDemoContent,
		Description: "Envia um vídeo, imagem ou case de sucesso do produto.",
		Parameters: schema(`{
			"type": "object",
			"properties": {
				"content_type": {"type": "string", "enum": ["video_storefront", "video_whatsapp_agent", "video_dashboard", "screenshot_demo", "case_study"]},
				"context": {"type": "string"}
			},
			"required": ["content_type"]
		}`),
	},
	NameGenerateProposal: {
		Name:        NameGenerateProposal,
		Description: "Gera e envia uma proposta comercial para um plano, com desconto opcional de até 20%.",
		Parameters: schema(`{
			"type": "object",
			"properties": {
				"plan": {"type": "string"},
				"discount_percent": {"type": "integer", "minimum": 0, "maximum": 20},
				"billing": {"type": "string", "enum": ["monthly", "annual"]}
			},
			"required": ["plan"]
		}`),
	},
	NameCreatePaymentLink: {
		Name:        NameCreatePaymentLink,
		Description: "Cria um link de pagamento (cartão, PIX ou boleto) e envia ao lead.",
		Parameters: schema(`{
			"type": "object",
			"properties": {
				"plan": {"type": "string"},
				"amount_cents": {"type": "integer", "minimum": 1},
				"customer_name": {"type": "string"},
				"customer_email": {"type": "string"}
			},
			"required": ["plan", "amount_cents"]
		}`),
	},
	NameScheduleDemoCall: {
		Name:        NameScheduleDemoCall,
		Description: "Agenda uma demonstração ao vivo por chamada de vídeo.",
		Parameters: schema(`{
			"type": "object",
			"properties": {
				"preferred_date": {"type": "string", "description": "YYYY-MM-DD"},
				"preferred_time": {"type": "string", "description": "HH:MM, horário de Brasília", "default": "14:00"}
			},
			"required": ["preferred_date"]
		}`),
	},
	NameUpdateStage: {
		Name:        NameUpdateStage,
		Description: "Atualiza o estágio do lead no funil de vendas.",
		Parameters: schema(`{
			"type": "object",
			"properties": {
				"new_stage": {"type": "string", "enum": ["presenting", "negotiating", "won", "lost"]},
				"reason": {"type": "string"}
			},
			"required": ["new_stage"]
		}`),
	},
	NameCompleteStep: {
		Name:        NameCompleteStep,
		Description: "Marca um passo do onboarding como concluído.",
		Parameters: schema(`{
			"type": "object",
			"properties": {
				"step_name": {"type": "string"},
				"notes": {"type": "string"}
			},
			"required": ["step_name"]
		}`),
	},
	NameSendTutorial: {
		Name:        NameSendTutorial,
		Description: "Envia o tutorial de um passo do onboarding.",
		Parameters: schema(`{
			"type": "object",
			"properties": {
				"step_name": {"type": "string"},
				"format": {"type": "string", "enum": ["text", "video", "image"]}
			},
			"required": ["step_name"]
		}`),
	},
	NameCheckProgress: {
		Name:        NameCheckProgress,
		Description: "Consulta o progresso do onboarding do cliente.",
		Parameters:  schema(`{"type": "object", "properties": {}}`),
	},
	NameCheckUsage: {
		Name:        NameCheckUsage,
		Description: "Consulta o uso do cliente e o risco de churn.",
		Parameters:  schema(`{"type": "object", "properties": {}}`),
	},
	NameSendTip: {
		Name:        NameSendTip,
		Description: "Envia uma dica de uso do produto.",
		Parameters: schema(`{
			"type": "object",
			"properties": {
				"tip_category": {"type": "string", "enum": ["growth", "feature", "best_practice", "seasonal"]},
				"custom_tip": {"type": "string"}
			},
			"required": ["tip_category"]
		}`),
	},
	NameOfferUpgrade: {
		Name:        NameOfferUpgrade,
		Description: "Oferece upgrade de plano, com desconto opcional de até 15%.",
		Parameters: schema(`{
			"type": "object",
			"properties": {
				"target_plan": {"type": "string"},
				"reason": {"type": "string"},
				"discount_percent": {"type": "integer", "minimum": 0, "maximum": 15}
			},
			"required": ["target_plan", "reason"]
		}`),
	},
	NameCollectNPS: {
		Name:        NameCollectNPS,
		Description: "Sem score envia a pesquisa NPS; com score registra a resposta do cliente.",
		Parameters: schema(`{
			"type": "object",
			"properties": {
				"score": {"type": "integer", "minimum": 0, "maximum": 10},
				"feedback": {"type": "string"}
			}
		}`),
	},
}

var roleTools = map[pipeline.Role][]string{
	pipeline.RoleHunter: {
		NameQualifyLead, NameTransferToCloser, NameMarkAsNurture, NameEscalateToHuman,
	},
	pipeline.RoleCloser: {
		NameSendDemoContent, NameGenerateProposal, NameCreatePaymentLink,
		NameScheduleDemoCall, NameUpdateStage, NameEscalateToHuman,
	},
	pipeline.RoleOnboarding: {
		NameCompleteStep, NameSendTutorial, NameCheckProgress, NameEscalateToHuman,
	},
	pipeline.RoleCS: {
		NameCheckUsage, NameSendTip, NameOfferUpgrade, NameCollectNPS, NameEscalateToHuman,
	},
}

// ForRole returns the tool definitions offered to an agent role.
func ForRole(role pipeline.Role) []llm.ToolDefinition {
	names := roleTools[role]
	defs := make([]llm.ToolDefinition, 0, len(names))
	for _, n := range names {
		defs = append(defs, definitions[n])
	}
	return defs
}

// Allowed reports whether role may call the named tool.
func Allowed(role pipeline.Role, name string) bool {
	for _, n := range roleTools[role] {
		if n == name {
			return true
		}
	}
	return false
}

func schema(s string) json.RawMessage {
	var compact map[string]any
	if err := json.Unmarshal([]byte(s), &compact); err != nil {
		panic("tools: invalid schema: " + err.Error())
	}
	b, _ := json.Marshal(compact)
	return b
}
