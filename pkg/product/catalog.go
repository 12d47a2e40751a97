package product

import "regexp"

var brazilCities = []string{
	"São Paulo", "Campinas", "Santos", "Ribeirão Preto", "São José dos Campos",
	"Sorocaba", "Osasco", "Guarulhos", "São Bernardo do Campo", "Santo André",
	"Rio de Janeiro", "Niterói", "Petrópolis", "Nova Iguaçu", "Duque de Caxias",
	"Belo Horizonte", "Uberlândia", "Juiz de Fora", "Contagem", "Betim",
	"Curitiba", "Porto Alegre", "Florianópolis", "Londrina", "Maringá",
	"Salvador", "Recife", "Fortaleza", "Natal", "João Pessoa",
	"Brasília", "Goiânia", "Campo Grande", "Cuiabá",
	"Manaus", "Belém", "Vitória",
}

func objection(key, pattern, response string) Objection {
	return Objection{Key: key, Trigger: regexp.MustCompile("(?i)" + pattern), Response: response}
}

func occhialeConfig() *Config {
	return &Config{
		Line:        Occhiale,
		DisplayName: "Occhiale",
		AgentName:   "Ana",
		Pitch:       "Plataforma completa para óticas: loja virtual, atendente IA no WhatsApp, estoque e vendas online.",
		Instance:    "occhiale-sales",
		ScrapeQuery: "ótica",
		ScrapeCities: brazilCities,
		Plans: []Plan{
			{
				Name: "Essencial", PriceCents: 19700, Interval: "monthly", AnnualMultiplier: 10,
				Features: []string{"Loja virtual profissional", "Atendente IA no WhatsApp", "Catálogo ilimitado", "Dashboard de vendas"},
			},
			{
				Name: "Pro", PriceCents: 39700, Interval: "monthly", AnnualMultiplier: 10,
				Features: []string{"Tudo do Essencial", "Integração com estoque", "Campanhas automatizadas", "Multiusuário (3 pessoas)", "Suporte prioritário"},
			},
		},
		Objections: []Objection{
			objection("price", `caro|preço|custo|investimento|dinheiro`,
				"Entendo a preocupação com o investimento! Se a loja online vender só 2 óculos a mais por mês, o sistema já se pagou. E o atendente IA trabalha 24h sem salário."),
			objection("already_have", `já tenho site|tenho loja|já uso`,
				"Que bom que você já está no digital! A diferença é a integração: a loja conversa com o WhatsApp pela IA e o cliente fecha a compra ali mesmo."),
			objection("tech", `não entendo de tecnologia|sou leigo|complicado`,
				"Pode ficar tranquilo(a)! Nossa equipe faz toda a configuração e o treinamento. Em uma semana você já está vendendo online."),
			objection("think", `preciso pensar|vou analisar|conversar|sócio`,
				"Claro, é uma decisão importante! Posso te mandar um case de uma ótica parecida com a sua ou agendar uma demo de 15 minutos?"),
			objection("time", `não tenho tempo|ocupado|corrido`,
				"Justamente por isso o Occhiale ajuda: a IA resolve a maior parte das dúvidas sozinha e você só entra para fechar a venda."),
			objection("offline", `meus clientes não compram online|preferem presencial`,
				"A maioria das pessoas pesquisa online antes de ir à loja. Com o Occhiale, até quem compra no balcão conhece seus óculos antes."),
			objection("later", `vou esperar|mais tarde|próximo mês`,
				"Quantas vendas você perde por semana sem presença online? Uma por semana já paga o sistema. Que tal começarmos agora?"),
		},
		CaseStudies: []CaseStudy{
			{Customer: "Ótica Visão Clara", City: "São Paulo/SP", Result: "300% de aumento nas vendas online em 3 meses"},
			{Customer: "Ótica do Centro", City: "Belo Horizonte/MG", Result: "R$ 15.000 em vendas online no primeiro mês"},
			{Customer: "Ótica Família", City: "Porto Alegre/RS", Result: "60% menos tempo gasto no WhatsApp"},
		},
		OnboardingSteps: []string{
			"welcome", "store_setup", "products_upload", "whatsapp_connect",
			"ai_agent_config", "payment_setup", "first_sale", "training_complete",
		},
		StepTutorials: map[string]string{
			"welcome":           "Bem-vindo(a) ao Occhiale! Acesse o painel com o e-mail cadastrado e confira o checklist de implantação.",
			"store_setup":       "Em Configurações > Loja, envie o logo, as cores e o endereço da ótica.",
			"products_upload":   "Em Produtos > Importar, suba a planilha de armações e lentes ou cadastre um a um.",
			"whatsapp_connect":  "Em Integrações > WhatsApp, leia o QR Code com o celular da loja.",
			"ai_agent_config":   "Em Atendente IA, ajuste o nome, o tom de voz e os horários de atendimento.",
			"payment_setup":     "Em Pagamentos, informe a conta para receber PIX, cartão e boleto.",
			"first_sale":        "Compartilhe o link da loja com 10 clientes fiéis e acompanhe o primeiro pedido no painel.",
			"training_complete": "Assista ao treinamento final e marque a equipe que vai operar o sistema.",
		},
		NurtureDrip: []string{
			"Oi! Sabia que a maioria dos clientes pesquisa óculos online antes de ir à loja? Estar no digital faz diferença. 👓",
			"Uma ótica de BH vendeu R$ 15 mil online no primeiro mês com o Occhiale. Quer saber como?",
			"Dica rápida: responder o WhatsApp em até 5 minutos dobra a chance de venda. Nosso atendente IA faz isso 24h. 🤖",
			"Estamos com condições especiais para óticas neste mês. Posso te mandar os detalhes?",
			"Última mensagem por aqui! Se quiser conhecer o Occhiale é só responder. Boas vendas! 😊",
		},
		Tips: map[string][]string{
			"growth": {
				"Publique 3 armações novas por semana no Instagram com o link da loja.",
				"Crie um cupom de primeira compra para clientes que chegam pelo WhatsApp.",
				"Peça avaliações no Google para quem retirou óculos nos últimos 30 dias.",
			},
			"feature": {
				"Você já usa o provador virtual? Ele aumenta o tempo do cliente na loja.",
				"Os relatórios de vendas mostram quais marcas giram mais, confira no painel.",
				"O atendente IA pode agendar exames de vista, ative em Configurações.",
			},
			"best_practice": {
				"Fotos com fundo branco e boa luz vendem mais armações.",
				"Responda as dúvidas de lente com tabela de preços clara.",
				"Mantenha o estoque do site sincronizado para evitar cancelamentos.",
			},
			"seasonal": {
				"Volta às aulas é época de óculos infantis: destaque a seção kids.",
				"No verão, óculos de sol com proteção UV são o carro-chefe.",
				"Dia dos Pais e Dia das Mães pedem combos com desconto.",
			},
		},
		DemoContent: map[string]DemoAsset{
			"video_storefront":     {Kind: "video", URL: "https://occhiale.com.br/demo/storefront.mp4", Caption: "🎬 Veja como fica a loja virtual da sua ótica!"},
			"video_whatsapp_agent": {Kind: "video", URL: "https://occhiale.com.br/demo/whatsapp-agent.mp4", Caption: "🤖 O atendente IA em ação, 24 horas por dia."},
			"video_dashboard":      {Kind: "video", URL: "https://occhiale.com.br/demo/dashboard.mp4", Caption: "📊 O painel de vendas, estoque e clientes em tempo real."},
			"screenshot_demo":      {Kind: "image", URL: "https://occhiale.com.br/demo/screenshot.png", Caption: "📱 A loja no celular do seu cliente."},
			"case_study":           {Kind: "text"},
		},
		Fallback:         "Olá! Sou a Ana da Occhiale. Estou com uma instabilidade no momento, mas já já te respondo. 🙏",
		FirstContact:     "Oi, {name}! Aqui é a Ana, da Occhiale. Ajudamos óticas a vender mais com loja online e atendimento IA no WhatsApp. Posso te contar como funciona?",
		PaymentConfirmed: "🎉 Pagamento confirmado! Bem-vindo(a) ao Occhiale. Vou te acompanhar na implantação a partir de agora.",
		PaymentFailed:    "Ops, o pagamento não foi aprovado. Quer que eu gere um novo link ou prefere outra forma de pagamento?",
	}
}

func ekkleConfig() *Config {
	return &Config{
		Line:        Ekkle,
		DisplayName: "EKKLE",
		AgentName:   "Sofia",
		Pitch:       "Plataforma de gestão para igrejas: células, membros, cursos EBD, eventos e comunicação integrada.",
		Instance:    "ekkle-sales",
		ScrapeQuery: "igreja evangélica",
		ScrapeCities: brazilCities,
		Plans: []Plan{
			{
				Name: "Mensal", PriceCents: 5700, Interval: "monthly",
				Features: []string{"Gestão de células", "Membros ilimitados", "Cursos e EBD", "Financeiro básico", "App para líderes"},
			},
			{
				Name: "Anual", PriceCents: 39700, Interval: "annual",
				Features: []string{"Tudo do Mensal", "4 meses de economia", "Eventos avançado", "Relatórios executivos", "Suporte prioritário"},
			},
		},
		Objections: []Objection{
			objection("price", `caro|preço|custo|dinheiro|ofertas`,
				"Pastor(a), R$ 57 por mês é menos de R$ 2 por dia, e o EKKLE devolve horas da sua semana. 🙏"),
			objection("already_have", `já uso|já tenho|planilha|papel`,
				"Que bom que vocês já se organizam! O EKKLE automatiza isso: o líder manda o relatório da célula pelo celular e você acompanha tudo em tempo real."),
			objection("tech", `não entendo tecnologia|complicado|difícil`,
				"É tão simples quanto o WhatsApp, e nossa equipe faz a instalação e o treinamento sem custo."),
			objection("small_church", `igreja pequena|poucos membros|começando`,
				"Toda grande árvore começou pequena! Com os dados organizados desde já, o crescimento fica muito mais fácil de acompanhar. 🌱"),
			objection("think", `preciso orar|pensar|conversar|diretoria`,
				"Claro, decisões importantes pedem oração. Posso enviar o testemunho de outros pastores ou agendar uma demo para a liderança?"),
			objection("time", `não tenho tempo|ocupado|ministério`,
				"Por isso mesmo o EKKLE ajuda: ele automatiza frequência e relatórios para sobrar tempo para pastorear."),
			objection("old_congregation", `congregação velha|não usa celular|resistência`,
				"Ninguém precisa mudar a rotina: só o líder usa o app para o relatório, e você ganha a visão geral da igreja."),
		},
		CaseStudies: []CaseStudy{
			{Customer: "Igreja Águas Vivas", City: "São Paulo/SP", Result: "40% de crescimento nas células em 6 meses"},
			{Customer: "Igreja Nova Vida", City: "Rio de Janeiro/RJ", Result: "15 horas semanais economizadas na administração"},
			{Customer: "Igreja Fonte de Vida", City: "Belo Horizonte/MG", Result: "200 novos convertidos acompanhados digitalmente"},
		},
		OnboardingSteps: []string{
			"welcome", "church_setup", "cells_import", "members_import",
			"leaders_invite", "courses_setup", "finance_setup", "training_complete",
		},
		StepTutorials: map[string]string{
			"welcome":           "Bem-vindo(a) ao EKKLE! Entre no painel com o e-mail cadastrado e veja o checklist de implantação.",
			"church_setup":      "Em Configurações > Igreja, preencha nome, endereço, logo e horários de culto.",
			"cells_import":      "Em Células > Importar, suba a planilha com as células e seus endereços.",
			"members_import":    "Em Membros > Importar, envie a lista de membros com telefone.",
			"leaders_invite":    "Em Líderes, convide cada líder de célula pelo WhatsApp.",
			"courses_setup":     "Em Cursos, cadastre as turmas de EBD e discipulado.",
			"finance_setup":     "Em Financeiro, configure as categorias de dízimos e ofertas.",
			"training_complete": "Assista ao treinamento final com a liderança e libere o app para os líderes.",
		},
		NurtureDrip: []string{
			"Paz, pastor(a)! Sabia que igrejas com células bem acompanhadas crescem mais rápido? 🙏",
			"A Igreja Águas Vivas cresceu 40% nas células em 6 meses acompanhando tudo pelo EKKLE.",
			"Dica: relatórios semanais de célula ajudam a identificar quem precisa de cuidado pastoral.",
			"Temos uma condição especial para igrejas neste mês. Posso enviar os detalhes?",
			"Última mensagem por aqui! Quando quiser conhecer o EKKLE é só responder. Deus abençoe! 😊",
		},
		Tips: map[string][]string{
			"growth": {
				"Multiplique células que passam de 12 participantes, o painel mostra quais estão prontas.",
				"Acompanhe visitantes na primeira semana com uma mensagem do líder.",
				"Use os relatórios de frequência para planejar novos pontos de célula.",
			},
			"feature": {
				"O app dos líderes permite registrar presença offline.",
				"O módulo de cursos emite certificados automaticamente.",
				"O financeiro gera o relatório mensal para a diretoria em um clique.",
			},
			"best_practice": {
				"Defina um dia fixo para os líderes enviarem relatório.",
				"Mantenha os cadastros de membros com telefone atualizado.",
				"Reúna os líderes uma vez por mês para olhar os números juntos.",
			},
			"seasonal": {
				"Páscoa e Natal trazem visitantes: prepare um fluxo de acompanhamento.",
				"Início de semestre é ótimo para abrir novas turmas de EBD.",
				"Retiros e conferências podem ter inscrição pelo módulo de eventos.",
			},
		},
		DemoContent: map[string]DemoAsset{
			"video_storefront":     {Kind: "video", URL: "https://ekkle.com.br/demo/cells.mp4", Caption: "🎬 O módulo de células em ação!"},
			"video_whatsapp_agent": {Kind: "video", URL: "https://ekkle.com.br/demo/whatsapp.mp4", Caption: "🤖 Comunicação integrada com os membros pelo WhatsApp."},
			"video_dashboard":      {Kind: "video", URL: "https://ekkle.com.br/demo/dashboard.mp4", Caption: "📊 O painel pastoral: crescimento, frequência e finanças."},
			"screenshot_demo":      {Kind: "image", URL: "https://ekkle.com.br/demo/screenshot.png", Caption: "📱 O app no celular dos líderes."},
			"case_study":           {Kind: "text"},
		},
		Fallback:         "Oi! Sou a Sofia do EKKLE. Estou com um probleminha técnico, mas logo te respondo. 🙏",
		FirstContact:     "Paz, {name}! Aqui é a Sofia, do EKKLE. Ajudamos igrejas a organizar células, membros e cursos num só lugar. Posso te mostrar como funciona?",
		PaymentConfirmed: "🎉 Pagamento confirmado! Seja bem-vindo(a) ao EKKLE. Vou acompanhar a implantação com você a partir de agora.",
		PaymentFailed:    "O pagamento não foi aprovado. Quer que eu gere um novo link ou prefere outra forma de pagamento?",
	}
}
