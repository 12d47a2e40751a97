package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		text string
		want Intent
	}{
		{"Qual o preço?", IntentPricing},
		{"Quanto CUSTA o plano pro", IntentPricing},
		{"Quero ver uma demonstração", IntentDemo},
		{"Não tenho interesse", IntentNotInterested},
		{"não quero, obrigado", IntentNotInterested},
		{"Sim, quero!", IntentInterested},
		{"Muito obrigada", IntentGoodbye},
		{"Olá", IntentGeneral},
		{"verdade", IntentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIntent(tt.text))
		})
	}
}

func TestDetectObjection(t *testing.T) {
	tests := []struct {
		text  string
		want  Objection
		found bool
	}{
		{"Achei caro demais", ObjectionPrice, true},
		{"Já tenho um sistema", ObjectionAlreadyHave, true},
		{"ja uso planilha", ObjectionAlreadyHave, true},
		{"Agora não tenho tempo", ObjectionNoTime, true},
		{"estou ocupada", ObjectionNoTime, true},
		{"Preciso pensar melhor", ObjectionNeedThink, true},
		{"isso não é pra mim", ObjectionNotForMe, true},
		{"Olá, tudo bem?", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := DetectObjection(tt.text)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, " nao e pra mim ", Normalize("Não é pra mim!"))
	assert.Equal(t, "  ", Normalize("?!"))
}

func TestAnalyzeSentiment(t *testing.T) {
	assert.Equal(t, SentimentPositive, AnalyzeSentiment("Adorei, perfeito!").Sentiment)
	assert.Equal(t, SentimentNegative, AnalyzeSentiment("Não, achei caro e ruim").Sentiment)
	assert.Equal(t, SentimentNeutral, AnalyzeSentiment("Bom dia, não sei").Sentiment)
}

func TestExtractEmail(t *testing.T) {
	email, ok := ExtractEmail("meu email é joao.silva@otica.com.br, obrigado")
	assert.True(t, ok)
	assert.Equal(t, "joao.silva@otica.com.br", email)

	_, ok = ExtractEmail("sem email")
	assert.False(t, ok)
}
