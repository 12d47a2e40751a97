package whatsapp

import (
	"testing"

	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWebhook(t *testing.T) {
	tests := []struct {
		name string
		body string
		want *InboundMessage
	}{
		{
			name: "plain conversation",
			body: `{"event":"messages.upsert","instance":"ekkle-vendas","data":{"key":{"remoteJid":"5511999998888@s.whatsapp.net","fromMe":false,"id":"ABC"},"pushName":"Pr. Carlos","message":{"conversation":" Oi, quero saber mais "}}}`,
			want: &InboundMessage{Phone: "5511999998888", Text: "Oi, quero saber mais", Line: product.Ekkle, PushName: "Pr. Carlos", MessageID: "ABC"},
		},
		{
			name: "extended text defaults to occhiale",
			body: `{"event":"messages.upsert","instance":"main","data":{"key":{"remoteJid":"5511999998888@s.whatsapp.net"},"message":{"extendedTextMessage":{"text":"qual o preço?"}}}}`,
			want: &InboundMessage{Phone: "5511999998888", Text: "qual o preço?", Line: product.Occhiale},
		},
		{
			name: "image caption",
			body: `{"event":"messages.upsert","instance":"occhiale","data":{"key":{"remoteJid":"5511999998888@s.whatsapp.net"},"message":{"imageMessage":{"caption":"minha loja"}}}}`,
			want: &InboundMessage{Phone: "5511999998888", Text: "minha loja", Line: product.Occhiale},
		},
		{
			name: "own message",
			body: `{"event":"messages.upsert","data":{"key":{"remoteJid":"5511999998888@s.whatsapp.net","fromMe":true},"message":{"conversation":"oi"}}}`,
		},
		{
			name: "other event",
			body: `{"event":"connection.update","data":{}}`,
		},
		{
			name: "audio without text",
			body: `{"event":"messages.upsert","data":{"key":{"remoteJid":"5511999998888@s.whatsapp.net"},"message":{"audioMessage":{}}}}`,
		},
		{
			name: "group chat",
			body: `{"event":"messages.upsert","data":{"key":{"remoteJid":"120363025@g.us"},"message":{"conversation":"bom dia"}}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWebhook([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseWebhook([]byte("{"))
	assert.Error(t, err)
}
