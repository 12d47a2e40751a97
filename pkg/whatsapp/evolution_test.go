package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *EvolutionClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewEvolutionClient(map[product.Line]Instance{
		product.Occhiale: {BaseURL: srv.URL, APIKey: "secret", Name: "occhiale-sales"},
	}, logger.Nop(), nil)
}

func TestEvolutionClient_Send(t *testing.T) {
	var got map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/message/sendText/occhiale-sales", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("apikey"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"key":{"id":"ABC"}}`))
	})

	ok := client.Send(context.Background(), "(11) 99999-0000", "Olá **João**", product.Occhiale)
	assert.True(t, ok)
	assert.Equal(t, "5511999990000@s.whatsapp.net", got["number"])
	assert.Equal(t, "Olá *João*", got["text"])
}

func TestEvolutionClient_SendFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		line    product.Line
		phone   string
		wantHit bool
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"boom"}`, line: product.Occhiale, phone: "11999990000", wantHit: true},
		{name: "success false", status: http.StatusOK, body: `{"success":false,"error":"not on whatsapp"}`, line: product.Occhiale, phone: "11999990000", wantHit: true},
		{name: "unconfigured line", status: http.StatusOK, body: `{}`, line: product.Ekkle, phone: "11999990000"},
		{name: "invalid phone", status: http.StatusOK, body: `{}`, line: product.Occhiale, phone: "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := false
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				hit = true
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			assert.False(t, client.Send(context.Background(), tt.phone, "oi", tt.line))
			assert.Equal(t, tt.wantHit, hit)
		})
	}
}

func TestEvolutionClient_SendMedia(t *testing.T) {
	var got sendMediaPayload
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/message/sendMedia/occhiale-sales", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{}`))
	})

	ok := client.SendMedia(context.Background(), "5511999990000", Media{Kind: "video", URL: "https://x/demo.mp4", Caption: "Demo"}, product.Occhiale)
	assert.True(t, ok)
	assert.Equal(t, "video", got.Media.Kind)
	assert.Equal(t, "https://x/demo.mp4", got.Media.URL)
}

func TestEvolutionClient_ConnectionState(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/instance/connectionState/occhiale-sales", r.URL.Path)
		_, _ = w.Write([]byte(`{"instance":{"instanceName":"occhiale-sales","state":"open"}}`))
	})

	state, err := client.ConnectionState(context.Background(), product.Occhiale)
	require.NoError(t, err)
	assert.True(t, state.Connected)
	assert.Equal(t, "open", state.State)

	_, err = client.ConnectionState(context.Background(), product.Ekkle)
	assert.ErrorIs(t, err, ErrInstanceNotConfigured)
}

func TestFormatMessage(t *testing.T) {
	assert.Equal(t, "*Plano Pro* por _apenas_ ```R$ 397```", FormatMessage("  **Plano Pro** por __apenas__ `R$ 397`  "))
	assert.Equal(t, "sem formatação", FormatMessage("sem formatação"))
}
