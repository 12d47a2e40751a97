package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIClient_ChatWithTools(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-4o-mini",
			"choices": [{
				"index": 0,
				"finish_reason": "tool_calls",
				"message": {
					"role": "assistant",
					"content": "",
					"tool_calls": [{
						"id": "call_1",
						"type": "function",
						"function": {"name": "qualify_lead", "arguments": "{\"company_size\":\"small\"}"}
					}]
				}
			}],
			"usage": {"prompt_tokens": 120, "completion_tokens": 30, "total_tokens": 150}
		}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient(Config{APIKey: "sk-test", BaseURL: srv.URL + "/v1"}, logger.Nop())

	resp, err := client.Chat(context.Background(), ChatRequest{
		System:    "Você é a Ana.",
		Messages:  []ChatMessage{{Role: RoleUser, Content: "Oi"}},
		MaxTokens: 1500,
		Tools: []ToolDefinition{{
			Name:        "qualify_lead",
			Description: "Qualifica o lead",
			Parameters:  json.RawMessage(`{"type":"object","properties":{}}`),
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, StopToolUse, resp.StopReason)
	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "call_1", resp.ToolCalls[0].ID)
	assert.Equal(t, "qualify_lead", resp.ToolCalls[0].Name)
	assert.JSONEq(t, `{"company_size":"small"}`, resp.ToolCalls[0].Arguments)
	assert.Equal(t, Usage{InputTokens: 120, OutputTokens: 30}, resp.Usage)

	msgs := captured["messages"].([]any)
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
	assert.Len(t, captured["tools"], 1)
	assert.EqualValues(t, 1500, captured["max_tokens"])
}

func TestOpenAIClient_TextAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"Olá!"}}],"usage":{"prompt_tokens":10,"completion_tokens":2}}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient(Config{APIKey: "k", BaseURL: srv.URL + "/v1"}, logger.Nop())
	resp, err := client.Chat(context.Background(), ChatRequest{Messages: []ChatMessage{{Role: RoleUser, Content: "Oi"}}})
	require.NoError(t, err)
	assert.Equal(t, "Olá!", resp.Content)
	assert.Equal(t, StopEndTurn, resp.StopReason)
	assert.Empty(t, resp.ToolCalls)
}

func TestOpenAIClient_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"overloaded","type":"server_error"}}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient(Config{APIKey: "k", BaseURL: srv.URL + "/v1"}, logger.Nop())
	_, err := client.Chat(context.Background(), ChatRequest{Messages: []ChatMessage{{Role: RoleUser, Content: "Oi"}}})
	assert.Error(t, err)
}

func TestOpenAIClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	client := NewOpenAIClient(Config{APIKey: "k", BaseURL: srv.URL + "/v1", Timeout: 50 * time.Millisecond}, logger.Nop())

	start := time.Now()
	_, err := client.Chat(context.Background(), ChatRequest{Messages: []ChatMessage{{Role: RoleUser, Content: "Oi"}}})
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}
