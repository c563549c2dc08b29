package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domai "github.com/bryanwahyu/seedcheck/internal/domain/ai"
)

func chatServer(t *testing.T, check func(body map[string]any), status int, resp any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/chat/completions")
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if check != nil {
			check(body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(resp) //nolint:errcheck
	}))
}

func completion(content string) map[string]any {
	return map[string]any{
		"id":     "chatcmpl-1",
		"object": "chat.completion",
		"model":  DefaultModel,
		"choices": []map[string]any{
			{"index": 0, "finish_reason": "stop", "message": map[string]any{"role": "assistant", "content": content}},
		},
		"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
	}
}

func TestClient_Complete(t *testing.T) {
	ts := chatServer(t, func(body map[string]any) {
		assert.Equal(t, DefaultModel, body["model"])
		assert.EqualValues(t, DefaultMaxTokens, body["max_tokens"])
		assert.Nil(t, body["max_completion_tokens"])
		msgs := body["messages"].([]any)
		require.Len(t, msgs, 2)
		assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
		assert.Equal(t, "rubric", msgs[0].(map[string]any)["content"])
		assert.Equal(t, "user", msgs[1].(map[string]any)["role"])
	}, http.StatusOK, completion("```json\n{}\n```"))
	defer ts.Close()

	c := NewClient("test-key", Options{BaseURL: ts.URL + "/v1"})
	out, err := c.Complete(context.Background(), "rubric", "answers")
	require.NoError(t, err)
	assert.Equal(t, "```json\n{}\n```", out)
	assert.Equal(t, "openai", c.Provider())
}

func TestClient_Complete_ReasoningModel(t *testing.T) {
	ts := chatServer(t, func(body map[string]any) {
		assert.EqualValues(t, 500, body["max_completion_tokens"])
		assert.Nil(t, body["max_tokens"])
	}, http.StatusOK, completion("ok"))
	defer ts.Close()

	c := NewClient("test-key", Options{BaseURL: ts.URL + "/v1", Model: "o3-mini", MaxTokens: 500})
	_, err := c.Complete(context.Background(), "rubric", "answers")
	require.NoError(t, err)
}

func TestClient_Complete_NoChoices(t *testing.T) {
	ts := chatServer(t, nil, http.StatusOK, map[string]any{"id": "x", "choices": []any{}})
	defer ts.Close()

	c := NewClient("test-key", Options{BaseURL: ts.URL + "/v1"})
	_, err := c.Complete(context.Background(), "rubric", "answers")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestClient_Complete_RateLimited(t *testing.T) {
	ts := chatServer(t, nil, http.StatusTooManyRequests, map[string]any{
		"error": map[string]any{"message": "quota", "type": "insufficient_quota", "code": "insufficient_quota"},
	})
	defer ts.Close()

	c := NewClient("test-key", Options{BaseURL: ts.URL + "/v1"})
	_, err := c.Complete(context.Background(), "rubric", "answers")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domai.ErrQuotaExceeded))
}

func TestIsReasoningModel(t *testing.T) {
	assert.True(t, isReasoningModel("o1-preview"))
	assert.True(t, isReasoningModel("gpt-5-mini"))
	assert.False(t, isReasoningModel("gpt-4o"))
}
