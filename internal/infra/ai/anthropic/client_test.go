package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domai "github.com/bryanwahyu/seedcheck/internal/domain/ai"
)

func messageResponse(text string) map[string]any {
	return map[string]any{
		"id":   "msg_test_001",
		"type": "message",
		"role": "assistant",
		"content": []map[string]any{
			{"type": "text", "text": text},
		},
		"model":       DefaultModel,
		"stop_reason": "end_turn",
		"usage": map[string]any{
			"input_tokens":  120,
			"output_tokens": 40,
		},
	}
}

func TestClient_Complete(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "/messages")
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, DefaultModel, body["model"])
		assert.EqualValues(t, 4000, body["max_tokens"])

		system, ok := body["system"].([]any)
		require.True(t, ok)
		require.Len(t, system, 1)
		assert.Equal(t, "rubric", system[0].(map[string]any)["text"])

		msgs, ok := body["messages"].([]any)
		require.True(t, ok)
		require.Len(t, msgs, 1)
		assert.Equal(t, "user", msgs[0].(map[string]any)["role"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(messageResponse(`{"overallScore": 70}`)) //nolint:errcheck
	}))
	defer ts.Close()

	c := NewClient("test-key", Options{BaseURL: ts.URL})
	out, err := c.Complete(context.Background(), "rubric", "answers")
	require.NoError(t, err)
	assert.Equal(t, `{"overallScore": 70}`, out)
	assert.Equal(t, "anthropic", c.Provider())
	assert.Equal(t, DefaultModel, c.Model())
}

func TestClient_Complete_RateLimited(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"type":  "error",
			"error": map[string]any{"type": "rate_limit_error", "message": "slow down"},
		})
	}))
	defer ts.Close()

	c := NewClient("test-key", Options{BaseURL: ts.URL})
	_, err := c.Complete(context.Background(), "rubric", "answers")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domai.ErrQuotaExceeded))
	assert.Equal(t, int32(1), calls.Load(), "no retry")
}

func TestClient_Complete_ServerError(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"type":  "error",
			"error": map[string]any{"type": "api_error", "message": "boom"},
		})
	}))
	defer ts.Close()

	c := NewClient("test-key", Options{BaseURL: ts.URL, Model: "claude-haiku-4-5-20251001", MaxTokens: 100})
	_, err := c.Complete(context.Background(), "rubric", "answers")
	require.Error(t, err)
	assert.False(t, errors.Is(err, domai.ErrQuotaExceeded))
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "claude-haiku-4-5-20251001", c.Model())
}

func TestUsage_EstimateCost(t *testing.T) {
	u := Usage{InputTokens: 1_000_000, OutputTokens: 1_000_000}
	assert.InDelta(t, 18.0, u.EstimateCost("claude-sonnet-4-20250514"), 0.0001)
	assert.Zero(t, u.EstimateCost("unknown-model"))
}
