package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/seedcheck/internal/config"
	"github.com/bryanwahyu/seedcheck/internal/infra/ai/anthropic"
	"github.com/bryanwahyu/seedcheck/internal/infra/ai/openai"
)

func TestNewClient_Anthropic(t *testing.T) {
	c, err := NewClient(config.ModelConfig{Provider: "anthropic", Name: "claude-sonnet-4-20250514"}, "sk-ant")
	require.NoError(t, err)
	assert.IsType(t, &anthropic.Client{}, c)
	assert.Equal(t, "claude-sonnet-4-20250514", c.Model())
}

func TestNewClient_OpenAI(t *testing.T) {
	c, err := NewClient(config.ModelConfig{Provider: "openai", Name: "gpt-4o"}, "sk-oa")
	require.NoError(t, err)
	assert.IsType(t, &openai.Client{}, c)
	assert.Equal(t, "openai", c.Provider())
}

func TestNewClient_BlankKeyMeansDemo(t *testing.T) {
	for _, p := range []string{"anthropic", "openai", ""} {
		c, err := NewClient(config.ModelConfig{Provider: p}, "")
		require.NoError(t, err)
		assert.Nil(t, c, "provider %q", p)
	}
}

func TestNewClient_UnknownProvider(t *testing.T) {
	_, err := NewClient(config.ModelConfig{Provider: "mistral"}, "key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown provider "mistral"`)
}
