package ai

import (
	"github.com/rotisserie/eris"

	"github.com/bryanwahyu/seedcheck/internal/config"
	domai "github.com/bryanwahyu/seedcheck/internal/domain/ai"
	"github.com/bryanwahyu/seedcheck/internal/infra/ai/anthropic"
	"github.com/bryanwahyu/seedcheck/internal/infra/ai/openai"
)

// NewClient creates the model client for the configured provider. A blank
// apiKey returns a nil client, which puts the analysis service in demo mode.
func NewClient(cfg config.ModelConfig, apiKey string) (domai.Client, error) {
	switch cfg.Provider {
	case config.ProviderAnthropic, "":
		if apiKey == "" {
			return nil, nil
		}
		return anthropic.NewClient(apiKey, anthropic.Options{
			Model:     cfg.Name,
			MaxTokens: int64(cfg.MaxTokens),
			BaseURL:   cfg.BaseURL,
		}), nil
	case config.ProviderOpenAI:
		if apiKey == "" {
			return nil, nil
		}
		return openai.NewClient(apiKey, openai.Options{
			Model:     cfg.Name,
			MaxTokens: cfg.MaxTokens,
			BaseURL:   cfg.BaseURL,
		}), nil
	default:
		return nil, eris.Errorf("ai: unknown provider %q", cfg.Provider)
	}
}
