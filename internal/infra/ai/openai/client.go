package openai

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	domai "github.com/bryanwahyu/seedcheck/internal/domain/ai"
)

const (
	DefaultModel     = "gpt-4o"
	DefaultMaxTokens = 4000
)

// Options configures the client. BaseURL is only set in tests or when
// routing through a compatible gateway.
type Options struct {
	Model     string
	MaxTokens int
	BaseURL   string
}

type Client struct {
	*openai.Client
	model     string
	maxTokens int
}

func NewClient(apiKey string, opts Options) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	return &Client{Client: openai.NewClientWithConfig(cfg), model: opts.Model, maxTokens: opts.MaxTokens}
}

func (c *Client) Provider() string { return "openai" }

func (c *Client) Model() string { return c.model }

// Complete sends one system and one user message and returns the first
// choice's content.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	}
	// reasoning models (o1/o3/o4/gpt-5*) take MaxCompletionTokens instead of MaxTokens
	if isReasoningModel(c.model) {
		req.MaxCompletionTokens = c.maxTokens
	} else {
		req.MaxTokens = c.maxTokens
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return "", eris.Wrapf(domai.ErrQuotaExceeded, "openai: create chat completion: %v", err)
		}
		return "", eris.Wrap(err, "openai: create chat completion")
	}
	if len(resp.Choices) == 0 {
		return "", eris.New("openai: response has no choices")
	}

	zap.L().Info("cost attribution",
		zap.String("model", c.model),
		zap.Int("input_tokens", resp.Usage.PromptTokens),
		zap.Int("output_tokens", resp.Usage.CompletionTokens),
		zap.String("finish_reason", string(resp.Choices[0].FinishReason)),
	)
	return resp.Choices[0].Message.Content, nil
}

func isReasoningModel(model string) bool {
	for _, p := range []string{"o1", "o3", "o4", "gpt-5"} {
		if strings.HasPrefix(model, p) {
			return true
		}
	}
	return false
}
