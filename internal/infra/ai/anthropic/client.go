package anthropic

import (
	"context"
	"errors"
	"net/http"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	domai "github.com/bryanwahyu/seedcheck/internal/domain/ai"
)

const (
	// DefaultModel is the Claude model used when none is configured.
	DefaultModel = "claude-sonnet-4-20250514"
	// DefaultMaxTokens bounds the reply length.
	DefaultMaxTokens = 4000
)

// modelPricing holds per-million-token pricing for known models.
var modelPricing = map[string][2]float64{
	// model → {input $/MTok, output $/MTok}
	"claude-sonnet-4-20250514":   {3.00, 15.00},
	"claude-sonnet-4-5-20250929": {3.00, 15.00},
	"claude-haiku-4-5-20251001":  {0.80, 4.00},
	"claude-opus-4-6":            {15.00, 75.00},
}

// Usage tracks token consumption of one call.
type Usage struct {
	InputTokens  int64
	OutputTokens int64
}

// EstimateCost returns the estimated USD cost, 0 for unknown models.
func (u Usage) EstimateCost(model string) float64 {
	p, ok := modelPricing[model]
	if !ok {
		return 0
	}
	return float64(u.InputTokens)/1e6*p[0] + float64(u.OutputTokens)/1e6*p[1]
}

// Options configures the client.
type Options struct {
	Model     string
	MaxTokens int64
	BaseURL   string
}

// Client implements domai.Client with the Messages API. One request per
// call; SDK retries are disabled.
type Client struct {
	client    sdk.Client
	model     string
	maxTokens int64
}

// NewClient creates a Claude client.
func NewClient(apiKey string, opts Options) *Client {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	return &Client{
		client:    sdk.NewClient(reqOpts...),
		model:     opts.Model,
		maxTokens: opts.MaxTokens,
	}
}

func (c *Client) Provider() string { return "anthropic" }

func (c *Client) Model() string { return c.model }

// Complete sends the system instruction and one user message and returns the
// text of the first text block in the reply.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	msg, err := c.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: c.maxTokens,
		System:    []sdk.TextBlockParam{{Text: system}},
		Messages:  []sdk.MessageParam{sdk.NewUserMessage(sdk.NewTextBlock(user))},
	})
	if err != nil {
		var apiErr *sdk.Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
			return "", eris.Wrapf(domai.ErrQuotaExceeded, "anthropic: create message: %v", err)
		}
		return "", eris.Wrap(err, "anthropic: create message")
	}

	usage := Usage{InputTokens: msg.Usage.InputTokens, OutputTokens: msg.Usage.OutputTokens}
	zap.L().Info("cost attribution",
		zap.String("model", c.model),
		zap.Int64("input_tokens", usage.InputTokens),
		zap.Int64("output_tokens", usage.OutputTokens),
		zap.Float64("estimated_cost_usd", usage.EstimateCost(c.model)),
		zap.String("stop_reason", string(msg.StopReason)),
	)

	for _, b := range msg.Content {
		if b.Type == "text" {
			return b.Text, nil
		}
	}
	return "", eris.New("anthropic: response has no text block")
}
