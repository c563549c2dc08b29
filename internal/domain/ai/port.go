package ai

import "context"

// Client is a single-shot generative model call: instruction + payload in, raw text out.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
	Provider() string
	Model() string
}
