package llm

import (
	"context"
	"errors"
	"fmt"
)

// Client abstracts chat-completion providers. Complete sends a system+user
// message pair and returns the raw text of the model's reply.
type Client interface {
	Complete(ctx context.Context, system, user string, temperature float32) (string, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm client not configured")

// ProviderError reports a failed provider call (network, auth, quota) with the
// underlying cause preserved for logs.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("llm provider: %v", e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// Complete returns a ProviderError wrapping ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, system, user string, temperature float32) (string, error) {
	_ = ctx
	_ = system
	_ = user
	_ = temperature
	return "", &ProviderError{Err: ErrNotConfigured}
}
