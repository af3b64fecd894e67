package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"recommendation-backend/internal/llm"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Config carries everything needed to reach an OpenAI-compatible endpoint.
// BaseURL selects the provider (any chat-completions compatible host works),
// Model selects the backing LLM.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Client implements llm.Client using the OpenAI chat completions wire format.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient constructs a chat-completions client from explicit configuration.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for OpenAI")
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Complete sends the system+user pair and returns the raw reply text.
func (c *Client) Complete(ctx context.Context, system, user string, temperature float32) (string, error) {
	reqBody := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: temperature,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", &llm.ProviderError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", &llm.ProviderError{Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return "", &llm.ProviderError{Err: fmt.Errorf("request timeout: %w", err)}
		}
		return "", &llm.ProviderError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &llm.ProviderError{Err: err}
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		if resp.StatusCode >= 400 {
			return "", &llm.ProviderError{Err: fmt.Errorf("http status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))}
		}
		return "", &llm.ProviderError{Err: fmt.Errorf("response parse: %w", err)}
	}
	if parsed.Error != nil {
		return "", &llm.ProviderError{Err: fmt.Errorf("http status %d: %s (%s)", resp.StatusCode, parsed.Error.Message, parsed.Error.Type)}
	}
	if resp.StatusCode >= 400 {
		return "", &llm.ProviderError{Err: fmt.Errorf("http status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))}
	}
	if len(parsed.Choices) == 0 {
		return "", &llm.ProviderError{Err: fmt.Errorf("response missing choices")}
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", &llm.ProviderError{Err: fmt.Errorf("response empty content")}
	}
	return content, nil
}

var _ llm.Client = (*Client)(nil)
