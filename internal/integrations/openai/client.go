// Package openai implements the model boundary on top of the official
// OpenAI Go SDK.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"insurance-agent/internal/domain"
)

// Client wraps the OpenAI chat completions API behind the Completer contract
// consumed by the dispatch engine.
type Client struct {
	api         openai.Client
	model       string
	temperature float64
}

type Option func(*Client)

// WithRequestOptions forwards extra SDK request options, e.g. a custom base
// URL or HTTP client in tests.
func WithRequestOptions(opts ...option.RequestOption) Option {
	return func(c *Client) {
		c.api = openai.NewClient(opts...)
	}
}

// NewClient creates a Client. The API key is required; model defaults to
// gpt-3.5-turbo when empty.
func NewClient(apiKey, model string, temperature float64, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("openai: api key must not be empty")
	}
	if model == "" {
		model = "gpt-3.5-turbo"
	}
	c := &Client{
		api:         openai.NewClient(option.WithAPIKey(apiKey)),
		model:       model,
		temperature: temperature,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Complete sends the assembled prompt and returns the assistant's reply text.
func (c *Client) Complete(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	if len(messages) == 0 {
		return "", errors.New("openai: messages must not be empty")
	}

	params := openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: toSDKMessages(messages),
	}
	if c.temperature > 0 {
		params.Temperature = openai.Float(c.temperature)
	}

	resp, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}

func toSDKMessages(messages []domain.ChatMessage) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case domain.RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case domain.RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}
