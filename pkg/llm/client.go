// Package llm provides the text-generation client used for result summaries
// and test draft synthesis. The wire protocol is OpenAI-compatible chat
// completions, so any gateway exposing that surface works.
package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client generates a single completion for a prompt. Implementations must be
// safe for concurrent use.
type Client interface {
	// Complete sends system+user messages to the model and returns the
	// assistant's text.
	Complete(ctx context.Context, model, system, prompt string) (string, error)
}

// OpenAIClient is the production Client over an OpenAI-compatible endpoint.
type OpenAIClient struct {
	api openai.Client
}

// NewOpenAIClient creates a client. baseURL may be empty for the public API.
func NewOpenAIClient(apiKey, baseURL string) *OpenAIClient {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAIClient{api: openai.NewClient(opts...)}
}

// Complete implements Client.
func (c *OpenAIClient) Complete(ctx context.Context, model, system, prompt string) (string, error) {
	messages := []openai.ChatCompletionMessageParamUnion{}
	if system != "" {
		messages = append(messages, openai.SystemMessage(system))
	}
	messages = append(messages, openai.UserMessage(prompt))

	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
