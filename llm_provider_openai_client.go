package chatbot

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIClientProvider defines the interface for the chat-completion API.
// Groq exposes an OpenAI-compatible endpoint, so the same client serves both.
type OpenAIClientProvider interface {
	// CreateCompletion creates a new chat completion.
	CreateCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error)
}

// OpenAIClient implements the OpenAIClientProvider interface using OpenAI's official SDK.
type OpenAIClient struct {
	client *openai.Client
}

// NewOpenAIClient creates a new instance of OpenAIClient with the provided
// API key and optional client options.
//
// Example usage:
//
//	// Against OpenAI
//	client := NewOpenAIClient("your-api-key")
//
//	// Against Groq's OpenAI-compatible endpoint
//	client := NewOpenAIClient(
//	    "your-groq-api-key",
//	    option.WithBaseURL("https://api.groq.com/openai/v1"),
//	)
func NewOpenAIClient(apiKey string, opts ...option.RequestOption) *OpenAIClient {
	opts = append(opts, option.WithAPIKey(apiKey))
	return &OpenAIClient{
		client: openai.NewClient(opts...),
	}
}

// CreateCompletion implements the OpenAIClientProvider interface using the OpenAI client.
func (c *OpenAIClient) CreateCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	return c.client.Chat.Completions.New(ctx, params)
}
