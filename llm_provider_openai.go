package chatbot

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"
)

// OpenAILLMProvider implements the LLMProvider interface using OpenAI's
// official SDK. Pointing the client at Groq's OpenAI-compatible base URL
// makes this the Groq provider as well.
type OpenAILLMProvider struct {
	client OpenAIClientProvider
	model  string
}

// OpenAIProviderConfig holds configuration for the provider.
type OpenAIProviderConfig struct {
	// Client is the OpenAIClientProvider implementation to use
	Client OpenAIClientProvider
	// Model specifies which model to use (e.g., "llama-3.1-8b-instant")
	Model string
}

// NewOpenAILLMProvider creates a new provider with the specified configuration.
//
// Example usage:
//
//	client := NewOpenAIClient(
//	    apiKey,
//	    option.WithBaseURL("https://api.groq.com/openai/v1"),
//	)
//	provider := NewOpenAILLMProvider(OpenAIProviderConfig{
//	    Client: client,
//	    Model:  "llama-3.1-8b-instant",
//	})
func NewOpenAILLMProvider(config OpenAIProviderConfig) *OpenAILLMProvider {
	if config.Model == "" {
		config.Model = string(openai.ChatModelGPT3_5Turbo)
	}

	return &OpenAILLMProvider{
		client: config.Client,
		model:  config.Model,
	}
}

// convertToOpenAIMessages converts internal message format to OpenAI's format
func (p *OpenAILLMProvider) convertToOpenAIMessages(messages []LLMMessage) []openai.ChatCompletionMessageParamUnion {
	var openAIMessages []openai.ChatCompletionMessageParamUnion
	for _, msg := range messages {
		switch msg.Role {
		case UserRole:
			openAIMessages = append(openAIMessages, openai.UserMessage(msg.Text))
		case AssistantRole:
			openAIMessages = append(openAIMessages, openai.AssistantMessage(msg.Text))
		case SystemRole:
			openAIMessages = append(openAIMessages, openai.SystemMessage(msg.Text))
		default:
			openAIMessages = append(openAIMessages, openai.UserMessage(msg.Text))
		}
	}
	return openAIMessages
}

// GetResponse generates a response for the given messages with a single
// synchronous completion call.
func (p *OpenAILLMProvider) GetResponse(ctx context.Context, messages []LLMMessage, config LLMRequestConfig) (LLMResponse, error) {
	startTime := time.Now()

	params := openai.ChatCompletionNewParams{
		Messages:    openai.F(p.convertToOpenAIMessages(messages)),
		Model:       openai.F(p.model),
		MaxTokens:   openai.Int(config.maxToken),
		TopP:        openai.Float(config.topP),
		Temperature: openai.Float(config.temperature),
	}

	completion, err := p.client.CreateCompletion(ctx, params)
	if err != nil {
		return LLMResponse{}, fmt.Errorf("completion request failed: %w", err)
	}

	if len(completion.Choices) == 0 {
		return LLMResponse{}, fmt.Errorf("no choices in completion response")
	}

	return LLMResponse{
		Text:             completion.Choices[0].Message.Content,
		TotalInputToken:  int(completion.Usage.PromptTokens),
		TotalOutputToken: int(completion.Usage.CompletionTokens),
		CompletionTime:   time.Since(startTime).Seconds(),
	}, nil
}
