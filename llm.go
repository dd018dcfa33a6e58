package chatbot

import (
	"context"
)

// LLMMessageRole defines the role of a message in the completion request.
type LLMMessageRole string

const (
	// SystemRole represents the system instruction message
	SystemRole LLMMessageRole = "system"
	// UserRole represents messages from the user
	UserRole LLMMessageRole = "user"
	// AssistantRole represents messages from the AI assistant
	AssistantRole LLMMessageRole = "assistant"
)

// LLMMessage represents a single message in the sequence sent to the
// completion service.
type LLMMessage struct {
	Role LLMMessageRole
	Text string
}

// LLMResponse contains the generated text and metadata from a completion call.
type LLMResponse struct {
	// Text contains the generated response text
	Text string

	// TotalInputToken is the number of tokens in the input prompt
	TotalInputToken int

	// TotalOutputToken is the number of tokens in the generated response
	TotalOutputToken int

	// CompletionTime is the total time taken to generate the response, in seconds
	CompletionTime float64
}

// LLMProvider defines the interface for integrating with a text-completion
// service. Implementations perform a single synchronous call per request.
type LLMProvider interface {
	GetResponse(ctx context.Context, messages []LLMMessage, config LLMRequestConfig) (LLMResponse, error)
}

// LLMRequestConfig holds per-request generation parameters.
type LLMRequestConfig struct {
	maxToken    int64
	temperature float64
	topP        float64
}

// RequestOption is a function that modifies the request configuration.
type RequestOption func(*LLMRequestConfig)

// WithMaxToken sets the maximum number of tokens to generate.
func WithMaxToken(maxToken int64) RequestOption {
	return func(c *LLMRequestConfig) {
		c.maxToken = maxToken
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temperature float64) RequestOption {
	return func(c *LLMRequestConfig) {
		c.temperature = temperature
	}
}

// WithTopP sets the nucleus sampling parameter.
func WithTopP(topP float64) RequestOption {
	return func(c *LLMRequestConfig) {
		c.topP = topP
	}
}

// NewRequestConfig creates a request configuration with sensible defaults.
//
// Example usage:
//
//	config := chatbot.NewRequestConfig(
//	    chatbot.WithMaxToken(2000),
//	    chatbot.WithTemperature(0.7),
//	)
func NewRequestConfig(opts ...RequestOption) LLMRequestConfig {
	config := LLMRequestConfig{
		maxToken:    1000,
		temperature: 0.5,
		topP:        0.5,
	}

	for _, opt := range opts {
		opt(&config)
	}

	return config
}
