package chatbot

import "context"

// NoOpsLLMProvider implements LLMProvider interface for testing purposes.
// It returns a canned response, or a configured error, without any network
// call.
type NoOpsLLMProvider struct {
	response LLMResponse
	err      error
}

// NoOpsOption defines the function signature for option pattern.
type NoOpsOption func(*NoOpsLLMProvider)

// WithResponse sets a custom LLMResponse for the NoOpsProvider.
func WithResponse(response LLMResponse) NoOpsOption {
	return func(n *NoOpsLLMProvider) {
		n.response = response
	}
}

// WithError makes every GetResponse call fail with err.
func WithError(err error) NoOpsOption {
	return func(n *NoOpsLLMProvider) {
		n.err = err
	}
}

// NewNoOpsLLMProvider creates a new NoOpsLLMProvider with optional configurations.
func NewNoOpsLLMProvider(opts ...NoOpsOption) *NoOpsLLMProvider {
	provider := &NoOpsLLMProvider{
		response: LLMResponse{
			Text:             "Default NoOps response",
			TotalInputToken:  10,
			TotalOutputToken: 3,
			CompletionTime:   0.1,
		},
	}

	for _, opt := range opts {
		opt(provider)
	}

	return provider
}

// GetResponse implements the LLMProvider interface.
func (n *NoOpsLLMProvider) GetResponse(_ context.Context, _ []LLMMessage, _ LLMRequestConfig) (LLMResponse, error) {
	if n.err != nil {
		return LLMResponse{}, n.err
	}
	return n.response, nil
}
