package chatbot

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

// TracingLLMProvider implements the decorator pattern for tracing
type TracingLLMProvider struct {
	provider LLMProvider
}

// NewTracingLLMProvider creates a new tracing decorator for any LLMProvider
func NewTracingLLMProvider(provider LLMProvider) *TracingLLMProvider {
	return &TracingLLMProvider{
		provider: provider,
	}
}

// GetResponse implements LLMProvider interface with added tracing
func (t *TracingLLMProvider) GetResponse(ctx context.Context, messages []LLMMessage, config LLMRequestConfig) (LLMResponse, error) {
	ctx, span := StartSpan(ctx, "LLMProvider.GetResponse")
	defer span.End()

	startTime := time.Now()

	response, err := t.provider.GetResponse(ctx, messages, config)
	if err != nil {
		span.RecordError(err)
		return LLMResponse{}, err
	}

	span.SetAttributes(
		attribute.Int("total_input_token", response.TotalInputToken),
		attribute.Int("total_output_token", response.TotalOutputToken),
		attribute.Int("message_count", len(messages)),
		attribute.Float64("completion_time", time.Since(startTime).Seconds()),
	)

	return response, nil
}
