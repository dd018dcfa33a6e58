package chatbot

import (
	"context"
	"fmt"
	"testing"

	"github.com/openai/openai-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockOpenAIClient implements OpenAIClientProvider for testing.
type mockOpenAIClient struct {
	completion *openai.ChatCompletion
	err        error
	lastParams openai.ChatCompletionNewParams
}

func (m *mockOpenAIClient) CreateCompletion(_ context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	m.lastParams = params
	if m.err != nil {
		return nil, m.err
	}
	return m.completion, nil
}

func TestNewOpenAILLMProvider_DefaultModel(t *testing.T) {
	provider := NewOpenAILLMProvider(OpenAIProviderConfig{Client: &mockOpenAIClient{}})

	assert.Equal(t, string(openai.ChatModelGPT3_5Turbo), provider.model)
}

func TestOpenAILLMProvider_GetResponse(t *testing.T) {
	client := &mockOpenAIClient{
		completion: &openai.ChatCompletion{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "generated answer"}},
			},
			Usage: openai.CompletionUsage{PromptTokens: 42, CompletionTokens: 7},
		},
	}
	provider := NewOpenAILLMProvider(OpenAIProviderConfig{
		Client: client,
		Model:  "llama-3.1-8b-instant",
	})

	response, err := provider.GetResponse(context.Background(), []LLMMessage{
		{Role: SystemRole, Text: "be helpful"},
		{Role: UserRole, Text: "hello"},
		{Role: AssistantRole, Text: "hi"},
		{Role: UserRole, Text: "question"},
	}, NewRequestConfig())

	require.NoError(t, err)
	assert.Equal(t, "generated answer", response.Text)
	assert.Equal(t, 42, response.TotalInputToken)
	assert.Equal(t, 7, response.TotalOutputToken)
	assert.GreaterOrEqual(t, response.CompletionTime, 0.0)

	assert.Len(t, client.lastParams.Messages.Value, 4)
	assert.Equal(t, "llama-3.1-8b-instant", string(client.lastParams.Model.Value))
}

func TestOpenAILLMProvider_GetResponse_Error(t *testing.T) {
	client := &mockOpenAIClient{err: fmt.Errorf("rate limited")}
	provider := NewOpenAILLMProvider(OpenAIProviderConfig{Client: client, Model: "m"})

	_, err := provider.GetResponse(context.Background(), []LLMMessage{{Role: UserRole, Text: "x"}}, NewRequestConfig())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestOpenAILLMProvider_GetResponse_NoChoices(t *testing.T) {
	client := &mockOpenAIClient{completion: &openai.ChatCompletion{}}
	provider := NewOpenAILLMProvider(OpenAIProviderConfig{Client: client, Model: "m"})

	_, err := provider.GetResponse(context.Background(), []LLMMessage{{Role: UserRole, Text: "x"}}, NewRequestConfig())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
