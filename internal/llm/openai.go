package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

// OpenAIProvider implements the Provider interface on top of the OpenAI
// chat completions API.
type OpenAIProvider struct {
	model       llms.Model
	temperature float32
	maxTokens   int32
}

// NewOpenAIProvider creates an OpenAI provider for the given model name.
// The API key comes from OPENAI_API_KEY.
func NewOpenAIProvider(modelName string) (*OpenAIProvider, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	model, err := openai.New(
		openai.WithModel(modelName),
		openai.WithToken(apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenAI model: %w", err)
	}

	return &OpenAIProvider{
		model:       model,
		temperature: 0.7,
		maxTokens:   600,
	}, nil
}

// Name implements the Provider interface
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Complete implements the Provider interface
func (p *OpenAIProvider) Complete(ctx context.Context, messages []Message) (string, error) {
	content := make([]llms.MessageContent, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case "system":
			content = append(content, llms.TextParts(schema.ChatMessageTypeSystem, msg.Content))
		case "user":
			content = append(content, llms.TextParts(schema.ChatMessageTypeHuman, msg.Content))
		case "assistant":
			content = append(content, llms.TextParts(schema.ChatMessageTypeAI, msg.Content))
		default:
			return "", &UpstreamError{Provider: p.Name(), Err: fmt.Errorf("unsupported message role: %s", msg.Role)}
		}
	}

	resp, err := p.model.GenerateContent(ctx, content,
		llms.WithTemperature(float64(p.temperature)),
		llms.WithMaxTokens(int(p.maxTokens)),
	)
	if err != nil {
		return "", &UpstreamError{Provider: p.Name(), Err: err}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		return "", &UpstreamError{Provider: p.Name(), Err: fmt.Errorf("empty response")}
	}

	return resp.Choices[0].Content, nil
}

// SetTemperature sets the temperature for completions
func (p *OpenAIProvider) SetTemperature(temp float32) {
	p.temperature = temp
}

// SetMaxTokens sets the max tokens for completions
func (p *OpenAIProvider) SetMaxTokens(tokens int32) {
	p.maxTokens = tokens
}
