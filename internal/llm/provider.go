package llm

import (
	"context"
	"fmt"
)

// Message represents a chat message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider interface for LLM providers. A provider is a pure enhancement:
// callers must treat every failure as recoverable and fall back to the
// templated path.
type Provider interface {
	Name() string
	Complete(ctx context.Context, messages []Message) (string, error)
	SetTemperature(temp float32)
	SetMaxTokens(tokens int32)
}

// UpstreamError wraps any failure from an external completion service.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// SystemMessage builds a system-role message.
func SystemMessage(content string) Message {
	return Message{Role: "system", Content: content}
}

// UserMessage builds a user-role message.
func UserMessage(content string) Message {
	return Message{Role: "user", Content: content}
}
