package llm

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/ai/azopenai"
)

func TestChatRequestMessagesAllRoles(t *testing.T) {
	msgs := []Message{
		SystemMessage("you are a trainer"),
		UserMessage("dal makhani recipe"),
		{Role: "assistant", Content: "Namaste Ji"},
	}

	converted, err := chatRequestMessages(msgs)
	if err != nil {
		t.Fatalf("chatRequestMessages: %v", err)
	}
	if len(converted) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(converted))
	}

	if _, ok := converted[0].(*azopenai.ChatRequestSystemMessage); !ok {
		t.Errorf("message 0: expected system message, got %T", converted[0])
	}
	if _, ok := converted[1].(*azopenai.ChatRequestUserMessage); !ok {
		t.Errorf("message 1: expected user message, got %T", converted[1])
	}
	if _, ok := converted[2].(*azopenai.ChatRequestAssistantMessage); !ok {
		t.Errorf("message 2: expected assistant message, got %T", converted[2])
	}
}

func TestChatRequestMessagesUnknownRole(t *testing.T) {
	_, err := chatRequestMessages([]Message{{Role: "tool", Content: "x"}})
	if err == nil {
		t.Fatal("expected error for unsupported role")
	}
}

func TestNewAzureOpenAIProviderMissingConfig(t *testing.T) {
	t.Setenv("AZURE_OPENAI_ENDPOINT", "")
	t.Setenv("AZURE_OPENAI_API_KEY", "")
	t.Setenv("AZURE_OPENAI_DEPLOYMENT_NAME", "")

	if _, err := NewAzureOpenAIProvider(); err == nil {
		t.Fatal("expected error when configuration is missing")
	}
}
