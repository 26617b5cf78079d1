package openai

import (
	"testing"

	"github.com/alchemind/openai-bridge/llm"
	openai "github.com/sashabaranov/go-openai"
)

func TestToChatMessageRoleFallback(t *testing.T) {
	tests := []struct {
		role llm.MessageRole
		want string
	}{
		{llm.RoleSystem, openai.ChatMessageRoleSystem},
		{llm.RoleAssistant, openai.ChatMessageRoleAssistant},
		{llm.RoleUser, openai.ChatMessageRoleUser},
		{llm.MessageRole("narrator"), openai.ChatMessageRoleUser},
		{llm.MessageRole(""), openai.ChatMessageRoleUser},
	}

	for _, tt := range tests {
		msg := ToChatMessage(llm.Message{Role: tt.role, Content: "content"})
		if msg.Role != tt.want {
			t.Errorf("ToChatMessage role %q = %q, want %q", tt.role, msg.Role, tt.want)
		}
		if msg.Content != "content" {
			t.Errorf("Expected content to be preserved, got %q", msg.Content)
		}
	}
}

func TestToChatMessagesPreservesOrder(t *testing.T) {
	msgs := []llm.Message{
		llm.NewMessage(llm.RoleSystem, "first"),
		llm.NewMessage(llm.RoleUser, "second"),
		llm.NewMessage(llm.RoleAssistant, "third"),
		llm.NewMessage(llm.RoleUser, "fourth"),
	}

	converted := ToChatMessages(msgs)
	if len(converted) != len(msgs) {
		t.Fatalf("Expected %d messages, got %d", len(msgs), len(converted))
	}
	for i, msg := range msgs {
		if converted[i].Content != msg.Content {
			t.Errorf("Message %d: expected content %q, got %q", i, msg.Content, converted[i].Content)
		}
	}
}

func TestBuildChatRequest(t *testing.T) {
	msgs := []llm.Message{llm.NewMessage(llm.RoleUser, "hello")}

	req, err := BuildChatRequest(msgs, "gpt-4o-mini", true)
	if err != nil {
		t.Fatalf("BuildChatRequest returned error: %v", err)
	}
	if req.Model != "gpt-4o-mini" {
		t.Errorf("Expected model 'gpt-4o-mini', got %q", req.Model)
	}
	if !req.Stream {
		t.Error("Expected streaming to be enabled")
	}
	if len(req.Messages) != 1 {
		t.Errorf("Expected 1 message, got %d", len(req.Messages))
	}
}

func TestBuildChatRequestMissingModel(t *testing.T) {
	_, err := BuildChatRequest(nil, "", false)
	if !llm.IsRequestBuildError(err) {
		t.Fatalf("Expected request build error for missing model, got %v", err)
	}
}
