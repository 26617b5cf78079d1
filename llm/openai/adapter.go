package openai

import (
	"github.com/alchemind/openai-bridge/llm"
	openai "github.com/sashabaranov/go-openai"
)

// ToChatMessages converts llm.Messages to OpenAI chat message format,
// preserving input order.
func ToChatMessages(msgs []llm.Message) []openai.ChatCompletionMessage {
	result := make([]openai.ChatCompletionMessage, 0, len(msgs))
	for _, msg := range msgs {
		result = append(result, ToChatMessage(msg))
	}
	return result
}

// ToChatMessage converts a single llm.Message to OpenAI format.
// Unrecognized roles fall back to the user role.
func ToChatMessage(msg llm.Message) openai.ChatCompletionMessage {
	var role string
	switch msg.Role {
	case llm.RoleSystem:
		role = openai.ChatMessageRoleSystem
	case llm.RoleAssistant:
		role = openai.ChatMessageRoleAssistant
	case llm.RoleUser:
		role = openai.ChatMessageRoleUser
	default:
		role = openai.ChatMessageRoleUser // Default fallback
	}

	return openai.ChatCompletionMessage{
		Role:    role,
		Content: msg.Content,
	}
}

// BuildChatRequest assembles a chat completion request from the given
// messages. Translation is pure: the only failure is a missing model.
func BuildChatRequest(msgs []llm.Message, model string, stream bool) (openai.ChatCompletionRequest, error) {
	if model == "" {
		return openai.ChatCompletionRequest{}, llm.NewRequestBuildError("model is required", nil)
	}

	return openai.ChatCompletionRequest{
		Model:    model,
		Messages: ToChatMessages(msgs),
		Stream:   stream,
	}, nil
}
