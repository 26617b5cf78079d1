package llm

import (
	"encoding/json"
)

// MessageRole represents the role of a message in a conversation.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleSystem    MessageRole = "system"
)

// Message represents a single message in a conversation.
// Message order is preserved verbatim into provider requests.
type Message struct {
	Role    MessageRole `json:"role" yaml:"role"`
	Content string      `json:"content" yaml:"content"`
}

// ParseRole decodes a free-form role string into a MessageRole.
// Anything other than "system" or "assistant" is treated as a user message.
func ParseRole(role string) MessageRole {
	switch role {
	case string(RoleSystem):
		return RoleSystem
	case string(RoleAssistant):
		return RoleAssistant
	default:
		return RoleUser
	}
}

// NewMessage creates a message with the given role and content.
func NewMessage(role MessageRole, content string) Message {
	return Message{Role: role, Content: content}
}

// NewTextMessage creates a message from a free-form role string,
// applying the user-role fallback for unrecognized roles.
func NewTextMessage(role, content string) Message {
	return Message{Role: ParseRole(role), Content: content}
}

// ToJSON marshals a message to JSON for debugging/logging purposes.
func (m Message) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}
