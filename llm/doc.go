// Package llm defines the provider-neutral surface of the OpenAI call bridge.
//
// This package holds the common types and contracts that callers program
// against without touching the provider SDK directly.
//
// # Core Concepts
//
//  1. Messages: the Message type carries a conversation message with a role
//     (user, assistant, system) and text content. Roles are decoded from
//     free-form strings; anything unrecognized is treated as a user message.
//
//  2. Options: heterogeneous option mappings supplied by the caller are
//     decoded once at the boundary into typed configuration via the Decode
//     helpers. A nil value and a missing key both mean "not provided".
//
//  3. Client Interface: the Client interface exposes the bridge operations:
//     CompleteChat, StreamChatChunk, Transcribe, and Speak. The concrete
//     implementation lives in the llm/openai package.
//
//  4. Notifications: streaming results are delivered asynchronously through
//     a Sink, tagged with a caller-supplied correlation Token. Each streaming
//     invocation yields zero or more chunk notifications followed by exactly
//     one terminal done or error notification.
//
//  5. Errors: the Error type classifies every failure (validation, decode,
//     request build, transport, empty result) so callers can branch on the
//     category without parsing message text.
//
// # Usage Example
//
//	client, err := openai.New(apiKey, baseURL)
//	if err != nil {
//		return err
//	}
//
//	reply, err := client.CompleteChat(ctx, []llm.Message{
//		llm.NewMessage(llm.RoleUser, "Hello!"),
//	}, "gpt-4o-mini")
//
// Retry is never performed by the bridge itself. Callers that want it wrap
// the client with WithRetry, which honors the Retryable classification.
package llm
