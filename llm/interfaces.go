package llm

import (
	"context"
)

// Client is the bridge's operation surface. The concrete implementation in
// llm/openai drives a hosted provider; stubs implement it for tests.
//
// All operations block the calling goroutine until the network exchange
// completes (or, for StreamChatChunk, until the bounded polling pass ends).
// There is no cancellation beyond the supplied context and no automatic
// retry; wrap with WithRetry to opt in.
type Client interface {
	// CompleteChat runs a one-shot chat completion and returns the first
	// choice's content. A completion with zero choices is an error, not an
	// empty string.
	CompleteChat(ctx context.Context, messages []Message, model string) (string, error)

	// StreamChatChunk performs one bounded polling pass over a streaming
	// chat completion, delivering content fragments and exactly one terminal
	// signal to sink, each tagged with token. The returned error covers only
	// argument misuse; stream outcomes arrive through the sink. Invoking it
	// again restarts the exchange from the beginning — passes do not resume.
	StreamChatChunk(ctx context.Context, messages []Message, model string, sink Sink, token Token) error

	// Transcribe converts an audio byte sequence to text.
	Transcribe(ctx context.Context, audio []byte, opts Options) (string, error)

	// Speak synthesizes speech for input and returns the encoded audio.
	Speak(ctx context.Context, input string, opts Options) ([]byte, error)
}
