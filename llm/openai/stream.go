package openai

import (
	"context"
	"errors"
	"io"

	"github.com/alchemind/openai-bridge/llm"
	openai "github.com/sashabaranov/go-openai"
)

// maxFramesPerPoll bounds how many stream frames one StreamChatChunk
// invocation consumes before reporting done. The bound keeps each call
// responsive; callers wanting the full response re-invoke, which restarts
// the exchange from the beginning.
const maxFramesPerPoll = 10

// StreamChatChunk implements llm.Client.StreamChatChunk. It opens a
// streaming chat completion and advances through at most maxFramesPerPoll
// frames, collecting delta content fragments in arrival order. On leaving
// the stream it delivers every collected fragment to sink as chunk
// notifications, then exactly one terminal done or error notification, all
// tagged with token.
//
// The return value only signals whether the call was dispatched: request
// build and transport failures are reported through the sink, not the
// return value. Fragments collected before a mid-stream failure are still
// delivered ahead of the error notification.
//
// No state is kept between invocations. Calling again with the same
// messages re-issues the request and restarts from the first frame — this
// is a polling protocol, not resumable streaming.
func (c *Client) StreamChatChunk(ctx context.Context, messages []llm.Message, model string, sink llm.Sink, token llm.Token) error {
	if sink == nil {
		return llm.NewValidationError("notification sink is required")
	}

	req, err := BuildChatRequest(messages, model, true)
	if err != nil {
		sink.Send(llm.ErrorNotification(token, err.Error()))
		return nil
	}

	c.mu.Lock()
	chunks, streamErr := c.poll(ctx, req)
	c.mu.Unlock()

	for _, chunk := range chunks {
		sink.Send(llm.ChunkNotification(token, chunk))
	}
	if streamErr != nil {
		sink.Send(llm.ErrorNotification(token, streamErr.Error()))
		return nil
	}
	sink.Send(llm.DoneNotification(token))
	return nil
}

// poll opens the network stream and runs one bounded pass, returning the
// content fragments collected in arrival order. Must be called with the
// handle lock held.
func (c *Client) poll(ctx context.Context, req openai.ChatCompletionRequest) ([]string, error) {
	stream, err := c.api.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return nil, convertError("failed to open chat completion stream", err)
	}
	defer stream.Close()

	var chunks []string
	done := false

	for i := 0; i < maxFramesPerPoll && !done; i++ {
		frame, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			// Stream exhausted before the frame cap.
			break
		}
		if err != nil {
			// Abort immediately; chunks collected so far are still
			// delivered ahead of the error by the caller.
			return chunks, convertError("stream receive failed", err)
		}

		// Drain the whole frame even when a choice signals completion.
		for _, choice := range frame.Choices {
			if choice.Delta.Content != "" {
				chunks = append(chunks, choice.Delta.Content)
			}
			if choice.FinishReason != "" {
				done = true
			}
		}
	}

	return chunks, nil
}
