// Package openai implements the call bridge against the OpenAI API using
// the sashabaranov/go-openai client.
//
// A Client wraps one configured network client behind a mutex: at most one
// network exchange is in flight per handle at a time. The lock is held
// across the round trip — acceptable for the infrequent, latency-tolerant
// calls the bridge is built for, but a contended resource under concurrent
// load. Concurrent callers queue rather than run in parallel.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/alchemind/openai-bridge/llm"
	openai "github.com/sashabaranov/go-openai"
)

// Client is the shared, lock-guarded handle to a configured OpenAI client.
// It is safe for concurrent use; create it once and reuse it across calls.
type Client struct {
	mu  sync.Mutex
	api *openai.Client
}

var _ llm.Client = (*Client)(nil)

// New creates a Client configured with the given API key and base URL.
// If baseURL is empty, the official API endpoint is used.
func New(apiKey, baseURL string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required")
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &Client{
		api: openai.NewClientWithConfig(config),
	}, nil
}

// CompleteChat implements llm.Client.CompleteChat. It runs a single
// non-streaming chat completion to completion and returns the first
// choice's content. Zero choices is reported as an error rather than
// silently returning empty content.
func (c *Client) CompleteChat(ctx context.Context, messages []llm.Message, model string) (string, error) {
	req, err := BuildChatRequest(messages, model, false)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	resp, err := c.api.CreateChatCompletion(ctx, req)
	c.mu.Unlock()
	if err != nil {
		return "", convertError("chat completion request failed", err)
	}

	if len(resp.Choices) == 0 {
		return "", llm.NewEmptyResultError()
	}

	return resp.Choices[0].Message.Content, nil
}

// convertError classifies a go-openai error, passing the provider's message
// through verbatim.
func convertError(message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &llm.Error{
			Type:        llm.ErrorTypeTimeout,
			Message:     message,
			Retryable:   true,
			ProviderErr: err,
		}
	}

	var apiErr *openai.APIError
	if !errors.As(err, &apiErr) {
		// Connection-level failure with no provider response.
		return llm.NewTransportError(message, 0, false, err)
	}

	switch apiErr.HTTPStatusCode {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable:
		return llm.NewTransportError(message, apiErr.HTTPStatusCode, true, err)
	default:
		return llm.NewTransportError(message, apiErr.HTTPStatusCode, false, err)
	}
}
