package llm

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	// DefaultMaxRetries is the default maximum number of retries
	DefaultMaxRetries = 3
	// DefaultInitialDelay is the default initial delay for exponential backoff
	DefaultInitialDelay = 1 * time.Second
	// DefaultMaxInterval is the default maximum interval between attempts
	DefaultMaxInterval = 30 * time.Second
	// DefaultMaxElapsedTime is the default maximum elapsed time for backoff
	DefaultMaxElapsedTime = 2 * time.Minute
)

// RetryOptions configures the opt-in retry wrapper.
type RetryOptions struct {
	MaxRetries     uint64
	InitialDelay   time.Duration
	MaxInterval    time.Duration
	MaxElapsedTime time.Duration
}

// DefaultRetryOptions returns the default retry configuration.
func DefaultRetryOptions() RetryOptions {
	return RetryOptions{
		MaxRetries:     DefaultMaxRetries,
		InitialDelay:   DefaultInitialDelay,
		MaxInterval:    DefaultMaxInterval,
		MaxElapsedTime: DefaultMaxElapsedTime,
	}
}

// WithRetry wraps a Client so that operations failing with a retryable error
// are retried with exponential backoff. The bridge itself never retries;
// this wrapper is the explicit caller-side opt-in.
//
// StreamChatChunk is passed through untouched: by the time a stream fails,
// chunk notifications may already have been delivered, and a second pass
// would duplicate them.
func WithRetry(client Client, opts RetryOptions) Client {
	return &retryClient{client: client, opts: opts}
}

type retryClient struct {
	client Client
	opts   RetryOptions
}

var _ Client = (*retryClient)(nil)

func (r *retryClient) CompleteChat(ctx context.Context, messages []Message, model string) (string, error) {
	var result string
	err := r.do(ctx, func() error {
		var opErr error
		result, opErr = r.client.CompleteChat(ctx, messages, model)
		return opErr
	})
	return result, err
}

func (r *retryClient) StreamChatChunk(ctx context.Context, messages []Message, model string, sink Sink, token Token) error {
	return r.client.StreamChatChunk(ctx, messages, model, sink, token)
}

func (r *retryClient) Transcribe(ctx context.Context, audio []byte, opts Options) (string, error) {
	var result string
	err := r.do(ctx, func() error {
		var opErr error
		result, opErr = r.client.Transcribe(ctx, audio, opts)
		return opErr
	})
	return result, err
}

func (r *retryClient) Speak(ctx context.Context, input string, opts Options) ([]byte, error) {
	var result []byte
	err := r.do(ctx, func() error {
		var opErr error
		result, opErr = r.client.Speak(ctx, input, opts)
		return opErr
	})
	return result, err
}

// do runs op with exponential backoff, stopping immediately on errors that
// are not classified retryable.
func (r *retryClient) do(ctx context.Context, op func() error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.opts.InitialDelay
	bo.MaxInterval = r.opts.MaxInterval
	bo.MaxElapsedTime = r.opts.MaxElapsedTime

	return backoff.Retry(func() error {
		err := op()
		if err == nil {
			return nil
		}
		if IsRetryableError(err) {
			return err
		}
		return backoff.Permanent(err)
	}, backoff.WithContext(backoff.WithMaxRetries(bo, r.opts.MaxRetries), ctx))
}
