package openai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alchemind/openai-bridge/llm"
	"github.com/samber/lo"
	openai "github.com/sashabaranov/go-openai"
)

// minAudioBytes is the smallest audio payload accepted for transcription.
// Anything shorter cannot be a valid container and is rejected up front.
const minAudioBytes = 10

// Transcribe implements llm.Client.Transcribe. The audio bytes are uploaded
// as an in-memory file; the transcript text is returned verbatim.
func (c *Client) Transcribe(ctx context.Context, audio []byte, opts llm.Options) (string, error) {
	if len(audio) < minAudioBytes {
		return "", llm.NewValidationError(fmt.Sprintf(
			"audio input too small: %d bytes (minimum %d), options: %v",
			len(audio), minAudioBytes, lo.Keys(opts)))
	}

	cfg, err := DecodeTranscriptionOptions(opts)
	if err != nil {
		return "", err
	}

	req := openai.AudioRequest{
		Model:    cfg.Model,
		FilePath: uploadFileName(),
		Reader:   bytes.NewReader(audio),
		Language: cfg.Language,
		Prompt:   cfg.Prompt,
		Format:   cfg.Format,
	}
	if cfg.Temperature != nil {
		req.Temperature = float32(*cfg.Temperature)
	}

	c.mu.Lock()
	resp, err := c.api.CreateTranscription(ctx, req)
	c.mu.Unlock()
	if err != nil {
		return "", convertError("transcription request failed", err)
	}

	return resp.Text, nil
}

// Speak implements llm.Client.Speak. The returned bytes are the encoded
// audio in the requested format.
func (c *Client) Speak(ctx context.Context, input string, opts llm.Options) ([]byte, error) {
	cfg, err := DecodeSpeechOptions(opts)
	if err != nil {
		return nil, err
	}

	req := openai.CreateSpeechRequest{
		Model:          cfg.Model,
		Input:          input,
		Voice:          cfg.Voice,
		ResponseFormat: cfg.Format,
	}
	if cfg.Speed != nil {
		req.Speed = *cfg.Speed
	}

	c.mu.Lock()
	resp, err := c.api.CreateSpeech(ctx, req)
	c.mu.Unlock()
	if err != nil {
		return nil, convertError("speech request failed", err)
	}
	defer resp.Close()

	data, err := io.ReadAll(resp)
	if err != nil {
		return nil, llm.NewTransportError("failed to read speech response body", 0, false, err)
	}

	return data, nil
}

// uploadFileName synthesizes a name for the in-memory upload. Time-based
// names can collide under rapid concurrent calls; the handle lock makes
// that window negligible in practice.
func uploadFileName() string {
	return fmt.Sprintf("audio-%d.webm", time.Now().Unix())
}
