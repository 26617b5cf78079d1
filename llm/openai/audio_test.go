package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/alchemind/openai-bridge/llm"
)

func TestTranscribeRejectsUndersizedAudio(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Expected no network call for undersized audio")
	}))

	_, err := client.Transcribe(context.Background(), []byte("123456789"), llm.Options{"language": "en"})
	if !llm.IsValidationError(err) {
		t.Fatalf("Expected validation error for 9-byte input, got %v", err)
	}
	if !strings.Contains(err.Error(), "9 bytes") {
		t.Errorf("Expected error to embed the buffer length, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "language") {
		t.Errorf("Expected error to embed the supplied option keys, got %q", err.Error())
	}
}

func TestTranscribe(t *testing.T) {
	var uploadName string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("Failed to parse multipart form: %v", err)
		}
		if _, header, err := r.FormFile("file"); err == nil {
			uploadName = header.Filename
		}
		// Default response format is text: the body is the transcript.
		fmt.Fprint(w, "hello from the other side")
	}))

	audio := []byte("0123456789") // exactly the minimum accepted length
	got, err := client.Transcribe(context.Background(), audio, llm.Options{})
	if err != nil {
		t.Fatalf("Transcribe returned error: %v", err)
	}
	if got != "hello from the other side" {
		t.Errorf("Expected transcript to be returned verbatim, got %q", got)
	}
	if !strings.HasPrefix(uploadName, "audio-") || !strings.HasSuffix(uploadName, ".webm") {
		t.Errorf("Expected synthesized upload name audio-<ts>.webm, got %q", uploadName)
	}
}

func TestTranscribeDecodeError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Expected no network call when option decoding fails")
	}))

	_, err := client.Transcribe(context.Background(), []byte("0123456789"), llm.Options{"prompt": 42})
	if !llm.IsDecodeError(err) {
		t.Fatalf("Expected decode error, got %v", err)
	}
}

func TestTranscribeProviderError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"unsupported audio container","type":"invalid_request_error"}}`)
	}))

	_, err := client.Transcribe(context.Background(), []byte("0123456789"), llm.Options{})
	if !llm.IsTransportError(err) {
		t.Fatalf("Expected transport error, got %v", err)
	}
	if !strings.Contains(err.Error(), "unsupported audio container") {
		t.Errorf("Expected provider message to pass through, got %q", err.Error())
	}
}

func TestSpeak(t *testing.T) {
	want := []byte("RIFF-fake-encoded-audio")
	var gotReq struct {
		Model string  `json:"model"`
		Input string  `json:"input"`
		Voice string  `json:"voice"`
		Speed float64 `json:"speed"`
	}

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("Failed to decode speech request: %v", err)
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		if _, err := w.Write(want); err != nil {
			t.Fatalf("Failed to write response: %v", err)
		}
	}))

	got, err := client.Speak(context.Background(), "read this aloud", llm.Options{
		"voice": "nova",
		"speed": 1.5,
	})
	if err != nil {
		t.Fatalf("Speak returned error: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Expected raw audio bytes to be returned, got %q", got)
	}
	if gotReq.Model != "tts-1" {
		t.Errorf("Expected default model tts-1 on the wire, got %q", gotReq.Model)
	}
	if gotReq.Voice != "nova" {
		t.Errorf("Expected voice nova on the wire, got %q", gotReq.Voice)
	}
	if gotReq.Input != "read this aloud" {
		t.Errorf("Expected input to be preserved, got %q", gotReq.Input)
	}
	if gotReq.Speed != 1.5 {
		t.Errorf("Expected speed 1.5 on the wire, got %v", gotReq.Speed)
	}
}

func TestSpeakDecodeError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Expected no network call when option decoding fails")
	}))

	_, err := client.Speak(context.Background(), "hello", llm.Options{"speed": "fast"})
	if !llm.IsDecodeError(err) {
		t.Fatalf("Expected decode error, got %v", err)
	}
	if llm.DecodeErrorKey(err) != "speed" {
		t.Errorf("Expected offending key 'speed', got %q", llm.DecodeErrorKey(err))
	}
}
