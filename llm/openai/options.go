package openai

import (
	"github.com/alchemind/openai-bridge/llm"
	openai "github.com/sashabaranov/go-openai"
)

// Option keys recognized by the audio operations.
const (
	OptionModel          = "model"
	OptionLanguage       = "language"
	OptionPrompt         = "prompt"
	OptionResponseFormat = "response_format"
	OptionTemperature    = "temperature"
	OptionVoice          = "voice"
	OptionSpeed          = "speed"
)

// TranscriptionOptions is the typed, defaulted configuration decoded from a
// transcription option mapping.
type TranscriptionOptions struct {
	Model       string
	Language    string
	Prompt      string
	Format      openai.AudioResponseFormat
	Temperature *float64
}

// SpeechOptions is the typed, defaulted configuration decoded from a speech
// synthesis option mapping.
type SpeechOptions struct {
	Model  openai.SpeechModel
	Voice  openai.SpeechVoice
	Format openai.SpeechResponseFormat
	Speed  *float64
}

// DecodeTranscriptionOptions decodes a transcription option mapping,
// validating each value once at the boundary. A missing key and a nil value
// both resolve to the default. Unrecognized response_format strings fall
// back to text.
func DecodeTranscriptionOptions(opts llm.Options) (TranscriptionOptions, error) {
	model, err := llm.DecodeString(opts, OptionModel, openai.Whisper1)
	if err != nil {
		return TranscriptionOptions{}, err
	}

	language, err := llm.DecodeString(opts, OptionLanguage, "")
	if err != nil {
		return TranscriptionOptions{}, err
	}

	prompt, err := llm.DecodeString(opts, OptionPrompt, "")
	if err != nil {
		return TranscriptionOptions{}, err
	}

	format, err := llm.DecodeString(opts, OptionResponseFormat, string(openai.AudioResponseFormatText))
	if err != nil {
		return TranscriptionOptions{}, err
	}

	temperature, err := llm.DecodeFloat(opts, OptionTemperature)
	if err != nil {
		return TranscriptionOptions{}, err
	}

	return TranscriptionOptions{
		Model:       model,
		Language:    language,
		Prompt:      prompt,
		Format:      parseAudioResponseFormat(format),
		Temperature: temperature,
	}, nil
}

// DecodeSpeechOptions decodes a speech synthesis option mapping. Unknown
// model, voice, and format strings fall back to their defaults rather than
// erroring; a wrong-typed value is still a decode error.
func DecodeSpeechOptions(opts llm.Options) (SpeechOptions, error) {
	model, err := llm.DecodeString(opts, OptionModel, string(openai.TTSModel1))
	if err != nil {
		return SpeechOptions{}, err
	}

	voice, err := llm.DecodeString(opts, OptionVoice, string(openai.VoiceAlloy))
	if err != nil {
		return SpeechOptions{}, err
	}

	format, err := llm.DecodeString(opts, OptionResponseFormat, string(openai.SpeechResponseFormatMp3))
	if err != nil {
		return SpeechOptions{}, err
	}

	speed, err := llm.DecodeFloat(opts, OptionSpeed)
	if err != nil {
		return SpeechOptions{}, err
	}

	return SpeechOptions{
		Model:  parseSpeechModel(model),
		Voice:  parseVoice(voice),
		Format: parseSpeechResponseFormat(format),
		Speed:  speed,
	}, nil
}

func parseAudioResponseFormat(format string) openai.AudioResponseFormat {
	switch format {
	case string(openai.AudioResponseFormatJSON):
		return openai.AudioResponseFormatJSON
	case string(openai.AudioResponseFormatSRT):
		return openai.AudioResponseFormatSRT
	case string(openai.AudioResponseFormatVerboseJSON):
		return openai.AudioResponseFormatVerboseJSON
	case string(openai.AudioResponseFormatVTT):
		return openai.AudioResponseFormatVTT
	default:
		return openai.AudioResponseFormatText
	}
}

func parseSpeechModel(model string) openai.SpeechModel {
	switch model {
	case string(openai.TTSModel1HD):
		return openai.TTSModel1HD
	default:
		return openai.TTSModel1
	}
}

func parseVoice(voice string) openai.SpeechVoice {
	switch voice {
	case string(openai.VoiceEcho):
		return openai.VoiceEcho
	case string(openai.VoiceFable):
		return openai.VoiceFable
	case string(openai.VoiceOnyx):
		return openai.VoiceOnyx
	case string(openai.VoiceNova):
		return openai.VoiceNova
	case string(openai.VoiceShimmer):
		return openai.VoiceShimmer
	default:
		return openai.VoiceAlloy
	}
}

func parseSpeechResponseFormat(format string) openai.SpeechResponseFormat {
	switch format {
	case string(openai.SpeechResponseFormatOpus):
		return openai.SpeechResponseFormatOpus
	case string(openai.SpeechResponseFormatAac):
		return openai.SpeechResponseFormatAac
	case string(openai.SpeechResponseFormatFlac):
		return openai.SpeechResponseFormatFlac
	default:
		return openai.SpeechResponseFormatMp3
	}
}
