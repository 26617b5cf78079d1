package config

import (
	"github.com/alchemind/openai-bridge/llm"
	llmopenai "github.com/alchemind/openai-bridge/llm/openai"
)

// NewOpenAIClient creates a bridge client from the configuration.
func NewOpenAIClient(cfg *Config) (*llmopenai.Client, error) {
	return llmopenai.New(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL)
}

// TranscriptionOptions converts the configured transcription defaults into
// the option mapping consumed by the bridge. Empty fields are omitted so
// the decoder applies its own defaults.
func (c *Config) TranscriptionOptions() llm.Options {
	opts := llm.Options{}
	putString(opts, llmopenai.OptionModel, c.Transcription.Model)
	putString(opts, llmopenai.OptionLanguage, c.Transcription.Language)
	putString(opts, llmopenai.OptionPrompt, c.Transcription.Prompt)
	putString(opts, llmopenai.OptionResponseFormat, c.Transcription.Format)
	putFloat(opts, llmopenai.OptionTemperature, c.Transcription.Temperature)
	return opts
}

// SpeechOptions converts the configured speech defaults into the option
// mapping consumed by the bridge.
func (c *Config) SpeechOptions() llm.Options {
	opts := llm.Options{}
	putString(opts, llmopenai.OptionModel, c.Speech.Model)
	putString(opts, llmopenai.OptionVoice, c.Speech.Voice)
	putString(opts, llmopenai.OptionResponseFormat, c.Speech.Format)
	putFloat(opts, llmopenai.OptionSpeed, c.Speech.Speed)
	return opts
}

func putString(opts llm.Options, key, value string) {
	if value != "" {
		opts[key] = value
	}
}

func putFloat(opts llm.Options, key string, value *float64) {
	if value != nil {
		opts[key] = *value
	}
}
