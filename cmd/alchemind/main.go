package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/alchemind/openai-bridge/config"
	"github.com/alchemind/openai-bridge/llm"
	bridgelogger "github.com/alchemind/openai-bridge/logger"
	"github.com/rs/zerolog"
)

const defaultTimeout = 60 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", config.GetConfigPath(), "Path to config YAML file")
		logFile    = flag.String("logfile", "", "Path to log file. If not set, logs to stdout")
		pretty     = flag.Bool("pretty", false, "Use pretty console output (only valid when logfile is not set)")
		model      = flag.String("model", "", "Chat model override")
		retries    = flag.Int("retries", 0, "Retry attempts for retryable failures (0 disables retry)")
		timeout    = flag.Duration("timeout", defaultTimeout, "Per-call timeout")
		out        = flag.String("out", "speech.mp3", "Output file for the speak command")
	)
	flag.Parse()

	if *logFile != "" && *pretty {
		return fmt.Errorf("--logfile and --pretty are mutually exclusive")
	}

	logger, err := bridgelogger.InitWithOptions(*logFile, *pretty)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	chatModel := cfg.Chat.Model
	if *model != "" {
		chatModel = *model
	}

	base, err := config.NewOpenAIClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	var client llm.Client = base
	if *retries > 0 {
		retryOpts := llm.DefaultRetryOptions()
		retryOpts.MaxRetries = uint64(*retries)
		client = llm.WithRetry(base, retryOpts)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	switch flag.Arg(0) {
	case "chat":
		return runChat(ctx, logger, client, chatModel, flag.Arg(1))
	case "stream":
		return runStream(ctx, logger, client, chatModel, flag.Arg(1))
	case "transcribe":
		return runTranscribe(ctx, logger, client, cfg, flag.Arg(1))
	case "speak":
		return runSpeak(ctx, logger, client, cfg, flag.Arg(1), *out)
	default:
		return fmt.Errorf("usage: alchemind [flags] chat|stream|transcribe|speak <arg>")
	}
}

func runChat(ctx context.Context, logger zerolog.Logger, client llm.Client, model, prompt string) error {
	if prompt == "" {
		return fmt.Errorf("chat requires a prompt argument")
	}

	logger.Info().Str("model", model).Msg("Sending chat completion")
	reply, err := client.CompleteChat(ctx, []llm.Message{llm.NewMessage(llm.RoleUser, prompt)}, model)
	if err != nil {
		return err
	}

	fmt.Println(reply)
	return nil
}

// runStream performs one bounded polling pass and prints the fragments as
// they are delivered. The pass covers at most the first frames of the
// response; re-running the command restarts the exchange.
func runStream(ctx context.Context, logger zerolog.Logger, client llm.Client, model, prompt string) error {
	if prompt == "" {
		return fmt.Errorf("stream requires a prompt argument")
	}

	token := llm.NewToken()
	logger.Info().Str("model", model).Str("token", string(token)).Msg("Dispatching streaming pass")

	notifications := make(chan llm.Notification, 64)
	accepted := make(chan error, 1)
	go func() {
		accepted <- client.StreamChatChunk(ctx, []llm.Message{llm.NewMessage(llm.RoleUser, prompt)}, model, llm.ChanSink(notifications), token)
		close(notifications)
	}()

	for n := range notifications {
		switch n.Kind {
		case llm.NotificationChunk:
			fmt.Print(n.Text)
		case llm.NotificationDone:
			fmt.Println()
		case llm.NotificationError:
			fmt.Println()
			logger.Error().Str("token", string(n.Token)).Str("error", n.Text).Msg("Streaming pass failed")
		}
	}

	return <-accepted
}

func runTranscribe(ctx context.Context, logger zerolog.Logger, client llm.Client, cfg *config.Config, path string) error {
	if path == "" {
		return fmt.Errorf("transcribe requires an audio file argument")
	}

	audio, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read audio file: %w", err)
	}

	logger.Info().Str("file", path).Int("bytes", len(audio)).Msg("Transcribing audio")
	text, err := client.Transcribe(ctx, audio, cfg.TranscriptionOptions())
	if err != nil {
		return err
	}

	fmt.Println(text)
	return nil
}

func runSpeak(ctx context.Context, logger zerolog.Logger, client llm.Client, cfg *config.Config, input, out string) error {
	if input == "" {
		return fmt.Errorf("speak requires a text argument")
	}

	logger.Info().Str("voice", cfg.Speech.Voice).Str("out", out).Msg("Synthesizing speech")
	audio, err := client.Speak(ctx, input, cfg.SpeechOptions())
	if err != nil {
		return err
	}

	if err := os.WriteFile(out, audio, 0o600); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}

	logger.Info().Int("bytes", len(audio)).Msg("Speech written")
	return nil
}
