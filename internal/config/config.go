package config

import (
	"os"
)

const (
	defaultListenAddr       = ":8080"
	defaultMediaRoot        = "media"
	defaultChatModel        = "gpt-4o-mini"
	defaultTranscriptionURL = "https://api.lemonfox.ai/v1/audio/transcriptions"
	defaultLanguage         = "english"
	defaultYtdlpPath        = "yt-dlp"
)

// Config holds all process-wide settings, read once at startup and passed
// explicitly into each component's constructor.
type Config struct {
	ListenAddr string

	// MediaRoot is where downloaded audio files live until the pipeline
	// removes them.
	MediaRoot string

	OpenAIAPIKey string
	ChatModel    string

	TranscriptionAPIKey string
	TranscriptionAPIURL string
	Language            string

	// ServiceAPIKey enables the X-API-Key middleware when set.
	ServiceAPIKey string

	YtdlpPath string
}

// Load reads configuration from the environment. Missing provider credentials
// are not an error here; the first call against the provider fails instead.
func Load() *Config {
	return &Config{
		ListenAddr:          getenv("LISTEN_ADDR", defaultListenAddr),
		MediaRoot:           getenv("MEDIA_ROOT", defaultMediaRoot),
		OpenAIAPIKey:        os.Getenv("OPENAI_API_KEY"),
		ChatModel:           getenv("OPENAI_MODEL", defaultChatModel),
		TranscriptionAPIKey: os.Getenv("TRANSCRIPTION_API_KEY"),
		TranscriptionAPIURL: getenv("TRANSCRIPTION_API_URL", defaultTranscriptionURL),
		Language:            getenv("TRANSCRIPTION_LANGUAGE", defaultLanguage),
		ServiceAPIKey:       os.Getenv("SERVICE_API_KEY"),
		YtdlpPath:           getenv("YTDLP_PATH", defaultYtdlpPath),
	}
}

// MaskKey masks an API key for logging.
func MaskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 6 {
		return "..."
	}
	return key[:3] + "..." + key[len(key)-3:]
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
