package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port          string
	WhisperModel  string
	CloudProvider string
	GoogleProject string
	GoogleKeyFile string
	OpenAIKey     string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		WhisperModel:  getEnv("WHISPER_MODEL_PATH", "models/ggml-base.bin"),
		CloudProvider: getEnv("CLOUD_STT_PROVIDER", "google"),
		GoogleProject: os.Getenv("GOOGLE_STT_PROJECT_ID"),
		GoogleKeyFile: os.Getenv("GOOGLE_STT_KEY_FILE"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
	}

	// Validate the model file up front so a bad path fails at startup with a
	// clear message instead of inside the whisper loader
	if _, err := os.Stat(cfg.WhisperModel); err != nil {
		return nil, fmt.Errorf("whisper model file not found at %q. Please set WHISPER_MODEL_PATH to a ggml model file:\n  Linux/Mac: export WHISPER_MODEL_PATH=\"./models/ggml-base.bin\"", cfg.WhisperModel)
	}

	// Cloud credentials are optional (only needed for /transcribe-speech)
	// and are validated when the provider is created.

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
