package stt

import "context"

// Provider defines the interface for cloud speech-to-text providers
type Provider interface {
	// Transcribe transcribes audio data spoken in the given language and
	// returns the aggregated result
	Transcribe(ctx context.Context, audio []byte, languageCode string) (*Result, error)

	// Name returns the name of the provider (e.g., "google", "openai")
	Name() string
}
