// Package asr wraps the locally loaded speech model behind a Recognizer
// interface. The model is loaded once at startup and shared read-only across
// requests.
package asr

import "context"

// Result captures one recognition pass.
type Result struct {
	Text     string // transcript, may be empty
	Language string // detected language identifier when auto-detecting
}

// Recognizer abstracts the local speech-to-text backend.
type Recognizer interface {
	// Transcribe runs one recognition pass over the audio file at audioPath.
	// An empty lang enables language auto-detection; Result.Language then
	// carries the detected identifier.
	Transcribe(ctx context.Context, audioPath, lang string) (Result, error)
}
