package stt

// Result represents the result of a cloud speech-to-text transcription
type Result struct {
	Transcript  string  // The transcribed text, segments joined by single spaces
	Confidence  float64 // Mean confidence score (0.0-1.0), may be 0 if not provided
	Provider    string  // The provider used (e.g., "google", "openai")
	RawResponse string  // Raw response from the provider (for debugging/logging)
}
