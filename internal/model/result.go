package model

// AudioPathRequest is the request body for the local detection and
// transcription endpoints.
type AudioPathRequest struct {
	AudioPath string `json:"audio_path" binding:"required"`
}

// SpeechRequest is the request body for the cloud transcription endpoint.
// The caller must already know the language, typically from /detect-language.
type SpeechRequest struct {
	AudioPath    string `json:"audio_path" binding:"required"`
	LanguageCode string `json:"language_code" binding:"required"`
}

// DetectionResult is the response body for language detection and local
// transcription. It is request-scoped and never persisted.
type DetectionResult struct {
	Success          bool    `json:"success"`
	DetectedLanguage string  `json:"detected_language"`
	LanguageCode     string  `json:"language_code"`
	Confidence       float64 `json:"confidence"`
	Transcript       string  `json:"transcript"`
	Error            string  `json:"error,omitempty"`
}

// TranscriptionResult is the response body for cloud transcription.
type TranscriptionResult struct {
	Success    bool    `json:"success"`
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
	Error      string  `json:"error,omitempty"`
}
