package stt

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements STT using the OpenAI audio transcription API
type OpenAIProvider struct {
	client *openai.Client
}

// NewOpenAIProvider creates a new OpenAI STT provider
func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
	}
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Transcribe sends audio data to the OpenAI transcription API. The API takes
// a bare language subtag, so the region qualifier is stripped from the
// caller's locale code ("hi-IN" -> "hi").
func (p *OpenAIProvider) Transcribe(ctx context.Context, audio []byte, languageCode string) (*Result, error) {
	startTime := time.Now()

	log.Printf("[OpenAI STT] Processing audio: size=%d bytes, language=%s", len(audio), languageCode)

	// Check if audio payload is too small (likely empty or corrupted)
	if len(audio) < 1000 {
		return nil, fmt.Errorf("audio payload too small (%d bytes), may be empty or corrupted", len(audio))
	}

	lang := languageCode
	if i := strings.IndexByte(lang, '-'); i > 0 {
		lang = lang[:i]
	}

	resp, err := p.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: "audio.wav",
		Reader:   bytes.NewReader(audio),
		Language: lang,
	})
	if err != nil {
		log.Printf("[OpenAI STT] API error: %v", err)
		return &Result{
			Provider: p.Name(),
		}, fmt.Errorf("OpenAI transcription API error: %v", err)
	}

	transcript := strings.TrimSpace(resp.Text)
	if transcript == "" {
		log.Printf("[OpenAI STT] Empty transcript returned")
		return &Result{
			Provider: p.Name(),
		}, fmt.Errorf("no speech detected in audio")
	}

	duration := time.Since(startTime)
	log.Printf("[OpenAI STT] Transcription successful: length=%d, duration=%v", len(transcript), duration)

	// The API reports no confidence score; Result.Confidence stays 0.
	return &Result{
		Transcript: transcript,
		Provider:   p.Name(),
	}, nil
}
