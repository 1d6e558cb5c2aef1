// Package detect sequences recognition passes over the local speech model
// into language-detection and transcription results.
package detect

import (
	"context"
	"log"
	"strings"

	"github.com/rhinocodelab/wras-v4/internal/asr"
	"github.com/rhinocodelab/wras-v4/internal/language"
	"github.com/rhinocodelab/wras-v4/internal/model"
)

// Final confidence tiers for two-pass transcription. Fixed policy values,
// kept in sync with the detection tiers in the language package.
const (
	confidenceRefined  = 0.95
	confidenceFallback = 0.8
)

// Detector orchestrates the local recognizer. It holds no mutable state of
// its own; every result is request-scoped.
type Detector struct {
	rec asr.Recognizer
}

// New creates a Detector backed by rec.
func New(rec asr.Recognizer) *Detector {
	return &Detector{rec: rec}
}

// DetectLanguage runs a single auto-detect pass and reports only the spoken
// language. The transcript field is always empty on this path.
func (d *Detector) DetectLanguage(ctx context.Context, audioPath string) model.DetectionResult {
	res, err := d.rec.Transcribe(ctx, audioPath, "")
	if err != nil {
		log.Printf("[Detect] language detection failed: %v", err)
		return failure(err)
	}

	id := detectedID(res)
	name, code, confidence := language.Classify(id)
	log.Printf("[Detect] detected language: %s (%s)", name, id)

	return model.DetectionResult{
		Success:          true,
		DetectedLanguage: name,
		LanguageCode:     code,
		Confidence:       confidence,
		Transcript:       "",
	}
}

// Transcribe runs two passes: an auto-detect pass to find the language, then
// a second pass with that language pinned for a better transcript. The second
// pass trades an extra inference for transcript quality.
func (d *Detector) Transcribe(ctx context.Context, audioPath string) model.DetectionResult {
	first, err := d.rec.Transcribe(ctx, audioPath, "")
	if err != nil {
		log.Printf("[Detect] detection pass failed: %v", err)
		return failure(err)
	}

	id := detectedID(first)
	entry := language.Lookup(id)

	refined, err := d.rec.Transcribe(ctx, audioPath, id)
	if err != nil {
		log.Printf("[Detect] transcription pass failed: %v", err)
		return failure(err)
	}

	transcript := strings.TrimSpace(refined.Text)
	confidence := confidenceFallback
	if transcript != "" && language.IsSupported(id) {
		confidence = confidenceRefined
	}
	log.Printf("[Detect] transcribed with language: %s (%s), length=%d", entry.Name, id, len(transcript))

	return model.DetectionResult{
		Success:          true,
		DetectedLanguage: entry.Name,
		LanguageCode:     entry.Code,
		Confidence:       confidence,
		Transcript:       transcript,
	}
}

// detectedID extracts the language identifier from an auto-detect pass,
// defaulting to English when the model reported nothing.
func detectedID(res asr.Result) string {
	if res.Language == "" {
		return "en"
	}
	return res.Language
}

// failure converts a recognizer error into a failed result. The message is
// carried verbatim; no recognition error propagates past this boundary.
func failure(err error) model.DetectionResult {
	return model.DetectionResult{
		Success:          false,
		DetectedLanguage: "",
		LanguageCode:     language.DefaultCode,
		Confidence:       0.0,
		Transcript:       "",
		Error:            err.Error(),
	}
}
