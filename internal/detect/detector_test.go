package detect

import (
	"context"
	"errors"
	"testing"

	"github.com/rhinocodelab/wras-v4/internal/asr"
	"github.com/rhinocodelab/wras-v4/internal/model"
)

// fakeRecognizer scripts recognition passes and records the language hints it
// was called with.
type fakeRecognizer struct {
	language string
	texts    []string
	err      error
	calls    []string
}

func (f *fakeRecognizer) Transcribe(_ context.Context, _ string, lang string) (asr.Result, error) {
	f.calls = append(f.calls, lang)
	if f.err != nil {
		return asr.Result{}, f.err
	}
	text := ""
	if n := len(f.calls) - 1; n < len(f.texts) {
		text = f.texts[n]
	}
	return asr.Result{Text: text, Language: f.language}, nil
}

func TestDetectLanguageCurated(t *testing.T) {
	rec := &fakeRecognizer{language: "hi", texts: []string{"ignored"}}
	got := New(rec).DetectLanguage(context.Background(), "audio.wav")

	if !got.Success {
		t.Fatalf("Success = false, want true (error=%q)", got.Error)
	}
	if got.DetectedLanguage != "हिंदी (Hindi)" {
		t.Errorf("DetectedLanguage = %q", got.DetectedLanguage)
	}
	if got.LanguageCode != "hi-IN" {
		t.Errorf("LanguageCode = %q, want hi-IN", got.LanguageCode)
	}
	if got.Confidence != 0.9 {
		t.Errorf("Confidence = %v, want 0.9", got.Confidence)
	}
	if got.Transcript != "" {
		t.Errorf("Transcript = %q, want empty", got.Transcript)
	}
	if len(rec.calls) != 1 || rec.calls[0] != "" {
		t.Errorf("recognizer calls = %v, want one auto-detect pass", rec.calls)
	}
}

func TestDetectLanguageUnknown(t *testing.T) {
	rec := &fakeRecognizer{language: "fr"}
	got := New(rec).DetectLanguage(context.Background(), "audio.wav")

	if !got.Success {
		t.Fatalf("Success = false, want true")
	}
	if got.DetectedLanguage != "Unknown (fr)" {
		t.Errorf("DetectedLanguage = %q, want Unknown (fr)", got.DetectedLanguage)
	}
	if got.LanguageCode != "en-IN" {
		t.Errorf("LanguageCode = %q, want en-IN", got.LanguageCode)
	}
	if got.Confidence != 0.7 {
		t.Errorf("Confidence = %v, want 0.7", got.Confidence)
	}
	if got.Transcript != "" {
		t.Errorf("Transcript = %q, want empty", got.Transcript)
	}
}

func TestDetectLanguageEmptyFallsBackToEnglish(t *testing.T) {
	rec := &fakeRecognizer{language: ""}
	got := New(rec).DetectLanguage(context.Background(), "audio.wav")

	if got.DetectedLanguage != "English" || got.LanguageCode != "en-IN" {
		t.Errorf("got %q/%q, want English/en-IN", got.DetectedLanguage, got.LanguageCode)
	}
	if got.Confidence != 0.9 {
		t.Errorf("Confidence = %v, want 0.9", got.Confidence)
	}
}

func TestTranscribeTwoPass(t *testing.T) {
	rec := &fakeRecognizer{language: "mr", texts: []string{"rough pass", "पुढील गाडी"}}
	got := New(rec).Transcribe(context.Background(), "audio.wav")

	if !got.Success {
		t.Fatalf("Success = false, want true (error=%q)", got.Error)
	}
	if got.Transcript != "पुढील गाडी" {
		t.Errorf("Transcript = %q, want refined pass output", got.Transcript)
	}
	if got.Confidence != 0.95 {
		t.Errorf("Confidence = %v, want 0.95", got.Confidence)
	}
	if got.DetectedLanguage != "मराठी (Marathi)" || got.LanguageCode != "mr-IN" {
		t.Errorf("language = %q/%q", got.DetectedLanguage, got.LanguageCode)
	}
	want := []string{"", "mr"}
	if len(rec.calls) != 2 || rec.calls[0] != want[0] || rec.calls[1] != want[1] {
		t.Errorf("recognizer calls = %v, want %v", rec.calls, want)
	}
}

func TestTranscribeUnknownLanguageConfidence(t *testing.T) {
	rec := &fakeRecognizer{language: "fr", texts: []string{"rough", "bonjour"}}
	got := New(rec).Transcribe(context.Background(), "audio.wav")

	if !got.Success {
		t.Fatalf("Success = false, want true")
	}
	if got.Confidence != 0.8 {
		t.Errorf("Confidence = %v, want 0.8 for uncurated language", got.Confidence)
	}
	if got.DetectedLanguage != "Unknown (fr)" || got.LanguageCode != "en-IN" {
		t.Errorf("language = %q/%q", got.DetectedLanguage, got.LanguageCode)
	}
}

func TestTranscribeEmptyTranscriptConfidence(t *testing.T) {
	rec := &fakeRecognizer{language: "hi", texts: []string{"rough", "   "}}
	got := New(rec).Transcribe(context.Background(), "audio.wav")

	if !got.Success {
		t.Fatalf("Success = false, want true")
	}
	if got.Transcript != "" {
		t.Errorf("Transcript = %q, want empty", got.Transcript)
	}
	if got.Confidence != 0.8 {
		t.Errorf("Confidence = %v, want 0.8 for empty transcript", got.Confidence)
	}
}

func TestRecognizerErrorIsAbsorbed(t *testing.T) {
	rec := &fakeRecognizer{err: errors.New("model exploded")}
	d := New(rec)

	results := map[string]model.DetectionResult{
		"detect":     d.DetectLanguage(context.Background(), "audio.wav"),
		"transcribe": d.Transcribe(context.Background(), "audio.wav"),
	}
	for name, got := range results {
		if got.Success {
			t.Errorf("%s: Success = true, want false", name)
		}
		if got.Confidence != 0.0 {
			t.Errorf("%s: Confidence = %v, want 0", name, got.Confidence)
		}
		if got.Transcript != "" {
			t.Errorf("%s: Transcript = %q, want empty", name, got.Transcript)
		}
		if got.DetectedLanguage != "" {
			t.Errorf("%s: DetectedLanguage = %q, want empty", name, got.DetectedLanguage)
		}
		if got.LanguageCode != "en-IN" {
			t.Errorf("%s: LanguageCode = %q, want en-IN", name, got.LanguageCode)
		}
		if got.Error != "model exploded" {
			t.Errorf("%s: Error = %q, want verbatim message", name, got.Error)
		}
	}
}

func TestTranscribeRefinedPassErrorIsAbsorbed(t *testing.T) {
	rec := &scriptedRecognizer{
		results: []scriptedPass{
			{res: asr.Result{Text: "rough", Language: "hi"}},
			{err: errors.New("second pass failed")},
		},
	}
	got := New(rec).Transcribe(context.Background(), "audio.wav")

	if got.Success {
		t.Fatalf("Success = true, want false")
	}
	if got.Error != "second pass failed" {
		t.Errorf("Error = %q, want verbatim message", got.Error)
	}
	if got.Confidence != 0.0 {
		t.Errorf("Confidence = %v, want 0", got.Confidence)
	}
}

type scriptedPass struct {
	res asr.Result
	err error
}

// scriptedRecognizer returns a fixed sequence of pass outcomes.
type scriptedRecognizer struct {
	results []scriptedPass
	n       int
}

func (s *scriptedRecognizer) Transcribe(context.Context, string, string) (asr.Result, error) {
	p := s.results[s.n]
	s.n++
	return p.res, p.err
}
