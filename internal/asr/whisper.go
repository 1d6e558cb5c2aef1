package asr

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	whisper "github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"
)

// WhisperRecognizer implements Recognizer on top of whisper.cpp. The model
// handle is shared across requests; a mutex serializes inference because the
// bindings do not guarantee safety under concurrent Process calls.
type WhisperRecognizer struct {
	mu    sync.Mutex
	model whisper.Model
}

// NewWhisperRecognizer loads a whisper model from the given path. The caller
// must call Close when done.
func NewWhisperRecognizer(modelPath string) (*WhisperRecognizer, error) {
	model, err := whisper.New(modelPath)
	if err != nil {
		return nil, fmt.Errorf("load whisper model %q: %w", modelPath, err)
	}
	return &WhisperRecognizer{model: model}, nil
}

// Close releases the model resources.
func (r *WhisperRecognizer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.model == nil {
		return nil
	}
	err := r.model.Close()
	r.model = nil
	return err
}

// Transcribe runs one whisper pass over the audio file. An empty lang runs
// the pass with language auto-detection enabled.
func (r *WhisperRecognizer) Transcribe(ctx context.Context, audioPath, lang string) (Result, error) {
	samples, err := readWAV(audioPath)
	if err != nil {
		return Result{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.model == nil {
		return Result{}, fmt.Errorf("whisper model is closed")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	startTime := time.Now()

	wctx, err := r.model.NewContext()
	if err != nil {
		return Result{}, fmt.Errorf("create whisper context: %w", err)
	}
	wctx.SetTranslate(false)

	if lang == "" {
		lang = "auto"
	}
	if err := wctx.SetLanguage(lang); err != nil {
		return Result{}, fmt.Errorf("set language %q: %w", lang, err)
	}

	if err := wctx.Process(samples, nil, nil, nil); err != nil {
		return Result{}, fmt.Errorf("whisper process: %w", err)
	}

	var text strings.Builder
	for {
		segment, err := wctx.NextSegment()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("read whisper segment: %w", err)
		}
		if text.Len() > 0 {
			text.WriteString(" ")
		}
		text.WriteString(strings.TrimSpace(segment.Text))
	}

	detected := wctx.DetectedLanguage()
	log.Printf("[Whisper] pass complete: lang=%s detected=%s samples=%d duration=%v",
		lang, detected, len(samples), time.Since(startTime))

	return Result{
		Text:     strings.TrimSpace(text.String()),
		Language: detected,
	}, nil
}
