package asr

import (
	"fmt"
	"os"

	"github.com/go-audio/wav"
)

// Whisper consumes mono 16kHz samples; other formats are rejected rather
// than resampled.
const (
	wantSampleRate = 16000
	wantChannels   = 1
)

// readWAV decodes a mono 16kHz PCM WAV file into normalized float32 samples.
func readWAV(path string) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%s is not a valid wav file", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	if buf.Format.SampleRate != wantSampleRate || buf.Format.NumChannels != wantChannels {
		return nil, fmt.Errorf("expected %dHz mono audio, got %dHz %d-channel",
			wantSampleRate, buf.Format.SampleRate, buf.Format.NumChannels)
	}

	bitDepth := dec.BitDepth
	if bitDepth == 0 {
		bitDepth = 16
	}
	scale := float32(int(1) << (bitDepth - 1))
	samples := make([]float32, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float32(v) / scale
	}
	return samples, nil
}
