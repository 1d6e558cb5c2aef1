package asr

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func writeWAV(t *testing.T, sampleRate, channels int, samples []int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:   samples,
	}
	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadWAV(t *testing.T) {
	in := []int{0, 16384, -16384, 32767, -32768}
	path := writeWAV(t, 16000, 1, in)

	samples, err := readWAV(path)
	if err != nil {
		t.Fatalf("readWAV() error = %v", err)
	}
	if len(samples) != len(in) {
		t.Fatalf("len(samples) = %d, want %d", len(samples), len(in))
	}
	want := []float32{0, 0.5, -0.5, 32767.0 / 32768, -1}
	for i := range want {
		if math.Abs(float64(samples[i]-want[i])) > 1e-6 {
			t.Errorf("samples[%d] = %v, want %v", i, samples[i], want[i])
		}
	}
}

func TestReadWAVWrongSampleRate(t *testing.T) {
	path := writeWAV(t, 44100, 1, make([]int, 100))
	if _, err := readWAV(path); err == nil {
		t.Fatal("readWAV() error = nil, want sample-rate rejection")
	}
}

func TestReadWAVStereoRejected(t *testing.T) {
	path := writeWAV(t, 16000, 2, make([]int, 200))
	if _, err := readWAV(path); err == nil {
		t.Fatal("readWAV() error = nil, want mono-only rejection")
	}
}

func TestReadWAVNotAWavFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.wav")
	if err := os.WriteFile(path, []byte("not audio"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := readWAV(path); err == nil {
		t.Fatal("readWAV() error = nil, want invalid-file error")
	}
}

func TestReadWAVMissingFile(t *testing.T) {
	if _, err := readWAV("/nonexistent/audio.wav"); err == nil {
		t.Fatal("readWAV() error = nil, want open error")
	}
}
