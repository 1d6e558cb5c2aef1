package language

import "testing"

func TestLookupCurated(t *testing.T) {
	tests := []struct {
		id   string
		name string
		code string
	}{
		{"en", "English", "en-IN"},
		{"hi", "हिंदी (Hindi)", "hi-IN"},
		{"mr", "मराठी (Marathi)", "mr-IN"},
		{"gu", "ગુજરાતી (Gujarati)", "gu-IN"},
	}
	for _, tt := range tests {
		e := Lookup(tt.id)
		if e.Name != tt.name {
			t.Errorf("Lookup(%q).Name = %q, want %q", tt.id, e.Name, tt.name)
		}
		if e.Code != tt.code {
			t.Errorf("Lookup(%q).Code = %q, want %q", tt.id, e.Code, tt.code)
		}
	}
}

func TestLookupFallback(t *testing.T) {
	for _, id := range []string{"fr", "zh", "xx", ""} {
		e := Lookup(id)
		want := "Unknown (" + id + ")"
		if e.Name != want {
			t.Errorf("Lookup(%q).Name = %q, want %q", id, e.Name, want)
		}
		if e.Code != DefaultCode {
			t.Errorf("Lookup(%q).Code = %q, want %q", id, e.Code, DefaultCode)
		}
	}
}

func TestClassifyConfidence(t *testing.T) {
	for _, id := range []string{"en", "hi", "mr", "gu"} {
		if _, _, conf := Classify(id); conf != ConfidenceKnown {
			t.Errorf("Classify(%q) confidence = %v, want %v", id, conf, ConfidenceKnown)
		}
	}
	for _, id := range []string{"fr", "ta", "unknown"} {
		if _, _, conf := Classify(id); conf != ConfidenceUnknown {
			t.Errorf("Classify(%q) confidence = %v, want %v", id, conf, ConfidenceUnknown)
		}
	}
}

func TestSupported(t *testing.T) {
	got := Supported()
	want := []string{"en", "hi", "mr", "gu"}
	if len(got) != len(want) {
		t.Fatalf("Supported() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Supported()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	for _, id := range want {
		if !IsSupported(id) {
			t.Errorf("IsSupported(%q) = false, want true", id)
		}
	}
}
