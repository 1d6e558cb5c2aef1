package language

import "fmt"

// Entry describes one supported spoken language.
type Entry struct {
	Name string // display name shown to callers
	Code string // region-qualified locale code, e.g. "hi-IN"
}

// DefaultCode is the locale code used when a detected language is not in the registry.
const DefaultCode = "en-IN"

// Confidence tiers reported for language detection. These are fixed policy
// values keyed on registry membership, not model probabilities.
const (
	ConfidenceKnown   = 0.9
	ConfidenceUnknown = 0.7
)

// registry maps whisper language identifiers to display names and locale codes
var registry = map[string]Entry{
	"en": {Name: "English", Code: "en-IN"},
	"hi": {Name: "हिंदी (Hindi)", Code: "hi-IN"},
	"mr": {Name: "मराठी (Marathi)", Code: "mr-IN"},
	"gu": {Name: "ગુજરાતી (Gujarati)", Code: "gu-IN"},
}

// supported lists the curated identifiers in a stable order for /health.
var supported = []string{"en", "hi", "mr", "gu"}

// Lookup resolves a language identifier to its entry. Unknown identifiers are
// not errors; they resolve to a synthetic entry naming the identifier, with
// the default locale code.
func Lookup(id string) Entry {
	if e, ok := registry[id]; ok {
		return e
	}
	return Entry{
		Name: fmt.Sprintf("Unknown (%s)", id),
		Code: DefaultCode,
	}
}

// IsSupported reports whether id is one of the curated identifiers.
func IsSupported(id string) bool {
	_, ok := registry[id]
	return ok
}

// Supported returns the curated language identifiers.
func Supported() []string {
	return append([]string(nil), supported...)
}

// Classify resolves a raw identifier returned by the speech model into a
// display name, a locale code and a detection confidence.
func Classify(id string) (name, code string, confidence float64) {
	e := Lookup(id)
	confidence = ConfidenceUnknown
	if IsSupported(id) {
		confidence = ConfidenceKnown
	}
	return e.Name, e.Code, confidence
}
