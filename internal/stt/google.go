package stt

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// The service accepts mono 16kHz PCM WAV only, so the recognition config is
// fixed rather than derived from the file.
const (
	googleEncoding   = "LINEAR16"
	googleSampleRate = 16000

	defaultGoogleEndpoint = "https://speech.googleapis.com"
)

// GoogleProvider implements STT using Google Cloud Speech-to-Text REST API
type GoogleProvider struct {
	projectID  string
	apiKey     string
	keyFile    string
	endpoint   string
	httpClient *http.Client
	useAPIKey  bool // true if using API key, false if using service account
}

// NewGoogleProvider creates a new Google STT provider
// keyData can be either:
//   - An API key (39 characters, typically starts with "AIzaSy")
//   - A file path to a JSON key file (e.g., "./keys/google-service-account.json")
//   - A JSON string containing the service account credentials
func NewGoogleProvider(projectID, keyData string) (*GoogleProvider, error) {
	keyDataTrimmed := strings.TrimSpace(keyData)

	// Check if it's an API key (typically 39 chars, starts with "AIzaSy")
	if len(keyDataTrimmed) == 39 && strings.HasPrefix(keyDataTrimmed, "AIzaSy") {
		log.Printf("[Google STT] Using API key authentication")
		return &GoogleProvider{
			projectID:  projectID,
			apiKey:     keyDataTrimmed,
			endpoint:   defaultGoogleEndpoint,
			httpClient: &http.Client{Timeout: 90 * time.Second},
			useAPIKey:  true,
		}, nil
	}

	// Otherwise, treat as service account (JSON file or JSON string)
	ctx := context.Background()
	var client *http.Client
	var jsonData []byte
	var err error

	if keyDataTrimmed == "" {
		// Try to use default credentials
		creds, err := google.FindDefaultCredentials(ctx, "https://www.googleapis.com/auth/cloud-platform")
		if err != nil {
			return nil, fmt.Errorf("failed to find default credentials: %w. Please set GOOGLE_STT_KEY_FILE", err)
		}
		client = oauth2.NewClient(ctx, creds.TokenSource)
	} else {
		// Check if keyData is a JSON string (starts with {) or a file path
		if strings.HasPrefix(keyDataTrimmed, "{") {
			log.Printf("[Google STT] Using JSON string from environment variable")
			jsonData = []byte(keyDataTrimmed)
		} else {
			log.Printf("[Google STT] Reading key file: %s", keyDataTrimmed)
			jsonData, err = os.ReadFile(keyDataTrimmed)
			if err != nil {
				return nil, fmt.Errorf("failed to read key file '%s': %w", keyDataTrimmed, err)
			}
		}

		creds, err := google.CredentialsFromJSON(ctx, jsonData, "https://www.googleapis.com/auth/cloud-platform")
		if err != nil {
			return nil, fmt.Errorf("failed to create credentials from JSON: %w", err)
		}
		client = oauth2.NewClient(ctx, creds.TokenSource)
	}

	return &GoogleProvider{
		projectID:  projectID,
		keyFile:    keyDataTrimmed,
		endpoint:   defaultGoogleEndpoint,
		httpClient: client,
		useAPIKey:  false,
	}, nil
}

// Name returns the provider name
func (p *GoogleProvider) Name() string {
	return "google"
}

// GoogleSTTRequest represents Google Speech-to-Text API request
type GoogleSTTRequest struct {
	Config GoogleSTTConfig `json:"config"`
	Audio  GoogleSTTAudio  `json:"audio"`
}

// GoogleSTTConfig represents recognition config
type GoogleSTTConfig struct {
	Encoding                   string `json:"encoding"`
	SampleRateHertz            int    `json:"sampleRateHertz"`
	LanguageCode               string `json:"languageCode"`
	EnableAutomaticPunctuation bool   `json:"enableAutomaticPunctuation"`
	EnableWordTimeOffsets      bool   `json:"enableWordTimeOffsets"`
	EnableWordConfidence       bool   `json:"enableWordConfidence"`
}

// GoogleSTTAudio represents audio data
type GoogleSTTAudio struct {
	Content string `json:"content"` // Base64 encoded
}

// GoogleSTTResponse represents Google Speech-to-Text API response
type GoogleSTTResponse struct {
	Results []GoogleSTTResult `json:"results"`
	Error   *GoogleSTTError   `json:"error,omitempty"`
}

// GoogleSTTResult represents one independently-recognized segment
type GoogleSTTResult struct {
	Alternatives []GoogleSTTAlternative `json:"alternatives"`
}

// GoogleSTTAlternative represents a transcript alternative
type GoogleSTTAlternative struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
}

// GoogleSTTError represents an API error
type GoogleSTTError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Transcribe sends audio data to Google Cloud Speech-to-Text and aggregates
// all returned segments into one transcript. The caller supplies the language
// code; there is no auto-detection on this path.
func (p *GoogleProvider) Transcribe(ctx context.Context, audio []byte, languageCode string) (*Result, error) {
	startTime := time.Now()

	log.Printf("[Google STT] Processing audio: size=%d bytes, language=%s", len(audio), languageCode)

	// Check if audio payload is too small (likely empty or corrupted)
	if len(audio) < 1000 {
		return nil, fmt.Errorf("audio payload too small (%d bytes), may be empty or corrupted", len(audio))
	}

	reqBody := GoogleSTTRequest{
		Config: GoogleSTTConfig{
			Encoding:                   googleEncoding,
			SampleRateHertz:            googleSampleRate,
			LanguageCode:               languageCode,
			EnableAutomaticPunctuation: true,
			EnableWordTimeOffsets:      true,
			EnableWordConfidence:       true,
		},
		Audio: GoogleSTTAudio{
			Content: base64.StdEncoding.EncodeToString(audio),
		},
	}

	reqJSON, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	// Build API URL
	var apiURL string
	if p.useAPIKey {
		// API key goes as a query parameter on the standard endpoint
		apiURL = fmt.Sprintf("%s/v1/speech:recognize?key=%s", p.endpoint, p.apiKey)
	} else {
		apiURL = fmt.Sprintf("%s/v1/projects/%s:recognize", p.endpoint, p.projectID)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", apiURL, bytes.NewReader(reqJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	log.Printf("[Google STT] Calling Google Speech-to-Text API...")
	resp, err := p.httpClient.Do(req)
	if err != nil {
		log.Printf("[Google STT] HTTP error: %v", err)
		return &Result{
			Provider: p.Name(),
		}, fmt.Errorf("failed to send request to Google Speech-to-Text: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	// Log raw response for debugging (first 500 chars)
	responsePreview := string(body)
	if len(responsePreview) > 500 {
		responsePreview = responsePreview[:500] + "..."
	}
	log.Printf("[Google STT] Response preview: %s", responsePreview)

	// Check HTTP status
	if resp.StatusCode != http.StatusOK {
		var apiErr GoogleSTTError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
			log.Printf("[Google STT] API error: Code %d, Status %s, Message: %s", apiErr.Code, apiErr.Status, apiErr.Message)
			return &Result{
				Provider:    p.Name(),
				RawResponse: string(body),
			}, fmt.Errorf("Google Speech-to-Text API error: %s", apiErr.Message)
		}
		log.Printf("[Google STT] API error: Status %d, Body: %s", resp.StatusCode, string(body))
		return &Result{
			Provider:    p.Name(),
			RawResponse: string(body),
		}, fmt.Errorf("Google Speech-to-Text API returned status %d: %s", resp.StatusCode, string(body))
	}

	// Parse JSON response
	var sttResp GoogleSTTResponse
	if err := json.Unmarshal(body, &sttResp); err != nil {
		log.Printf("[Google STT] Failed to parse response. Raw body: %s", string(body))
		return &Result{
			Provider:    p.Name(),
			RawResponse: string(body),
		}, fmt.Errorf("failed to parse Google Speech-to-Text response: %w", err)
	}

	// Check for API errors
	if sttResp.Error != nil {
		log.Printf("[Google STT] API error: Code %d, Status %s, Message: %s", sttResp.Error.Code, sttResp.Error.Status, sttResp.Error.Message)
		return &Result{
			Provider:    p.Name(),
			RawResponse: string(body),
		}, fmt.Errorf("Google Speech-to-Text API error: %s", sttResp.Error.Message)
	}

	transcript, confidence, err := aggregate(sttResp.Results)
	if err != nil {
		log.Printf("[Google STT] %v", err)
		return &Result{
			Provider:    p.Name(),
			RawResponse: string(body),
		}, err
	}

	duration := time.Since(startTime)
	log.Printf("[Google STT] Transcription successful: segments=%d, confidence=%.2f, length=%d, duration=%v",
		len(sttResp.Results), confidence, len(transcript), duration)

	return &Result{
		Transcript:  transcript,
		Confidence:  confidence,
		Provider:    p.Name(),
		RawResponse: string(body),
	}, nil
}

// aggregate combines all segments into one transcript and one confidence
// value: top alternatives joined by single spaces in response order, and the
// arithmetic mean of their confidence scores. Zero segments is a
// no-speech-detected condition, not a crash.
func aggregate(results []GoogleSTTResult) (string, float64, error) {
	var transcripts []string
	var sum float64
	for _, result := range results {
		if len(result.Alternatives) == 0 {
			continue
		}
		top := result.Alternatives[0]
		transcripts = append(transcripts, top.Transcript)
		sum += top.Confidence
	}
	if len(transcripts) == 0 {
		return "", 0.0, fmt.Errorf("no speech detected in audio")
	}
	return strings.Join(transcripts, " "), sum / float64(len(transcripts)), nil
}
