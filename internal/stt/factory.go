package stt

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// CreateProvider creates a cloud STT provider based on environment configuration
func CreateProvider() (Provider, error) {
	providerName := strings.ToLower(os.Getenv("CLOUD_STT_PROVIDER"))

	// Default to Google if not specified
	if providerName == "" {
		providerName = "google"
		log.Printf("[STT Factory] CLOUD_STT_PROVIDER not set, defaulting to 'google'")
	}

	switch providerName {
	case "google":
		return createGoogleProvider()
	case "openai":
		return createOpenAIProvider()
	default:
		return nil, fmt.Errorf("unsupported cloud STT provider: %s. Supported: google, openai", providerName)
	}
}

// createGoogleProvider creates a Google STT provider
// GOOGLE_STT_KEY_FILE can be either:
//   - An API key (39 characters, typically starts with "AIzaSy")
//   - A file path to a JSON key file (e.g., "./keys/google-service-account.json")
//   - A JSON string containing the service account credentials
func createGoogleProvider() (Provider, error) {
	projectID := os.Getenv("GOOGLE_STT_PROJECT_ID")
	keyData := os.Getenv("GOOGLE_STT_KEY_FILE")

	// Project ID is optional when using API key
	keyDataTrimmed := strings.TrimSpace(keyData)
	isAPIKey := len(keyDataTrimmed) == 39 && strings.HasPrefix(keyDataTrimmed, "AIzaSy")

	if !isAPIKey && projectID == "" {
		return nil, fmt.Errorf("GOOGLE_STT_PROJECT_ID environment variable is required when using service account")
	}

	if keyData == "" {
		return nil, fmt.Errorf("GOOGLE_STT_KEY_FILE environment variable is not set. It can be:\n  - An API key (39 characters)\n  - A file path to a JSON key file\n  - A JSON string containing service account credentials")
	}

	if isAPIKey {
		log.Printf("[STT Factory] Creating Google STT provider with API key")
	} else {
		log.Printf("[STT Factory] Creating Google STT provider with project: %s", projectID)
	}
	return NewGoogleProvider(projectID, keyData)
}

// createOpenAIProvider creates an OpenAI STT provider
func createOpenAIProvider() (Provider, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}

	log.Printf("[STT Factory] Creating OpenAI STT provider")
	return NewOpenAIProvider(apiKey), nil
}
