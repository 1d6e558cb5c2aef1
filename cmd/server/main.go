package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/rhinocodelab/wras-v4/internal/api"
	"github.com/rhinocodelab/wras-v4/internal/asr"
	"github.com/rhinocodelab/wras-v4/internal/config"
	"github.com/rhinocodelab/wras-v4/internal/detect"
	"github.com/rhinocodelab/wras-v4/internal/stt"
)

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode (default to release mode)
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Load the whisper model once, before any request is served
	log.Printf("Loading whisper model from %s...", cfg.WhisperModel)
	recognizer, err := asr.NewWhisperRecognizer(cfg.WhisperModel)
	if err != nil {
		log.Fatalf("Failed to load whisper model: %v", err)
	}
	defer recognizer.Close()
	log.Println("Whisper model loaded successfully")

	detector := detect.New(recognizer)

	// Cloud transcription is optional; the local endpoints work without it
	cloud, err := stt.CreateProvider()
	if err != nil {
		log.Printf("Warning: cloud STT provider unavailable: %v. Continuing with local endpoints only.", err)
	}

	r := gin.Default()
	r.Use(api.CORSMiddleware(), api.RequestID())

	api.NewServer(detector, cloud).RegisterRoutes(r)

	log.Printf("Audio language detection service running on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
