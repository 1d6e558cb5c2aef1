package api

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/rhinocodelab/wras-v4/internal/detect"
	"github.com/rhinocodelab/wras-v4/internal/language"
	"github.com/rhinocodelab/wras-v4/internal/model"
	"github.com/rhinocodelab/wras-v4/internal/stt"
	"github.com/rhinocodelab/wras-v4/internal/utils"
)

// Server holds the handlers' dependencies. The detector wraps the local
// speech model (loaded once at startup); cloud may be nil when no cloud
// provider is configured.
type Server struct {
	detector *detect.Detector
	cloud    stt.Provider
}

// NewServer creates a Server with the given dependencies.
func NewServer(detector *detect.Detector, cloud stt.Provider) *Server {
	return &Server{
		detector: detector,
		cloud:    cloud,
	}
}

// RegisterRoutes registers all API routes
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/", s.root)
	r.GET("/health", s.health)
	r.POST("/detect-language", s.detectLanguage)
	r.POST("/transcribe", s.transcribe)
	r.POST("/transcribe-speech", s.transcribeSpeech)
}

// root handles GET / (liveness)
func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Audio Language Detection API is running",
		"status":  "healthy",
	})
}

// health handles GET /health (readiness)
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":              "healthy",
		"model_loaded":        s.detector != nil,
		"supported_languages": language.Supported(),
		"device_info":         "cpu",
	})
}

// checkAudioPath enforces the shared preconditions: the model must be loaded
// and the audio file must exist. Both are transport-level failures with
// distinct status codes, surfaced before any recognition runs.
func (s *Server) checkAudioPath(c *gin.Context, audioPath string) bool {
	if s.detector == nil {
		utils.Error(c, http.StatusInternalServerError, "speech model not loaded")
		return false
	}
	if _, err := os.Stat(audioPath); err != nil {
		utils.Error(c, http.StatusNotFound, fmt.Sprintf("Audio file not found: %s", audioPath))
		return false
	}
	return true
}

// detectLanguage handles POST /detect-language: a single auto-detect pass,
// no transcript.
func (s *Server) detectLanguage(c *gin.Context) {
	var req model.AudioPathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "audio_path is required")
		return
	}
	if !s.checkAudioPath(c, req.AudioPath) {
		return
	}

	c.JSON(http.StatusOK, s.detector.DetectLanguage(c.Request.Context(), req.AudioPath))
}

// transcribe handles POST /transcribe: detect the language, then re-transcribe
// with it pinned.
func (s *Server) transcribe(c *gin.Context) {
	var req model.AudioPathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "audio_path is required")
		return
	}
	if !s.checkAudioPath(c, req.AudioPath) {
		return
	}

	c.JSON(http.StatusOK, s.detector.Transcribe(c.Request.Context(), req.AudioPath))
}

// transcribeSpeech handles POST /transcribe-speech: cloud transcription with
// a caller-supplied language code. Recognition failures are 200 bodies with
// success=false; only the missing file and the unconfigured provider use
// status codes.
func (s *Server) transcribeSpeech(c *gin.Context) {
	var req model.SpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "audio_path and language_code are required")
		return
	}
	if s.cloud == nil {
		utils.Error(c, http.StatusInternalServerError, "cloud speech provider not configured")
		return
	}
	if _, err := os.Stat(req.AudioPath); err != nil {
		utils.Error(c, http.StatusNotFound, fmt.Sprintf("Audio file not found: %s", req.AudioPath))
		return
	}

	audio, err := os.ReadFile(req.AudioPath)
	if err != nil {
		c.JSON(http.StatusOK, model.TranscriptionResult{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	res, err := s.cloud.Transcribe(c.Request.Context(), audio, req.LanguageCode)
	if err != nil {
		c.JSON(http.StatusOK, model.TranscriptionResult{
			Success:    false,
			Confidence: 0.0,
			Error:      err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, model.TranscriptionResult{
		Success:    true,
		Transcript: res.Transcript,
		Confidence: res.Confidence,
	})
}
