package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rgkonda/englishtutor/internal/logger"
	"github.com/rgkonda/englishtutor/internal/speech"
)

type SpeechHandler struct {
	log *logger.Logger
	svc *speech.Service
}

func NewSpeechHandler(log *logger.Logger, svc *speech.Service) *SpeechHandler {
	return &SpeechHandler{
		log: log.With("handler", "SpeechHandler"),
		svc: svc,
	}
}

type TextToSpeechRequest struct {
	Text         string `json:"text" binding:"required"`
	LanguageCode string `json:"language_code"`
}

type TextToSpeechResponse struct {
	AudioContent *string `json:"audio_content"`
	Message      string  `json:"message"`
}

// POST /api/text-to-speech
//
// Synthesis failures are not errors to the client: the frontend falls back to
// browser speech synthesis, so this endpoint always answers 200.
func (sh *SpeechHandler) TextToSpeech(c *gin.Context) {
	var req TextToSpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.LanguageCode == "" {
		req.LanguageCode = "en-US"
	}

	audio, err := sh.svc.TextToSpeech(c.Request.Context(), req.Text, req.LanguageCode)
	if err != nil {
		sh.log.Warnw("text-to-speech failed", "language", req.LanguageCode, "error", err)
		c.JSON(http.StatusOK, TextToSpeechResponse{
			AudioContent: nil,
			Message:      "Text-to-speech service unavailable, using browser fallback",
		})
		return
	}

	c.JSON(http.StatusOK, TextToSpeechResponse{
		AudioContent: &audio,
		Message:      "Audio generated successfully",
	})
}

// POST /api/speech-to-text
func (sh *SpeechHandler) SpeechToText(c *gin.Context) {
	file, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio file is required"})
		return
	}

	opened, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer func() {
		_ = opened.Close()
	}()

	audio, err := io.ReadAll(opened)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	languageCode := c.DefaultPostForm("language_code", "en-US")
	c.JSON(http.StatusOK, sh.svc.SpeechToText(audio, languageCode))
}

// GET /api/speech/languages
func (sh *SpeechHandler) GetSupportedLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, sh.svc.SupportedLanguages())
}
