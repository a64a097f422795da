// Package server wires the tutoring services into the HTTP surface consumed
// by the web client.
package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	ChatHandler     *ChatHandler
	ProgressHandler *ProgressHandler
	LessonHandler   *LessonHandler
	SpeechHandler   *SpeechHandler
	AllowedOrigins  []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/", HealthCheck)
	router.GET("/healthcheck", HealthCheck)

	api := router.Group("/api")
	{
		// Chat
		api.POST("/chat", cfg.ChatHandler.Chat)

		// Progress
		api.GET("/student/:id/progress", cfg.ProgressHandler.GetProgress)
		api.GET("/student/:id/mistakes", cfg.ProgressHandler.GetCommonMistakes)
		api.GET("/student/:id/summary", cfg.ProgressHandler.GetDailySummary)
		api.GET("/student/:id/report", cfg.ProgressHandler.GetWeeklyReport)

		// Lessons and exercises
		api.POST("/student/:id/lesson", cfg.LessonHandler.GenerateLesson)
		api.POST("/student/:id/exercise", cfg.LessonHandler.GenerateExercises)
		api.GET("/vocabulary/daily", cfg.LessonHandler.GetDailyVocabulary)

		// Speech
		api.POST("/text-to-speech", cfg.SpeechHandler.TextToSpeech)
		api.POST("/speech-to-text", cfg.SpeechHandler.SpeechToText)
		api.GET("/speech/languages", cfg.SpeechHandler.GetSupportedLanguages)
	}

	return router
}
