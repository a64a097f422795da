package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rgkonda/englishtutor/internal/logger"
	"github.com/rgkonda/englishtutor/internal/progress"
	"github.com/rgkonda/englishtutor/internal/tutor"
)

type ChatHandler struct {
	log      *logger.Logger
	composer *tutor.Composer
	store    progress.Store
}

func NewChatHandler(log *logger.Logger, composer *tutor.Composer, store progress.Store) *ChatHandler {
	return &ChatHandler{
		log:      log.With("handler", "ChatHandler"),
		composer: composer,
		store:    store,
	}
}

type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	StudentID string `json:"student_id" binding:"required"`
	IsVoice   bool   `json:"is_voice"`
}

// POST /api/chat
func (ch *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ch.log.Infow("chat request", "studentID", req.StudentID, "isVoice", req.IsVoice)

	response := ch.composer.Respond(c.Request.Context(), req.StudentID, req.Message, req.IsVoice)
	ch.store.RecordTurn(req.StudentID, req.Message, response.Corrections, response.IsCorrect)

	c.JSON(http.StatusOK, response)
}
