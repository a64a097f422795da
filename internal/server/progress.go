package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rgkonda/englishtutor/internal/logger"
	"github.com/rgkonda/englishtutor/internal/progress"
)

type ProgressHandler struct {
	log   *logger.Logger
	store progress.Store
}

func NewProgressHandler(log *logger.Logger, store progress.Store) *ProgressHandler {
	return &ProgressHandler{
		log:   log.With("handler", "ProgressHandler"),
		store: store,
	}
}

// GET /api/student/:id/progress
func (ph *ProgressHandler) GetProgress(c *gin.Context) {
	studentID := c.Param("id")
	c.JSON(http.StatusOK, ph.store.Progress(studentID))
}

// GET /api/student/:id/mistakes
func (ph *ProgressHandler) GetCommonMistakes(c *gin.Context) {
	studentID := c.Param("id")

	mistakes := ph.store.CommonMistakes(studentID)
	if mistakes == nil {
		mistakes = []progress.MistakeAnalysis{}
	}
	c.JSON(http.StatusOK, mistakes)
}

// GET /api/student/:id/summary?date=YYYY-MM-DD
func (ph *ProgressHandler) GetDailySummary(c *gin.Context) {
	studentID := c.Param("id")
	date := c.Query("date")
	c.JSON(http.StatusOK, ph.store.DailySummary(studentID, date))
}

// GET /api/student/:id/report
func (ph *ProgressHandler) GetWeeklyReport(c *gin.Context) {
	studentID := c.Param("id")
	c.JSON(http.StatusOK, ph.store.WeeklyReport(studentID))
}
