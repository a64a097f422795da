package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rgkonda/englishtutor/internal/logger"
	"github.com/rgkonda/englishtutor/internal/tutor"
)

type LessonHandler struct {
	log      *logger.Logger
	composer *tutor.Composer
}

func NewLessonHandler(log *logger.Logger, composer *tutor.Composer) *LessonHandler {
	return &LessonHandler{
		log:      log.With("handler", "LessonHandler"),
		composer: composer,
	}
}

type LessonRequest struct {
	LessonType      string `json:"lesson_type" binding:"required"`
	DurationMinutes int    `json:"duration_minutes"`
}

// POST /api/student/:id/lesson
func (lh *LessonHandler) GenerateLesson(c *gin.Context) {
	studentID := c.Param("id")

	var req LessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.DurationMinutes <= 0 {
		req.DurationMinutes = 15
	}

	lh.log.Infow("lesson request", "studentID", studentID, "lessonType", req.LessonType)

	lesson := lh.composer.GenerateLesson(c.Request.Context(), studentID, req.LessonType, req.DurationMinutes)
	c.JSON(http.StatusOK, lesson)
}

type ExerciseRequest struct {
	ExerciseType string `json:"exercise_type" binding:"required"`
	Difficulty   string `json:"difficulty" binding:"required"`
}

// POST /api/student/:id/exercise
func (lh *LessonHandler) GenerateExercises(c *gin.Context) {
	studentID := c.Param("id")

	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lh.log.Infow("exercise request", "studentID", studentID, "exerciseType", req.ExerciseType, "difficulty", req.Difficulty)

	set := lh.composer.GenerateExercises(c.Request.Context(), studentID, req.ExerciseType, req.Difficulty)
	c.JSON(http.StatusOK, set)
}

// GET /api/vocabulary/daily
func (lh *LessonHandler) GetDailyVocabulary(c *gin.Context) {
	c.JSON(http.StatusOK, lh.composer.DailyVocabulary(time.Now()))
}
