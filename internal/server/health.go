package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /healthcheck
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "English tutor API is running!",
		"version": "1.0.0",
	})
}
