package handler

import (
	"errors"
	"log"
	"net/http"

	"propertyhub/internal/model"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors to HTTP status codes
func respondError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("❌ %s failed: %v", action, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}
