package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/journalist-portfolio-api/internal/models"
	"github.com/journalist-portfolio-api/internal/validation"
)

func isNotFound(err error) bool {
	return errors.Is(err, models.ErrNotFound)
}

// writeServiceError maps service errors onto the API error taxonomy:
// validation failures block with field errors, missing records are 404,
// an unconfigured backend is 503, everything else is a logged 500.
// Returns true when it handled the error.
func writeServiceError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"errors": verrs,
		})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
	case errors.Is(err, models.ErrNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "backend not configured"})
	default:
		return false
	}
	return true
}
