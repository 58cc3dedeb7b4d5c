package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"triply/internal/domain"
)

// Every response is wrapped: {"data": ...} on success, {"error": "..."}
// with a 4xx/5xx status on failure.

func respondData(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, gin.H{"data": payload})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondServiceError maps service errors onto the error taxonomy:
// ValidationError → 400 with its reason, ErrNotFound → 404, anything
// else → 500 without leaking internals.
func respondServiceError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		respondError(c, http.StatusBadRequest, vErr.Reason)
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		respondError(c, http.StatusNotFound, "not found")
		return
	}
	respondError(c, http.StatusInternalServerError, "internal error")
}
