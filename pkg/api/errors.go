package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentprobe/agentprobe/pkg/services"
)

// errorResponse is the JSON body for all error replies.
type errorResponse struct {
	Error string `json:"error"`
}

// mapServiceError translates service-layer errors to HTTP error responses
// and writes them to the context.
func mapServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, errorResponse{Error: validErr.Error()})
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
		return
	}
	if errors.Is(err, services.ErrNotCancellable) {
		c.JSON(http.StatusConflict, errorResponse{Error: "run is not in a cancellable state"})
		return
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		c.JSON(http.StatusConflict, errorResponse{Error: "resource already exists"})
		return
	}
	if errors.Is(err, services.ErrInvalidState) {
		c.JSON(http.StatusConflict, errorResponse{Error: "operation not valid for the resource's current state"})
		return
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err, "path", c.FullPath())
	c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

// badRequest writes a 400 with the given message.
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: message})
}
