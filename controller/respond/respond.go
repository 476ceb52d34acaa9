// Package respond maps service results onto HTTP responses.
package respond

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"planner/dto"
	"planner/logging"
	"planner/services"
)

// Error writes the status for err. Unexpected errors are logged and
// reported as a generic 500.
func Error(c *gin.Context, err error) {
	if vErr := services.AsValidationError(err); vErr != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid input", Issues: vErr.Issues})
		return
	}
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Conflict"})
	default:
		logging.Event("internal_error", c.GetString("userId"), map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.FullPath(),
			"error":  err,
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// BindJSON decodes and validates the body into req. It writes a 400 and
// returns false on failure.
func BindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		badRequest(c, err, "body", "must be a valid JSON object")
		return false
	}
	return true
}

// BindQuery is BindJSON for query parameters.
func BindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		badRequest(c, err, "query", "is malformed")
		return false
	}
	return true
}

func badRequest(c *gin.Context, err error, field, message string) {
	if vErr := services.AsValidationError(err); vErr != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid input", Issues: vErr.Issues})
		return
	}
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:  "Invalid input",
		Issues: []dto.Issue{{Field: field, Message: message}},
	})
}

// Deleted is the body returned by every delete route.
func Deleted(c *gin.Context, what string) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: what + " deleted successfully"})
}
