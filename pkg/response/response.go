package response

import (
	"github.com/gin-gonic/gin"
)

// The API speaks the flat wire format the front end already consumes: list
// endpoints return raw JSON arrays, errors return {"error": "..."} with an
// optional field-detail map from validation.

type ErrorBody struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// Error writes a JSON error body and the given status.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorBody{Error: msg})
}

// ErrorWithDetails writes a JSON error body with field-level details.
func ErrorWithDetails(c *gin.Context, status int, msg string, details any) {
	c.JSON(status, ErrorBody{Error: msg, Details: details})
}

// AbortError writes a JSON error body and aborts the handler chain; for use
// inside middleware.
func AbortError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: msg})
}

// Message writes a {"message": ...} acknowledgement.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}
