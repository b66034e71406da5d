package response

import (
	"github.com/gin-gonic/gin"
)

// MessageResponse is the body of write endpoints
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON sends data as the response body unchanged
func JSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// Message sends {"message": message}
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{Message: message})
}

// Error sends {"error": message}
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}
