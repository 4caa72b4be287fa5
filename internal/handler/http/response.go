package http

import "github.com/gin-gonic/gin"

// ErrorResponse writes a client-facing error with the contract's message shape.
func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// SuccessResponse writes an arbitrary success payload.
func SuccessResponse(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}
