package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler recovers from handler panics and replies with a generic 500.
// The panic value never reaches the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				GetLogger().Error("Panic in handler",
					zap.Any("panic", r),
					zap.String("path", c.FullPath()))
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
				})
			}
		}()
		c.Next()
	}
}

// JSONError logs and sends a structured error reply.
func JSONError(c *gin.Context, status int, message string, details string) {
	GetLogger().Warn(message, zap.Int("status", status), zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}
