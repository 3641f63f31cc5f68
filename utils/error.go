package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
					zap.String("requestId", c.GetString(RequestIDKey)),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	JSONErrorCode(c, status, "", message, details)
}

// JSONErrorCode is JSONError with a machine readable code.
func JSONErrorCode(c *gin.Context, status int, code, message, details string) {
	GetLogger().Warn(message,
		zap.Int("status", status),
		zap.String("code", code),
		zap.String("details", details),
		zap.String("requestId", c.GetString(RequestIDKey)),
	)
	c.AbortWithStatusJSON(status, ErrorResponse{Message: message, Code: code, Details: details})
}
