package handlers

import (
	"klinik/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger returns the base logger tagged with the request id, if any.
func getLogger(base *zap.Logger, c *gin.Context) *zap.Logger {
	if base == nil {
		base = utils.GetLogger()
	}
	if id := c.GetString(utils.RequestIDKey); id != "" {
		return base.With(zap.String("requestId", id))
	}
	return base
}
