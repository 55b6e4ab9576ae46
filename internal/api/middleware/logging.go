package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/osa911/formmailer/internal/api/constants"
	"github.com/osa911/formmailer/internal/logging"
	"github.com/osa911/formmailer/internal/utils"
)

// RequestLogger logs one access line per request when enabled
func RequestLogger(logger *logging.Logger, enabled bool) gin.HandlerFunc {
	logger.Debug("RequestLogger middleware initialized (enabled=%v)", enabled)

	if !enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.LogHTTPRequest(
			c.Request.Method,
			path,
			utils.GetRealIP(c),
			c.GetString(constants.ContextKeyRequestID),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
