package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/osa911/formmailer/internal/api/dto/common"
	"github.com/osa911/formmailer/internal/logging"
)

// HandleAPIError logs err through the process logger and aborts with the
// error envelope. Error details are only exposed outside gin's release mode.
func HandleAPIError(c *gin.Context, err error, status int, code common.ErrorCode, message string) {
	logging.GetLogger().LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)

	var errorDetails interface{}
	if gin.Mode() != gin.ReleaseMode && err != nil {
		errorDetails = err.Error()
	}

	c.AbortWithStatusJSON(status, common.NewErrorResponse(code, message, errorDetails))
}
