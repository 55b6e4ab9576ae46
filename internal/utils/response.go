package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osa911/formmailer/internal/api/dto/common"
)

// HandleMessage sends a success response with just a message
func HandleMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, common.NewMessageResponse(message))
}
