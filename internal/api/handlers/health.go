package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/osa911/formmailer/internal/utils"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check reports process liveness. It does not contact the SMTP server.
func (h *HealthHandler) Check(c *gin.Context) {
	utils.HandleMessage(c, "Health check OK")
}
