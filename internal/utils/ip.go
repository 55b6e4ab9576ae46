package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// GetRealIP returns the submitting client's address when the service sits
// behind a reverse proxy. X-Real-IP is preferred, then the leftmost
// X-Forwarded-For entry, then gin's ClientIP.
func GetRealIP(c *gin.Context) string {
	if ip := strings.TrimSpace(c.GetHeader("X-Real-IP")); ip != "" {
		return ip
	}

	if forwardedFor := c.GetHeader("X-Forwarded-For"); forwardedFor != "" {
		client, _, _ := strings.Cut(forwardedFor, ",")
		if client = strings.TrimSpace(client); client != "" {
			return client
		}
	}

	return c.ClientIP()
}
