package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/osa911/formmailer/internal/api/handlers"
)

// SubmissionPath is the public form endpoint
const SubmissionPath = "/send-json-mail"

// SetupSubmissionRoutes configures the form submission endpoint
func SetupSubmissionRoutes(router *gin.Engine, submission *handlers.SubmissionHandler, m *Middleware) {
	router.POST(SubmissionPath,
		m.Validation.ValidateSubmissionRequest(),
		submission.Submit,
	)
}
