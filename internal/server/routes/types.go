package routes

import (
	"github.com/osa911/formmailer/internal/api/handlers"
	"github.com/osa911/formmailer/internal/api/middleware"
)

// Handlers contains all the route handlers
type Handlers struct {
	Health     *handlers.HealthHandler
	Submission *handlers.SubmissionHandler
}

// Middleware contains the per-route middleware
type Middleware struct {
	Validation *middleware.ValidationMiddleware
}
