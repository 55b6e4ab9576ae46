package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osa911/formmailer/internal/api/constants"
	"github.com/osa911/formmailer/internal/api/dto/common"
	"github.com/osa911/formmailer/internal/api/dto/v1/submission"
	"github.com/osa911/formmailer/internal/api/validation"
	"github.com/osa911/formmailer/internal/logging"
	"github.com/osa911/formmailer/internal/utils"
)

// ValidationMiddleware handles request validation
type ValidationMiddleware struct {
	logger *logging.Logger
}

// NewValidationMiddleware creates a new validation middleware
func NewValidationMiddleware(logger *logging.Logger) *ValidationMiddleware {
	return &ValidationMiddleware{logger: logger}
}

// ValidateSubmissionRequest validates the form submission payload and stores
// it in the context under constants.ContextKeySubmission.
func (m *ValidationMiddleware) ValidateSubmissionRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req submission.SubmissionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var details interface{} = err.Error()
			if fieldErrs := validation.FormatValidationError(err); len(fieldErrs) > 0 {
				details = fieldErrs
			}
			m.logger.Warn("Rejected submission from %s: %v", utils.GetRealIP(c), err)
			c.AbortWithStatusJSON(http.StatusBadRequest,
				common.NewErrorResponse(common.ErrCodeValidation, "Invalid request body", details))
			return
		}

		c.Set(constants.ContextKeySubmission, &req)
		c.Next()
	}
}
