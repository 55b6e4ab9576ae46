package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osa911/formmailer/internal/api/constants"
	"github.com/osa911/formmailer/internal/api/dto/common"
	"github.com/osa911/formmailer/internal/api/dto/v1/submission"
	"github.com/osa911/formmailer/internal/api/mapper"
	"github.com/osa911/formmailer/internal/service"
	"github.com/osa911/formmailer/internal/utils"
)

type SubmissionHandler struct {
	submissionService *service.SubmissionService
}

func NewSubmissionHandler(submissionService *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
	}
}

// Submit schedules the validated submission for mailing and acknowledges
// immediately. The mail outcome is never reported to the caller.
func (h *SubmissionHandler) Submit(c *gin.Context) {
	// Set by the validation middleware
	data, exists := c.Get(constants.ContextKeySubmission)
	if !exists {
		utils.HandleAPIError(c, errors.New("missing validated submission"), http.StatusInternalServerError, common.ErrCodeInternalServer, "Submission data not found in context")
		return
	}

	req, ok := data.(*submission.SubmissionRequest)
	if !ok {
		utils.HandleAPIError(c, errors.New("unexpected submission type"), http.StatusInternalServerError, common.ErrCodeInternalServer, "Invalid submission data format")
		return
	}

	id := h.submissionService.Submit(mapper.SubmissionRequestToModel(req))
	c.Header("X-Submission-ID", id)

	c.JSON(http.StatusOK, submission.SubmissionResponse{
		Message: submission.AcceptedMessage,
	})
}
