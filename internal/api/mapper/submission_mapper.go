package mapper

import (
	"github.com/osa911/formmailer/internal/api/dto/v1/submission"
	"github.com/osa911/formmailer/internal/models"
)

// SubmissionRequestToModel converts a validated SubmissionRequest DTO to a domain Submission
func SubmissionRequestToModel(req *submission.SubmissionRequest) models.Submission {
	if req == nil {
		return models.Submission{}
	}

	return models.Submission{
		FirstName: deref(req.FirstName),
		LastName:  deref(req.LastName),
		Email:     deref(req.Email),
		Phone:     deref(req.Phone),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
