package submission

// SubmissionRequest represents the landing page form payload.
// Pointers let "required" mean "present" so empty strings are accepted
// for every field except email.
type SubmissionRequest struct {
	FirstName *string `json:"firstName" binding:"required"`
	LastName  *string `json:"lastName" binding:"required"`
	Email     *string `json:"email" binding:"required,email"`
	Phone     *string `json:"phone" binding:"required"`
}

// SubmissionResponse is the acknowledgement returned once the email is scheduled
type SubmissionResponse struct {
	Message string `json:"message"`
}

// AcceptedMessage is the static acknowledgement text
const AcceptedMessage = "Email will be sent in background."
