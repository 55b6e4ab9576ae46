package constants

// Context keys for validated requests
const (
	ContextKeySubmission = "submission"

	// Request plumbing
	ContextKeyRequestID = "RequestID"
)
