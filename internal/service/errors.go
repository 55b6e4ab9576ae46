package service

import "errors"

// Sentinel errors for service layer
var (
	ErrMailNotConfigured = errors.New("mail sender not configured")
	ErrMailSend          = errors.New("mail send failed")
	ErrShutdownTimeout   = errors.New("timed out waiting for pending submissions")
)
