package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osa911/formmailer/internal/logging"
	"github.com/osa911/formmailer/internal/models"
)

// SubmissionService turns form submissions into emails. Submit hands the
// work to a background goroutine; the caller never sees the mail outcome.
type SubmissionService struct {
	mailer  MailSender
	logger  *logging.Logger
	timeout time.Duration
	pending sync.WaitGroup
}

// NewSubmissionService creates a new submission service.
// timeout bounds each background send; zero means no bound.
func NewSubmissionService(mailer MailSender, logger *logging.Logger, timeout time.Duration) *SubmissionService {
	return &SubmissionService{
		mailer:  mailer,
		logger:  logger,
		timeout: timeout,
	}
}

// Submit schedules sub to be mailed and returns its tracking ID immediately.
func (s *SubmissionService) Submit(sub models.Submission) string {
	id := uuid.NewString()

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("Submission %s panicked while sending: %v", id, r)
			}
		}()

		ctx := context.Background()
		if s.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}

		if err := s.Deliver(ctx, sub); err != nil {
			s.logger.Error("Failed to send email for submission %s: %v", id, err)
			return
		}
		s.logger.Info("Email sent successfully for submission %s", id)
	}()

	s.logger.Debug("Scheduled submission %s", id)
	return id
}

// Deliver renders sub and sends it synchronously.
func (s *SubmissionService) Deliver(ctx context.Context, sub models.Submission) error {
	if s.mailer == nil {
		return ErrMailNotConfigured
	}
	return s.mailer.Send(ctx, Message{
		HTMLBody: GenerateHTMLTable(sub.Fields()),
	})
}

// Wait blocks until every scheduled send has finished or ctx is done.
func (s *SubmissionService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ErrShutdownTimeout
	}
}
