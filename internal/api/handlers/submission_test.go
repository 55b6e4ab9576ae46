package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa911/formmailer/internal/api/constants"
	"github.com/osa911/formmailer/internal/api/dto/v1/submission"
	"github.com/osa911/formmailer/internal/logging"
	"github.com/osa911/formmailer/internal/service"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logging.Configure(&logging.Config{Level: logging.LevelError})
	os.Exit(m.Run())
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []service.Message
}

func (r *recordingMailer) Send(ctx context.Context, msg service.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, msg)
	return nil
}

func newHandler(mailer service.MailSender) (*SubmissionHandler, *service.SubmissionService) {
	svc := service.NewSubmissionService(mailer, logging.NewWriterLogger(io.Discard, logging.LevelError), time.Second)
	return NewSubmissionHandler(svc), svc
}

func strPtr(s string) *string { return &s }

func TestSubmissionHandler_Submit(t *testing.T) {
	mailer := &recordingMailer{}
	h, svc := newHandler(mailer)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/send-json-mail", nil)
	c.Set(constants.ContextKeySubmission, &submission.SubmissionRequest{
		FirstName: strPtr("A"),
		LastName:  strPtr("B"),
		Email:     strPtr("a@example.com"),
		Phone:     strPtr("1"),
	})

	h.Submit(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Email will be sent in background."}`, w.Body.String())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, svc.Wait(ctx))
	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].HTMLBody, "<td>a@example.com</td>")
}

func TestSubmissionHandler_MissingContext(t *testing.T) {
	mailer := &recordingMailer{}
	h, _ := newHandler(mailer)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/send-json-mail", nil)

	h.Submit(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_SERVER_ERROR")
	assert.Empty(t, mailer.sent)
}

func TestSubmissionHandler_WrongContextType(t *testing.T) {
	h, _ := newHandler(&recordingMailer{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/send-json-mail", nil)
	c.Set(constants.ContextKeySubmission, "not a request")

	h.Submit(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHealthHandler_Check(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	NewHealthHandler().Check(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Health check OK")
}
