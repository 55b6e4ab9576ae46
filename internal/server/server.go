package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/osa911/formmailer/internal/api/handlers"
	"github.com/osa911/formmailer/internal/api/middleware"
	"github.com/osa911/formmailer/internal/config"
	"github.com/osa911/formmailer/internal/logging"
	"github.com/osa911/formmailer/internal/server/routes"
	"github.com/osa911/formmailer/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router      *gin.Engine
	cfg         *config.Config
	logger      *logging.Logger
	submissions *service.SubmissionService
}

// NewServer creates a new server instance with every route registered.
// gin runs in release mode unless a test has put it in test mode.
func NewServer(cfg *config.Config, logger *logging.Logger, submissions *service.SubmissionService) *Server {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	router := gin.New()

	routes.SetupGlobalMiddleware(router, cfg, logger)
	routes.Setup(router,
		&routes.Handlers{
			Health:     handlers.NewHealthHandler(),
			Submission: handlers.NewSubmissionHandler(submissions),
		},
		&routes.Middleware{
			Validation: middleware.NewValidationMiddleware(logger),
		},
		logger,
	)

	return &Server{
		router:      router,
		cfg:         cfg,
		logger:      logger,
		submissions: submissions,
	}
}

// Handler returns the router for use with httptest or a custom http.Server
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves on the configured address until ctx is cancelled, then
// shuts down gracefully and waits for pending background sends.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Start with a caller-provided listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server listening on %s", ln.Addr())
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	shutdownErr := httpServer.Shutdown(shutdownCtx)
	if shutdownErr != nil {
		s.logger.Error("Server shutdown failed: %v", shutdownErr)
	}

	if err := s.submissions.Wait(shutdownCtx); err != nil {
		s.logger.Warn("Exiting with emails still pending: %v", err)
		if shutdownErr != nil {
			return fmt.Errorf("server shutdown failed: %w", errors.Join(shutdownErr, err))
		}
		return err
	}

	if shutdownErr != nil {
		return fmt.Errorf("server shutdown failed: %w", shutdownErr)
	}

	s.logger.Info("Server stopped")
	return nil
}
