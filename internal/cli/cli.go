package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/osa911/formmailer/internal/api/validation"
	"github.com/osa911/formmailer/internal/config"
	"github.com/osa911/formmailer/internal/logging"
	"github.com/osa911/formmailer/internal/models"
	"github.com/osa911/formmailer/internal/server"
	"github.com/osa911/formmailer/internal/service"
	"github.com/osa911/formmailer/internal/version"
)

// NewRootCommand builds the formmailer command tree. Running it without a
// subcommand starts the HTTP server.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "formmailer",
		Short: "Landing page form mailer",
		Long: `formmailer accepts landing page form submissions over HTTP and emails
them as an HTML table to a fixed recipient over authenticated SMTP.`,
		Version:      version.Info(),
		SilenceUsage: true,
		RunE:         runServe,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  runServe,
	}

	sendTestCmd := &cobra.Command{
		Use:   "send-test",
		Short: "Send a sample submission synchronously to verify SMTP settings",
		Long: `Renders a sample submission and sends it through the configured SMTP
server, waiting for the result. Exits non-zero when the send fails.

Example:
  formmailer send-test
  formmailer send-test --first-name Jane --email jane@example.com`,
		RunE: runSendTest,
	}
	sendTestCmd.Flags().String("first-name", "Test", "First name in the sample submission")
	sendTestCmd.Flags().String("last-name", "Submission", "Last name in the sample submission")
	sendTestCmd.Flags().String("email", "test@example.com", "Email in the sample submission")
	sendTestCmd.Flags().String("phone", "0000000000", "Phone in the sample submission")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		},
	}

	rootCmd.AddCommand(serveCmd, sendTestCmd, versionCmd)
	return rootCmd
}

// Execute runs the command tree and exits non-zero on failure
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup() (*config.Config, *logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("error loading config: %w", err)
	}

	logging.Configure(cfg.Logging())
	return cfg, logging.GetLogger(), nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	logger.Info("Starting formmailer %s in %s mode", version.Version, cfg.Environment)

	mailer := service.NewMailService(cfg.Mail, logger)
	submissions := service.NewSubmissionService(mailer, logger, cfg.Mail.Timeout)

	srv := server.NewServer(cfg, logger, submissions)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Start(ctx)
}

func runSendTest(cmd *cobra.Command, args []string) error {
	sub := models.Submission{}
	sub.FirstName, _ = cmd.Flags().GetString("first-name")
	sub.LastName, _ = cmd.Flags().GetString("last-name")
	sub.Email, _ = cmd.Flags().GetString("email")
	sub.Phone, _ = cmd.Flags().GetString("phone")

	if !validation.IsValidEmail(sub.Email) {
		return fmt.Errorf("invalid --email: %q", sub.Email)
	}

	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Mail.Timeout)
	defer cancel()

	mailer := service.NewMailService(cfg.Mail, logger)
	submissions := service.NewSubmissionService(mailer, logger, cfg.Mail.Timeout)

	logger.Info("Sending test submission to %s via %s:%d", cfg.Mail.To, mailer.Host(), mailer.Port())
	if err := submissions.Deliver(ctx, sub); err != nil {
		logger.Error("Failed to send email: %v", err)
		return err
	}

	logger.Info("Email sent successfully!")
	fmt.Fprintln(cmd.OutOrStdout(), "Email sent successfully!")
	return nil
}
