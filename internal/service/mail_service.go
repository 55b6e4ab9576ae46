package service

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/osa911/formmailer/internal/config"
	"github.com/osa911/formmailer/internal/logging"
)

// Message is a single HTML email
type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

// MailSender delivers a message or reports why it could not
type MailSender interface {
	Send(ctx context.Context, msg Message) error
}

// MailService sends mail through an authenticated SMTP session.
// Every Send dials a fresh connection and closes it afterwards.
type MailService struct {
	dialer  *gomail.Dialer
	from    string
	to      string
	subject string
	timeout time.Duration
	logger  *logging.Logger
}

// NewMailService creates a new mail service from SMTP settings.
// Port 465 or SSL=true use implicit TLS; otherwise STARTTLS is used when
// the server offers it.
func NewMailService(cfg config.MailConfig, logger *logging.Logger) *MailService {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.From, cfg.Password)
	if cfg.SSL {
		d.SSL = true
	}
	d.TLSConfig = &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}

	logger.Debug("[mail] Initialized mail sender for host: %s, port: %d, ssl: %v", cfg.Host, cfg.Port, d.SSL)

	return &MailService{
		dialer:  d,
		from:    cfg.From,
		to:      cfg.To,
		subject: cfg.Subject,
		timeout: cfg.Timeout,
		logger:  logger,
	}
}

// Send delivers msg, filling in the configured recipient and subject when
// they are empty. The SMTP connection is closed as soon as ctx is done, and
// ctx gets the configured timeout when it carries no deadline of its own.
func (s *MailService) Send(ctx context.Context, msg Message) error {
	if s.dialer == nil || s.dialer.Host == "" {
		return ErrMailNotConfigured
	}

	if _, ok := ctx.Deadline(); !ok && s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	to := msg.To
	if to == "" {
		to = s.to
	}
	subject := msg.Subject
	if subject == "" {
		subject = s.subject
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", msg.HTMLBody)

	session, err := s.dial(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMailSend, sendCause(ctx, err))
	}
	defer session.Close()

	if err := gomail.Send(session, m); err != nil {
		return fmt.Errorf("%w: %v", ErrMailSend, sendCause(ctx, err))
	}
	return nil
}

// Host returns the SMTP host this service dials
func (s *MailService) Host() string {
	return s.dialer.Host
}

// Port returns the SMTP port this service dials
func (s *MailService) Port() int {
	return s.dialer.Port
}

// dial opens and authenticates an SMTP session using the dialer settings.
// The connection carries ctx's deadline and is closed when ctx is done, so a
// server that stops answering cannot hold the session open.
func (s *MailService) dial(ctx context.Context) (*smtpSession, error) {
	d := s.dialer

	var nd net.Dialer
	raw, err := nd.DialContext(ctx, "tcp", net.JoinHostPort(d.Host, strconv.Itoa(d.Port)))
	if err != nil {
		return nil, err
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := raw.SetDeadline(deadline); err != nil {
			raw.Close()
			return nil, err
		}
	}
	stop := context.AfterFunc(ctx, func() { raw.Close() })

	fail := func(err error) (*smtpSession, error) {
		stop()
		raw.Close()
		return nil, err
	}

	conn := raw
	if d.SSL {
		conn = tls.Client(raw, d.TLSConfig)
	}

	c, err := smtp.NewClient(conn, d.Host)
	if err != nil {
		return fail(err)
	}

	if d.LocalName != "" {
		if err := c.Hello(d.LocalName); err != nil {
			return fail(err)
		}
	}

	if !d.SSL {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err := c.StartTLS(d.TLSConfig); err != nil {
				return fail(err)
			}
		}
	}

	if d.Username != "" {
		if ok, mechs := c.Extension("AUTH"); ok {
			auth := d.Auth
			if auth == nil {
				auth = s.auth(mechs)
			}
			if err := c.Auth(auth); err != nil {
				return fail(err)
			}
		}
	}

	return &smtpSession{client: c, stop: stop}, nil
}

// auth picks a mechanism from the server's AUTH extension
func (s *MailService) auth(mechs string) smtp.Auth {
	d := s.dialer
	switch {
	case strings.Contains(mechs, "CRAM-MD5"):
		return smtp.CRAMMD5Auth(d.Username, d.Password)
	case strings.Contains(mechs, "LOGIN") && !strings.Contains(mechs, "PLAIN"):
		return &loginAuth{username: d.Username, password: d.Password, host: d.Host}
	default:
		return smtp.PlainAuth("", d.Username, d.Password, d.Host)
	}
}

// sendCause reports ctx's error in place of the I/O error it caused
func sendCause(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if deadline, ok := ctx.Deadline(); ok && !time.Now().Before(deadline) {
		return context.DeadlineExceeded
	}
	return err
}

// smtpSession is a gomail.SendCloser over a single net/smtp client
type smtpSession struct {
	client *smtp.Client
	stop   func() bool
}

func (s *smtpSession) Send(from string, to []string, msg io.WriterTo) error {
	if err := s.client.Mail(from); err != nil {
		return err
	}
	for _, addr := range to {
		if err := s.client.Rcpt(addr); err != nil {
			return err
		}
	}

	w, err := s.client.Data()
	if err != nil {
		return err
	}
	if _, err := msg.WriteTo(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func (s *smtpSession) Close() error {
	defer s.stop()
	if err := s.client.Quit(); err != nil {
		s.client.Close()
		return err
	}
	return nil
}

// loginAuth implements the LOGIN mechanism, which net/smtp lacks
type loginAuth struct {
	username string
	password string
	host     string
}

func (a *loginAuth) Start(server *smtp.ServerInfo) (string, []byte, error) {
	if !server.TLS && !isLocalhost(server.Name) {
		return "", nil, errors.New("unencrypted connection")
	}
	if server.Name != a.host {
		return "", nil, errors.New("wrong host name")
	}
	return "LOGIN", nil, nil
}

func (a *loginAuth) Next(fromServer []byte, more bool) ([]byte, error) {
	if !more {
		return nil, nil
	}
	switch {
	case bytes.EqualFold(fromServer, []byte("Username:")):
		return []byte(a.username), nil
	case bytes.EqualFold(fromServer, []byte("Password:")):
		return []byte(a.password), nil
	default:
		return nil, fmt.Errorf("unexpected server challenge: %s", fromServer)
	}
}

func isLocalhost(name string) bool {
	return name == "localhost" || name == "127.0.0.1" || name == "::1"
}
