package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"mime/quotedprintable"
	"net"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startTestSMTPServer accepts one SMTP session and publishes its DATA payload
func startTestSMTPServer(t *testing.T) (port int, data <-chan string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	out := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		r := bufio.NewReader(conn)
		fmt.Fprintf(conn, "220 localhost ESMTP\r\n")
		for {
			line, err := r.ReadString('\n')
			if err != nil {
				return
			}
			line = strings.TrimSpace(line)
			switch {
			case strings.HasPrefix(line, "EHLO"), strings.HasPrefix(line, "HELO"):
				fmt.Fprintf(conn, "250-localhost\r\n250 OK\r\n")
			case strings.HasPrefix(line, "DATA"):
				fmt.Fprintf(conn, "354 go ahead\r\n")
				var body strings.Builder
				for {
					dline, derr := r.ReadString('\n')
					if derr != nil || strings.TrimSpace(dline) == "." {
						break
					}
					body.WriteString(dline)
				}
				out <- body.String()
				fmt.Fprintf(conn, "250 queued\r\n")
			case strings.HasPrefix(line, "QUIT"):
				fmt.Fprintf(conn, "221 bye\r\n")
				return
			default:
				fmt.Fprintf(conn, "250 OK\r\n")
			}
		}
	}()

	return ln.Addr().(*net.TCPAddr).Port, out
}

// decodeBody returns the quoted-printable decoded body of a raw message
func decodeBody(t *testing.T, payload string) string {
	t.Helper()
	_, body, found := strings.Cut(payload, "\r\n\r\n")
	require.True(t, found, "message has no header/body separator")
	decoded, err := io.ReadAll(quotedprintable.NewReader(strings.NewReader(body)))
	require.NoError(t, err)
	return string(decoded)
}

func setMailEnv(t *testing.T, port int) {
	t.Helper()
	t.Setenv("SMTP_SERVER", "127.0.0.1")
	t.Setenv("SMTP_PORT", strconv.Itoa(port))
	t.Setenv("SMTP_SSL", "false")
	t.Setenv("EMAIL_FROM", "landing@example.com")
	t.Setenv("EMAIL_PASSWORD", "secret")
	t.Setenv("EMAIL_TO", "sales@example.com")
	t.Setenv("LOG_FILE", t.TempDir()+"/cli.log")
	t.Setenv("LOG_LEVEL", "error")
}

func TestSendTest(t *testing.T) {
	port, data := startTestSMTPServer(t)
	setMailEnv(t, port)

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"send-test", "--first-name", "Jane", "--email", "jane@example.com"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Email sent successfully!")

	payload := <-data
	assert.Contains(t, payload, "To: sales@example.com")
	body := decodeBody(t, payload)
	assert.Contains(t, body, "<td>Jane</td>")
	assert.Contains(t, body, "<td>jane@example.com</td>")
}

func TestSendTest_InvalidEmailFlag(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"send-test", "--email", "nope"})

	err := cmd.Execute()
	assert.ErrorContains(t, err, "invalid --email")
}

func TestSendTest_MissingConfig(t *testing.T) {
	t.Setenv("SMTP_SERVER", "")

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"send-test"})

	err := cmd.Execute()
	assert.ErrorContains(t, err, "error loading config")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "dev")
}
