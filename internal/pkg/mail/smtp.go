package mail

import (
	"context"
	"crypto/rand"
	"crypto/tls"
	"encoding/hex"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
)

var (
	// ErrSMTPHostPortRequired is returned when Host/Port are missing.
	ErrSMTPHostPortRequired = errors.New("mail: smtp host and port are required")
	// ErrSMTPNoRecipients is returned when To and Cc are both empty.
	ErrSMTPNoRecipients = errors.New("mail: no recipients provided")
	// ErrSMTPNoSender is returned when neither Message.From nor the configured From is set.
	ErrSMTPNoSender = errors.New("mail: no sender provided")
)

// Encryption modes for SMTPConfig.Encryption.
const (
	// EncryptionTLS upgrades the connection with STARTTLS when the server offers it.
	EncryptionTLS = "tls"
	// EncryptionSSL dials with implicit TLS (usually port 465).
	EncryptionSSL = "ssl"
	// EncryptionNone never upgrades the connection.
	EncryptionNone = "none"
)

// SMTPConfig configures the SMTP implementation.
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	Encryption string
	From       string
	FromName   string
	// Attempts bounds delivery retries; values below 1 mean a single attempt.
	Attempts uint64
	Timeout  time.Duration
}

// SMTP is a Mail implementation backed by net/smtp.
type SMTP struct {
	cfg  SMTPConfig
	addr string
	from string
	auth smtp.Auth
}

// NewSMTP constructs an SMTP sender.
func NewSMTP(cfg SMTPConfig) (*SMTP, error) {
	if cfg.Host == "" || cfg.Port == 0 {
		return nil, ErrSMTPHostPortRequired
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	cfg.Encryption = strings.ToLower(strings.TrimSpace(cfg.Encryption))

	var auth smtp.Auth
	if cfg.Username != "" && cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	from := cfg.From
	if from != "" && cfg.FromName != "" {
		from = (&mail.Address{Name: cfg.FromName, Address: cfg.From}).String()
	}

	return &SMTP{
		cfg:  cfg,
		addr: net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		from: from,
		auth: auth,
	}, nil
}

// Send delivers msg, retrying transient failures with exponential backoff.
func (s *SMTP) Send(ctx context.Context, msg Message) error {
	recipients := append(append([]string{}, msg.To...), msg.Cc...)
	if len(recipients) == 0 {
		return ErrSMTPNoRecipients
	}

	from := msg.From
	if from == "" {
		from = s.from
	}
	if from == "" {
		return ErrSMTPNoSender
	}
	envelopeFrom := from
	if addr, err := mail.ParseAddress(from); err == nil {
		envelopeFrom = addr.Address
	}

	raw := buildMessage(from, msg)

	attempts := s.cfg.Attempts
	if attempts > 0 {
		attempts--
	}
	b := retry.WithMaxRetries(attempts, retry.NewExponential(500*time.Millisecond))

	return retry.Do(ctx, b, func(ctx context.Context) error {
		if err := s.deliver(ctx, envelopeFrom, recipients, raw); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}

// Close implements io.Closer; connections are per message.
func (s *SMTP) Close() error {
	return nil
}

func (s *SMTP) deliver(ctx context.Context, from string, to []string, raw []byte) error {
	dialer := &net.Dialer{Timeout: s.cfg.Timeout}

	var (
		conn net.Conn
		err  error
	)
	if s.cfg.Encryption == EncryptionSSL {
		conn, err = (&tls.Dialer{NetDialer: dialer, Config: &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}}).DialContext(ctx, "tcp", s.addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", s.addr)
	}
	if err != nil {
		return fmt.Errorf("mail: dial %s: %w", s.addr, err)
	}
	_ = conn.SetDeadline(time.Now().Add(s.cfg.Timeout))

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("mail: smtp handshake: %w", err)
	}
	defer c.Close()

	if s.cfg.Encryption != EncryptionSSL && s.cfg.Encryption != EncryptionNone {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err := c.StartTLS(&tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}); err != nil {
				return fmt.Errorf("mail: starttls: %w", err)
			}
		}
	}
	if s.auth != nil {
		if ok, _ := c.Extension("AUTH"); ok {
			if err := c.Auth(s.auth); err != nil {
				return fmt.Errorf("mail: auth: %w", err)
			}
		}
	}

	if err := c.Mail(from); err != nil {
		return fmt.Errorf("mail: MAIL FROM: %w", err)
	}
	for _, rcpt := range to {
		if err := c.Rcpt(rcpt); err != nil {
			return fmt.Errorf("mail: RCPT TO %s: %w", rcpt, err)
		}
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("mail: DATA: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		return errors.Join(fmt.Errorf("mail: write body: %w", err), w.Close())
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("mail: close body: %w", err)
	}

	return c.Quit()
}

func buildMessage(from string, msg Message) []byte {
	body, contentType := buildBody(msg)

	headers := []string{
		"From: " + from,
		"To: " + strings.Join(msg.To, ", "),
	}
	if len(msg.Cc) > 0 {
		headers = append(headers, "Cc: "+strings.Join(msg.Cc, ", "))
	}
	headers = append(headers,
		"Subject: "+mime.QEncoding.Encode("utf-8", msg.Subject),
		"Date: "+time.Now().Format(time.RFC1123Z),
		"MIME-Version: 1.0",
		"Content-Type: "+contentType,
	)

	return []byte(strings.Join(headers, "\r\n") + "\r\n\r\n" + body)
}

func buildBody(msg Message) (body string, contentType string) {
	if msg.HTMLBody != "" && msg.TextBody != "" {
		boundary := multipartBoundary()
		var sb strings.Builder
		fmt.Fprintf(&sb, "--%s\r\n", boundary)
		sb.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
		sb.WriteString(msg.TextBody)
		fmt.Fprintf(&sb, "\r\n--%s\r\n", boundary)
		sb.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
		sb.WriteString(msg.HTMLBody)
		fmt.Fprintf(&sb, "\r\n--%s--", boundary)
		return sb.String(), "multipart/alternative; boundary=" + boundary
	}

	if msg.HTMLBody != "" {
		return msg.HTMLBody, "text/html; charset=UTF-8"
	}

	return msg.TextBody, "text/plain; charset=UTF-8"
}

func multipartBoundary() string {
	var b [12]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "academia-boundary"
	}
	return "academia-" + hex.EncodeToString(b[:])
}
