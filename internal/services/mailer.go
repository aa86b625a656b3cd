package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
)

// ContactMessage is a submission from the public contact form
type ContactMessage struct {
	Name    string
	ReplyTo string
	Subject string
	Body    string
}

// Mailer delivers contact form submissions to the site inbox
type Mailer interface {
	SendContact(ctx context.Context, msg ContactMessage) error
}

// MailerConfig holds the SMTP relay settings for outbound mail
type MailerConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Inbox    string
}

// smtpMailer implements Mailer over an authenticated SMTP relay
type smtpMailer struct {
	config MailerConfig
}

// NewMailer creates a new Mailer instance
func NewMailer(config MailerConfig) Mailer {
	return &smtpMailer{config: config}
}

// SendContact relays the contact form to the configured inbox. The visitor's
// address goes in Reply-To; the envelope sender stays the relay account.
func (m *smtpMailer) SendContact(ctx context.Context, msg ContactMessage) error {
	if m.config.Host == "" {
		return fmt.Errorf("smtp relay is not configured")
	}
	if strings.TrimSpace(msg.Body) == "" {
		return fmt.Errorf("contact message body is empty")
	}

	subject := strings.TrimSpace(msg.Subject)
	if subject == "" {
		subject = "New contact form message"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.config.Username)
	fmt.Fprintf(&b, "To: %s\r\n", m.config.Inbox)
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", sanitizeHeader(subject))
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "From: %s <%s>\r\n\r\n", sanitizeHeader(msg.Name), sanitizeHeader(msg.ReplyTo))
	b.WriteString(msg.Body)
	b.WriteString("\r\n")

	auth := sasl.NewPlainClient("", m.config.Username, m.config.Password)
	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, m.config.Username, []string{m.config.Inbox}, strings.NewReader(b.String()))
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send contact mail: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("contact mail send canceled: %w", ctx.Err())
	}
}

// sanitizeHeader strips CR/LF so form input cannot inject mail headers
func sanitizeHeader(value string) string {
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\n", " ")
	return strings.TrimSpace(value)
}
