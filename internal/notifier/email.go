package notifier

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/mail.v2"
)

const (
	DefaultSMTPHost = "smtp.sendgrid.net"
	DefaultSMTPPort = 587
	// DefaultSMTPUser is the fixed username SendGrid expects for API-key auth
	DefaultSMTPUser = "apikey"

	dialTimeout = 10 * time.Second
)

// EmailConfig holds the relay credentials and envelope addresses
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string // Verified sender address
	To       string
}

// sender is the part of *mail.Dialer the notifier uses
type sender interface {
	DialAndSend(m ...*mail.Message) error
}

// EmailNotifier sends the alert as one plain-text email over SMTP
type EmailNotifier struct {
	dialer sender
	relay  string
	from   string
	to     string
}

// NewEmailNotifier creates an EmailNotifier for cfg.
// Empty Host/Port/Username fall back to the SendGrid defaults.
func NewEmailNotifier(cfg EmailConfig) *EmailNotifier {
	if cfg.Host == "" {
		cfg.Host = DefaultSMTPHost
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultSMTPPort
	}
	if cfg.Username == "" {
		cfg.Username = DefaultSMTPUser
	}

	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.Timeout = dialTimeout

	return &EmailNotifier{
		dialer: d,
		relay:  fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		from:   cfg.From,
		to:     cfg.To,
	}
}

// Notify sends body in a single SMTP session
func (n *EmailNotifier) Notify(ctx context.Context, body string) error {
	// mail.v2 has no context support; don't dial once the run is cancelled
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := n.dialer.DialAndSend(n.newMessage(body)); err != nil {
		return fmt.Errorf("smtp %s: %w", n.relay, err)
	}

	return nil
}

// newMessage builds the alert email
func (n *EmailNotifier) newMessage(body string) *mail.Message {
	m := mail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.to)
	m.SetHeader("Subject", Subject)
	m.SetBody("text/plain", body)
	return m
}
