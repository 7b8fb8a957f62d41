package mailer

import (
	"context"
	"fmt"

	"gamejam-portal-backend/internal/config"
	"gamejam-portal-backend/internal/logger"

	"github.com/wneessen/go-mail"
)

//go:generate mockgen -source=mailer.go -destination=../mocks/mailer_mocks.go -package=mocks

// Message is a plain-text email
type Message struct {
	To      []string
	Subject string
	Body    string
}

// Mailer sends transactional email
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// New selects the mailer configured by MAIL_DRIVER
func New(cfg *config.Config) (Mailer, error) {
	switch cfg.MailDriver {
	case "smtp":
		return NewSMTPMailer(cfg)
	case "log", "":
		return NewLogMailer(), nil
	default:
		return nil, fmt.Errorf("unknown mail driver %q", cfg.MailDriver)
	}
}

// SMTPMailer delivers mail through an SMTP relay with STARTTLS and plain auth
type SMTPMailer struct {
	client   *mail.Client
	from     string
	fromName string
}

// NewSMTPMailer creates an SMTP mailer from configuration
func NewSMTPMailer(cfg *config.Config) (*SMTPMailer, error) {
	c, err := mail.NewClient(
		cfg.SMTPHost,
		mail.WithPort(cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SMTPUsername),
		mail.WithPassword(cfg.SMTPPassword),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("could not initialize smtp client: %w", err)
	}
	return &SMTPMailer{client: c, from: cfg.MailFrom, fromName: cfg.MailFromName}, nil
}

// Send builds the message and delivers it
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	out, err := buildMsg(m.fromName, m.from, msg)
	if err != nil {
		return err
	}
	if err := m.client.DialAndSendWithContext(ctx, out); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func buildMsg(fromName, from string, msg Message) (*mail.Msg, error) {
	out := mail.NewMsg()
	if err := out.FromFormat(fromName, from); err != nil {
		return nil, fmt.Errorf("set from address: %w", err)
	}
	if err := out.To(msg.To...); err != nil {
		return nil, fmt.Errorf("set to address: %w", err)
	}
	out.Subject(msg.Subject)
	out.SetBodyString(mail.TypeTextPlain, msg.Body)
	return out, nil
}

// LogMailer writes messages to the log instead of sending them
type LogMailer struct{}

// NewLogMailer creates a log-only mailer
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// Send logs the message
func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"to":      msg.To,
		"subject": msg.Subject,
	}).Infof("mail (log driver):\n%s", msg.Body)
	return nil
}
