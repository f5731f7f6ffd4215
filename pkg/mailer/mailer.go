// Package mailer sends plain text notifications to users.
package mailer

import (
	"context"
	"fmt"

	"easyrent/pkg/logger"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Mailer delivers a single plain text e-mail.
//
//go:generate mockgen -package mockmailer -source=mailer.go -destination=mock/mockmailer.go
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Options configure the SMTP relay. STARTTLS is mandatory unless Insecure is
// set, which is meant for local relays such as MailHog.
type Options struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Insecure bool
}

// SMTP sends mail through an SMTP relay with github.com/wneessen/go-mail.
type SMTP struct {
	options Options
}

var _ Mailer = (*SMTP)(nil)

func NewSMTP(options Options) *SMTP {
	if options.From == "" {
		options.From = options.Username
	}

	return &SMTP{options: options}
}

func (s *SMTP) client() (*mail.Client, error) {
	opts := []mail.Option{mail.WithPort(s.options.Port)}
	if s.options.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.options.Username),
			mail.WithPassword(s.options.Password))
	}
	if s.options.Insecure {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	c, err := mail.NewClient(s.options.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create smtp client: %w", err)
	}

	return c, nil
}

func (s *SMTP) Send(ctx context.Context, to, subject, body string) error {
	m := mail.NewMsg()
	if err := m.From(s.options.From); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	m.Subject(subject)
	m.SetBodyString(mail.TypeTextPlain, body)

	c, err := s.client()
	if err != nil {
		return err
	}
	if err := c.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("could not send mail to %s: %w", to, err)
	}

	logger.Debug(ctx, "mail sent", zap.String("to", to), zap.String("subject", subject))

	return nil
}

// Log only logs messages. It is used when no SMTP relay is configured.
type Log struct{}

var _ Mailer = Log{}

func (Log) Send(ctx context.Context, to, subject, body string) error {
	logger.Info(ctx, "mail not sent, no smtp relay configured",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body))

	return nil
}
