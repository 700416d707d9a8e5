// Package mailer provides the outbound SMTP transport.
package mailer

import (
	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"caretrack-server/internal/config"
)

// SMTPMailer sends plain-text email through an SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	log    zerolog.Logger
}

// NewSMTPMailer creates a mailer from the SMTP configuration.
func NewSMTPMailer(cfg config.MailerConfig, log zerolog.Logger) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		log:    log,
	}
}

// Send delivers one message. Each call dials independently so a transport
// failure stays scoped to that message.
func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return err
	}
	m.log.Debug().Str("to", to).Str("subject", subject).Msg("email sent")
	return nil
}
