package email

import (
	"replink_backend/internal/config"
	"replink_backend/internal/logger"

	"gopkg.in/gomail.v2"
)

// Provider sends transactional mail.
type Provider interface {
	Send(to, subject, htmlBody string) error
}

// NewProvider returns the SMTP provider when mail is configured, otherwise a
// logging no-op so development does not need a mail server.
func NewProvider(cfg *config.Config) Provider {
	if cfg.Email.SMTPHost == "" {
		return &LogProvider{}
	}
	return &SMTPProvider{
		host:     cfg.Email.SMTPHost,
		port:     cfg.Email.SMTPPort,
		username: cfg.Email.SMTPUsername,
		password: cfg.Email.SMTPPassword,
		from:     cfg.Email.FromEmail,
	}
}

type SMTPProvider struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func (p *SMTPProvider) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", p.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(p.host, p.port, p.username, p.password)
	return d.DialAndSend(m)
}

// LogProvider logs instead of sending. Used when SMTP is not configured.
type LogProvider struct{}

func (p *LogProvider) Send(to, subject, htmlBody string) error {
	logger.Info("email suppressed (no SMTP configured)",
		"to", to,
		"subject", subject,
	)
	return nil
}
