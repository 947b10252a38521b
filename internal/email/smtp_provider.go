package email

import (
	"fmt"

	"bcpartners_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider delivers mail through the configured SMTP relay via gomail.
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(p.cfg.Email.FromEmail, p.cfg.Email.FromName))
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	if email.HTML {
		m.SetBody("text/html", email.Body)
	} else {
		m.SetBody("text/plain", email.Body)
	}

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

func (p *SMTPProvider) Validate() error {
	if p.cfg.Email.SMTPHost == "" {
		return fmt.Errorf("smtp host is not configured")
	}
	if p.cfg.Email.FromEmail == "" {
		return fmt.Errorf("from address is not configured")
	}
	return nil
}
