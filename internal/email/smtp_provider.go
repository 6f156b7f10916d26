package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// SMTPProvider sends through a configured SMTP relay.
type SMTPProvider struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPProvider(config SMTPConfig) *SMTPProvider {
	return &SMTPProvider{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

func (p *SMTPProvider) SendPasswordReset(to, resetURL string) error {
	body := fmt.Sprintf(
		"You requested a password reset.\r\n\r\nReset your password here: %s\r\n\r\nThe link is valid for 1 hour. If you did not request this, ignore this email.",
		resetURL,
	)
	return p.send(to, "Reset your password", body)
}

func (p *SMTPProvider) SendVerification(to, verifyURL string) error {
	body := fmt.Sprintf("Confirm your email address: %s", verifyURL)
	return p.send(to, "Verify your email", body)
}

func (p *SMTPProvider) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}
