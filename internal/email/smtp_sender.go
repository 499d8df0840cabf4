package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPSender delivers mail through the configured SMTP relay.
type SMTPSender struct {
	config Config
	dialer *gomail.Dialer
}

func NewSMTPSender(config Config) (*SMTPSender, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.Username, config.Password)

	return &SMTPSender{
		config: config,
		dialer: dialer,
	}, nil
}

func (s *SMTPSender) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromEmail, s.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	if email.Body != "" {
		m.SetBody("text/plain", email.Body)
	}
	if email.HTMLBody != "" {
		if email.Body != "" {
			m.AddAlternative("text/html", email.HTMLBody)
		} else {
			m.SetBody("text/html", email.HTMLBody)
		}
	}

	return s.dialer.DialAndSend(m)
}

// SendContactNotification forwards a submitted contact message to the
// configured notification address.
func (s *SMTPSender) SendContactNotification(data ContactNotificationData) error {
	if s.config.NotifyEmail == "" {
		return fmt.Errorf("notify email is not configured")
	}

	htmlBody, err := renderContactNotification(data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	return s.Send(&Email{
		To:       []string{s.config.NotifyEmail},
		Subject:  "Portfolio contact: " + data.Subject,
		HTMLBody: htmlBody,
	})
}
