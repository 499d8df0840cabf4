package email

import "fmt"

// Email is one outbound message.
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// Sender delivers email. The SMTP implementation is used in production;
// tests inject a recording fake.
type Sender interface {
	Send(email *Email) error
	SendContactNotification(data ContactNotificationData) error
}

// ContactNotificationData fills the contact notification template.
type ContactNotificationData struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Config holds SMTP settings.
type Config struct {
	SMTPHost    string
	SMTPPort    int
	Username    string
	Password    string
	FromEmail   string
	FromName    string
	NotifyEmail string
}

func (c Config) Validate() error {
	if c.SMTPHost == "" {
		return fmt.Errorf("smtp host is required")
	}
	if c.SMTPPort == 0 {
		return fmt.Errorf("smtp port is required")
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}
