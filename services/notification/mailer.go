package notification

import (
	"io"

	"bandroom/config"

	"gopkg.in/gomail.v2"
)

// Mailer is the external e-mail collaborator. The engine's obligation
// ends at correct content; transport lives behind this interface.
type Mailer interface {
	Send(to, subject, body, ics string) error
}

// SMTPMailer delivers notification mail over SMTP.
type SMTPMailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// NewSMTPMailer builds a mailer from the loaded app configuration.
func NewSMTPMailer() *SMTPMailer {
	cfg := config.AppConfig
	return &SMTPMailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.OrganizerEmail,
		FromName: cfg.OrganizerName,
	}
}

// Send mails the text body with the iCalendar record attached.
func (m *SMTPMailer) Send(to, subject, body, ics string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.From, m.FromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	msg.Attach("invite.ics",
		gomail.SetHeader(map[string][]string{"Content-Type": {"text/calendar"}}),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.WriteString(w, ics)
			return err
		}),
	)

	dialer := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)
	return dialer.DialAndSend(msg)
}
