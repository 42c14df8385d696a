// internal/mailer/smtp.go
package mailer

import (
	"fmt"

	gomail "gopkg.in/mail.v2"
)

type SMTPClient struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (m SMTPClient) Send(templateFile, to, replyTo string, data any) error {
	subject, body, err := Render(templateFile, data)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", to)
	if replyTo != "" {
		msg.SetHeader("Reply-To", replyTo)
	}
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)

	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("mailer: send to %s: %w", to, err)
	}
	return nil
}
