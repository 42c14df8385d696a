// internal/mailer/mailer.go
package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
)

const (
	ContactNotificationTemplate = "contact_notification.tmpl"
	IntakeNotificationTemplate  = "intake_notification.tmpl"
	NewsletterWelcomeTemplate   = "newsletter_welcome.tmpl"
)

//go:embed "templates"
var templateFS embed.FS

// Client envía un correo a partir de una plantilla con bloques "subject" y "body".
// replyTo vacío no añade la cabecera Reply-To.
type Client interface {
	Send(templateFile, to, replyTo string, data any) error
}

// Render ejecuta la plantilla y devuelve asunto y cuerpo HTML.
func Render(templateFile string, data any) (string, string, error) {
	tmpl, err := template.New("email").ParseFS(templateFS, "templates/"+templateFile)
	if err != nil {
		return "", "", fmt.Errorf("mailer: parse %s: %w", templateFile, err)
	}

	subject := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(subject, "subject", data); err != nil {
		return "", "", fmt.Errorf("mailer: render subject: %w", err)
	}

	body := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(body, "body", data); err != nil {
		return "", "", fmt.Errorf("mailer: render body: %w", err)
	}

	return strings.TrimSpace(subject.String()), body.String(), nil
}
