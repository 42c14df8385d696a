package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender_ContactNotification(t *testing.T) {
	subject, body, err := Render(ContactNotificationTemplate, struct {
		Name, Email, Subject, Message string
	}{"Ada", "ada@example.com", "Colaboración", "<script>alert(1)</script>"})

	require.NoError(t, err)
	require.Equal(t, "Nuevo mensaje de contacto: Colaboración", subject)
	require.Contains(t, body, "ada@example.com")
	require.NotContains(t, body, "<script>")
	require.Contains(t, body, "&lt;script&gt;")
}

func TestRender_IntakeOmitsEmptyCompany(t *testing.T) {
	data := struct {
		Name, Email, Company, ProjectType, Budget, Timeline, Description string
	}{"Ada", "ada@example.com", "", "web", "5k-15k", "1-3m", "Una tienda online"}

	subject, body, err := Render(IntakeNotificationTemplate, data)
	require.NoError(t, err)
	require.Equal(t, "Nueva solicitud de proyecto (web) de Ada", subject)
	require.NotContains(t, body, "Empresa")
}

func TestRender_NewsletterWelcome(t *testing.T) {
	subject, body, err := Render(NewsletterWelcomeTemplate, map[string]string{"Email": "ada@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, subject)
	require.Contains(t, body, "ada@example.com")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, _, err := Render("nope.tmpl", nil)
	require.Error(t, err)
}
