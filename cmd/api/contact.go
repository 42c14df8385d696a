// cmd/api/contact.go
package main

import (
	"fmt"
	"net/http"
	"strings"

	"PortfolioSite/internal/mailer"
	"PortfolioSite/internal/store"
	"PortfolioSite/internal/validation"

	"go.uber.org/zap"
)

type ContactPayload struct {
	Name    string `json:"name"    validate:"required,min=2,max=100"`
	Email   string `json:"email"   validate:"required,email,max=255"`
	Subject string `json:"subject" validate:"required,min=3,max=200"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

func (p *ContactPayload) normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.Subject = strings.TrimSpace(p.Subject)
	p.Message = strings.TrimSpace(p.Message)
}

// createContactHandler guarda el mensaje y avisa por correo al dueño del sitio.
func (app *application) createContactHandler(w http.ResponseWriter, r *http.Request) {
	var payload ContactPayload
	if err := app.readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	payload.normalize()
	if err := validation.Struct(payload); err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	ctx := r.Context()
	msg := &store.Message{
		Name:    payload.Name,
		Email:   payload.Email,
		Subject: payload.Subject,
		Message: payload.Message,
	}

	if err := app.store.Messages.Create(ctx, msg); err != nil {
		app.recordActivity(ctx, activityContactFailed, "No se pudo guardar un mensaje de contacto", map[string]string{"email": payload.Email})
		app.internalServerError(w, r, fmt.Errorf("contact: store message: %w", err))
		return
	}

	if err := app.mailer.Send(mailer.ContactNotificationTemplate, app.config.mail.owner, payload.Email, payload); err != nil {
		// El mensaje ya está guardado: el dashboard lo muestra como aviso fallido.
		if markErr := app.store.Messages.MarkNotificationFailed(ctx, msg.ID); markErr != nil {
			app.logger.Warn("no se pudo marcar el aviso fallido", zap.String("message_id", msg.ID), zap.Error(markErr))
		}
		app.recordActivity(ctx, activityContactFailed, "No se pudo enviar la notificación de contacto", map[string]string{"message_id": msg.ID})
		app.internalServerError(w, r, fmt.Errorf("contact: send notification: %w", err))
		return
	}

	app.recordActivity(ctx, activityContactSubmitted, fmt.Sprintf("Nuevo mensaje de %s", msg.Name), map[string]string{
		"message_id": msg.ID,
		"email":      msg.Email,
	})

	app.jsonResponse(w, http.StatusOK, map[string]string{
		"id":      msg.ID,
		"message": "¡Mensaje enviado! Te responderé lo antes posible.",
	})
}
