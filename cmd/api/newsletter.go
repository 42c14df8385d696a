// cmd/api/newsletter.go
package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"PortfolioSite/internal/mailer"
	"PortfolioSite/internal/store"
	"PortfolioSite/internal/validation"
)

type NewsletterPayload struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

func (app *application) subscribeHandler(w http.ResponseWriter, r *http.Request) {
	var payload NewsletterPayload
	if err := app.readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	payload.Email = strings.ToLower(strings.TrimSpace(payload.Email))
	if err := validation.Struct(payload); err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	ctx := r.Context()
	sub := &store.Subscriber{Email: payload.Email}

	if err := app.store.Subscribers.Create(ctx, sub); err != nil {
		if errors.Is(err, store.ErrConflict) {
			// Ya suscrito: respuesta de éxito y ningún correo nuevo.
			app.jsonResponse(w, http.StatusOK, map[string]string{"message": "ya estás suscrito"})
			return
		}
		app.recordActivity(ctx, activityNewsletterFailed, "No se pudo guardar un suscriptor", map[string]string{"email": payload.Email})
		app.internalServerError(w, r, fmt.Errorf("newsletter: store subscriber: %w", err))
		return
	}

	if err := app.mailer.Send(mailer.NewsletterWelcomeTemplate, sub.Email, "", sub); err != nil {
		app.recordActivity(ctx, activityNewsletterFailed, "No se pudo enviar el correo de bienvenida", map[string]string{"subscriber_id": sub.ID})
		app.internalServerError(w, r, fmt.Errorf("newsletter: send welcome: %w", err))
		return
	}

	app.recordActivity(ctx, activityNewsletterSubscribed, fmt.Sprintf("Nuevo suscriptor: %s", sub.Email), map[string]string{
		"subscriber_id": sub.ID,
	})

	app.jsonResponse(w, http.StatusOK, map[string]string{"message": "¡Gracias por suscribirte!"})
}
