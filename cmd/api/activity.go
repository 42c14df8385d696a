// cmd/api/activity.go
package main

import (
	"context"
	"net/http"

	"PortfolioSite/internal/store"

	"go.uber.org/zap"
)

const (
	activityContactSubmitted     = "contact_submitted"
	activityContactFailed        = "contact_failed"
	activityNewsletterSubscribed = "newsletter_subscribed"
	activityNewsletterFailed     = "newsletter_failed"
	activityIntakeSubmitted      = "intake_submitted"
	activityIntakeFailed         = "intake_failed"
	activityMessageDeleted       = "message_deleted"
	activitySubscriberDeleted    = "subscriber_deleted"
	activityAdminLogin           = "admin_login"
)

// recordActivity guarda una entrada de auditoría. Si falla solo se registra:
// nunca cambia la respuesta de la acción principal.
func (app *application) recordActivity(ctx context.Context, kind, description string, metadata map[string]string) {
	a := &store.Activity{
		Kind:        kind,
		Description: description,
		Metadata:    metadata,
	}

	if err := app.store.Activities.Create(ctx, a); err != nil {
		app.logger.Warn("no se pudo registrar la actividad", zap.String("kind", kind), zap.Error(err))
	}
}

func (app *application) listActivityHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	activities, err := app.store.Activities.List(r.Context(), limit)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, activities)
}
