// cmd/api/subscribers.go
package main

import (
	"errors"
	"net/http"

	"PortfolioSite/internal/store"

	"github.com/go-chi/chi/v5"
)

func (app *application) listSubscribersHandler(w http.ResponseWriter, r *http.Request) {
	opts, err := listOptions(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	subs, err := app.store.Subscribers.List(r.Context(), opts)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, subs)
}

func (app *application) deleteSubscriberHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "subscriberID")

	if err := app.store.Subscribers.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			app.notFoundResponse(w, r)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.recordActivity(r.Context(), activitySubscriberDeleted, "Suscriptor eliminado", map[string]string{"subscriber_id": id})
	w.WriteHeader(http.StatusNoContent)
}
