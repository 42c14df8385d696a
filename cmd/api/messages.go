// cmd/api/messages.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"PortfolioSite/internal/store"
	"PortfolioSite/internal/validation"

	"github.com/go-chi/chi/v5"
)

type messageKey string

const messageCtxKey messageKey = "message"

// queryInt lee un entero no negativo de la query. Ausente devuelve 0.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("el parámetro %s debe ser un entero no negativo", name)
	}
	return n, nil
}

// listOptions traduce ?status=&limit=&offset= a store.ListOptions.
func listOptions(r *http.Request) (store.ListOptions, error) {
	var opts store.ListOptions

	switch status := r.URL.Query().Get("status"); status {
	case "", "all", "read", "unread", "notification_failed":
		opts.Status = status
	default:
		return opts, errors.New("status debe ser all, read, unread o notification_failed")
	}

	var err error
	if opts.Limit, err = queryInt(r, "limit"); err != nil {
		return opts, err
	}
	if opts.Offset, err = queryInt(r, "offset"); err != nil {
		return opts, err
	}
	return opts, nil
}

func (app *application) listMessagesHandler(w http.ResponseWriter, r *http.Request) {
	opts, err := listOptions(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	msgs, err := app.store.Messages.List(r.Context(), opts)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, msgs)
}

// messageContextMiddleware carga el mensaje de la URL en el contexto.
func (app *application) messageContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		msg, err := app.store.Messages.GetByID(r.Context(), chi.URLParam(r, "messageID"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				app.notFoundResponse(w, r)
				return
			}
			app.internalServerError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), messageCtxKey, msg)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getMessageFromCtx(r *http.Request) *store.Message {
	msg, _ := r.Context().Value(messageCtxKey).(*store.Message)
	return msg
}

func (app *application) getMessageHandler(w http.ResponseWriter, r *http.Request) {
	app.jsonResponse(w, http.StatusOK, getMessageFromCtx(r))
}

type UpdateMessagePayload struct {
	Read *bool `json:"read" validate:"required"`
}

func (app *application) updateMessageHandler(w http.ResponseWriter, r *http.Request) {
	msg := getMessageFromCtx(r)

	var payload UpdateMessagePayload
	if err := app.readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := validation.Struct(payload); err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	if err := app.store.Messages.SetRead(r.Context(), msg.ID, *payload.Read); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			app.notFoundResponse(w, r)
			return
		}
		app.internalServerError(w, r, err)
		return
	}
	msg.Read = *payload.Read

	app.jsonResponse(w, http.StatusOK, msg)
}

func (app *application) deleteMessageHandler(w http.ResponseWriter, r *http.Request) {
	msg := getMessageFromCtx(r)

	if err := app.store.Messages.Delete(r.Context(), msg.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			app.notFoundResponse(w, r)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.recordActivity(r.Context(), activityMessageDeleted, fmt.Sprintf("Mensaje de %s eliminado", msg.Name), map[string]string{"message_id": msg.ID})
	w.WriteHeader(http.StatusNoContent)
}
