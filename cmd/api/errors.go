// cmd/api/errors.go
package main

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"PortfolioSite/internal/ratelimiter"
	"PortfolioSite/internal/validation"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func (app *application) requestFields(r *http.Request) []zap.Field {
	return []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("request_id", middleware.GetReqID(r.Context())),
	}
}

// internalServerError registra la causa y responde con un mensaje genérico.
func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Error("error interno", append(app.requestFields(r), zap.Error(err))...)
	app.writeJSONError(w, http.StatusInternalServerError, "el servidor encontró un problema")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Debug("petición inválida", append(app.requestFields(r), zap.Error(err))...)
	app.writeJSONError(w, http.StatusBadRequest, err.Error())
}

// failedValidationResponse responde 400 con la lista de campos inválidos.
func (app *application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.ValidationError
	if !errors.As(err, &verr) {
		app.badRequestResponse(w, r, err)
		return
	}

	type envelope struct {
		Error  string                  `json:"error"`
		Fields []validation.FieldError `json:"fields"`
	}
	writeJSON(w, http.StatusBadRequest, envelope{Error: "datos inválidos", Fields: verr.Fields})
}

func (app *application) unauthorizedErrorResponse(w http.ResponseWriter, r *http.Request) {
	app.logger.Info("no autorizado", app.requestFields(r)...)
	app.writeJSONError(w, http.StatusUnauthorized, "credenciales inválidas o token no autorizado")
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.writeJSONError(w, http.StatusNotFound, "el recurso solicitado no fue encontrado")
}

// rateLimitExceededResponse no registra la petición como envío; solo deja traza.
func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter time.Duration) {
	app.logger.Info("límite de peticiones excedido", append(app.requestFields(r), zap.Error(ratelimiter.ErrThrottled), zap.Duration("retry_after", retryAfter))...)

	w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(retryAfter)))
	app.writeJSONError(w, http.StatusTooManyRequests, "límite de peticiones excedido, inténtalo de nuevo más tarde")
}

// retryAfterSeconds redondea hacia arriba y nunca devuelve menos de 1.
func retryAfterSeconds(d time.Duration) int {
	s := int(math.Ceil(d.Seconds()))
	if s < 1 {
		return 1
	}
	return s
}
