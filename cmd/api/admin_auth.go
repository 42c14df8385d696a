// cmd/api/admin_auth.go
package main

import (
	"errors"
	"net/http"
	"strings"

	"PortfolioSite/internal/auth"
	"PortfolioSite/internal/validation"
)

type AdminLoginPayload struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=72"`
}

// createTokenHandler emite el JWT del dashboard si email y contraseña coinciden.
func (app *application) createTokenHandler(w http.ResponseWriter, r *http.Request) {
	var payload AdminLoginPayload
	if err := app.readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	payload.Email = strings.TrimSpace(payload.Email)
	if err := validation.Struct(payload); err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	adminEmail := app.config.auth.adminEmail
	emailOK := adminEmail != "" && strings.EqualFold(payload.Email, adminEmail)

	// Comparamos la contraseña aunque el email no coincida.
	if err := auth.CheckPassword(app.config.auth.adminPasswordHash, payload.Password); err != nil || !emailOK {
		if err != nil && !errors.Is(err, auth.ErrInvalidCredentials) {
			app.internalServerError(w, r, err)
			return
		}
		app.unauthorizedErrorResponse(w, r)
		return
	}

	claims := app.authenticator.AdminClaims(adminEmail, app.now(), app.config.auth.exp)
	token, err := app.authenticator.GenerateToken(claims)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.recordActivity(r.Context(), activityAdminLogin, "Inicio de sesión en el dashboard", nil)

	app.jsonResponse(w, http.StatusCreated, map[string]any{
		"token":      token,
		"expires_at": claims.ExpiresAt.Time,
	})
}
