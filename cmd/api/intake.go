// cmd/api/intake.go
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

// IntakePayload es el resultado final del formulario de proyecto de varios pasos.
type IntakePayload struct {
	Name        string `json:"name"        validate:"required,min=2,max=100"`
	Email       string `json:"email"       validate:"required,email,max=255"`
	Company     string `json:"company"     validate:"omitempty,max=100"`
	ProjectType string `json:"projectType" validate:"required,oneof=web mobile ai consulting other"`
	Budget      string `json:"budget"      validate:"required,oneof=<5k 5k-15k 15k-50k 50k+"`
	Timeline    string `json:"timeline"    validate:"required,oneof=asap 1-3m 3-6m flexible"`
	Description string `json:"description" validate:"required,min=20,max=5000"`
}

func (p *IntakePayload) normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.Company = strings.TrimSpace(p.Company)
	p.ProjectType = strings.TrimSpace(p.ProjectType)
	p.Budget = strings.TrimSpace(p.Budget)
	p.Timeline = strings.TrimSpace(p.Timeline)
	p.Description = strings.TrimSpace(p.Description)
}

func (app *application) createInquiryHandler(w http.ResponseWriter, r *http.Request) {
	var payload IntakePayload
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
	in := &store.Inquiry{
		Name:        payload.Name,
		Email:       payload.Email,
		Company:     payload.Company,
		ProjectType: payload.ProjectType,
		Budget:      payload.Budget,
		Timeline:    payload.Timeline,
		Description: payload.Description,
	}

	if err := app.store.Inquiries.Create(ctx, in); err != nil {
		app.recordActivity(ctx, activityIntakeFailed, "No se pudo guardar una solicitud de proyecto", map[string]string{"email": payload.Email})
		app.internalServerError(w, r, fmt.Errorf("intake: store inquiry: %w", err))
		return
	}

	if err := app.mailer.Send(mailer.IntakeNotificationTemplate, app.config.mail.owner, payload.Email, payload); err != nil {
		if markErr := app.store.Inquiries.MarkNotificationFailed(ctx, in.ID); markErr != nil {
			app.logger.Warn("no se pudo marcar el aviso fallido", zap.String("inquiry_id", in.ID), zap.Error(markErr))
		}
		app.recordActivity(ctx, activityIntakeFailed, "No se pudo enviar la notificación de la solicitud", map[string]string{"inquiry_id": in.ID})
		app.internalServerError(w, r, fmt.Errorf("intake: send notification: %w", err))
		return
	}

	app.recordActivity(ctx, activityIntakeSubmitted, fmt.Sprintf("Nueva solicitud de proyecto (%s) de %s", in.ProjectType, in.Name), map[string]string{
		"inquiry_id": in.ID,
		"email":      in.Email,
		"budget":     in.Budget,
	})

	app.jsonResponse(w, http.StatusOK, map[string]string{
		"id":      in.ID,
		"message": "¡Solicitud recibida! Te contactaré en 24-48 horas.",
	})
}
