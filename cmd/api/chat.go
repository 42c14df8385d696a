// cmd/api/chat.go
package main

import (
	"fmt"
	"net/http"
	"strings"

	"PortfolioSite/internal/ai"
	"PortfolioSite/internal/validation"
)

const chatSystemPrompt = `Eres el asistente del portfolio. Respondes en el idioma del visitante,
con frases cortas, sobre los servicios, proyectos y experiencia del autor del sitio.
Si te preguntan por presupuestos o disponibilidad, invita a usar el formulario de proyecto.
No inventes datos de contacto ni precios.`

type ChatMessagePayload struct {
	Role    string `json:"role"    validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

type ChatPayload struct {
	Messages []ChatMessagePayload `json:"messages" validate:"required,min=1,max=20,dive"`
}

func (app *application) chatHandler(w http.ResponseWriter, r *http.Request) {
	var payload ChatPayload
	if err := app.readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	for i := range payload.Messages {
		payload.Messages[i].Content = strings.TrimSpace(payload.Messages[i].Content)
	}
	if err := validation.Struct(payload); err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	history := make([]ai.Message, 0, len(payload.Messages))
	for _, m := range payload.Messages {
		history = append(history, ai.Message{Role: m.Role, Content: m.Content})
	}

	reply, err := app.assistant.Complete(r.Context(), chatSystemPrompt, history)
	if err != nil {
		app.internalServerError(w, r, fmt.Errorf("chat: complete: %w", err))
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]string{"reply": reply})
}
