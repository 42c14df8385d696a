// cmd/api/inquiries.go
package main

import "net/http"

func (app *application) listInquiriesHandler(w http.ResponseWriter, r *http.Request) {
	opts, err := listOptions(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	inquiries, err := app.store.Inquiries.List(r.Context(), opts)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, inquiries)
}
