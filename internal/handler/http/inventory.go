package http

import (
	"net/http"

	"github.com/MKhiriev/go-coffee-freezer/internal/validators"
	"github.com/MKhiriev/go-coffee-freezer/internal/view"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	inventory, err := h.services.InventoryService.Overview(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageIndex, "", inventory)
}

// renderFormError shows form again with the field errors carried by err and
// status 422. Any other error gets the error page.
func (h *Handler) renderFormError(w http.ResponseWriter, r *http.Request, page, title string, form view.Form, err error) {
	fieldErrors, ok := validators.AsFieldErrors(err)
	if !ok {
		h.renderError(w, r, err)
		return
	}

	form.Errors = fieldErrors.Messages()
	h.render(w, r, http.StatusUnprocessableEntity, page, title, form)
}
