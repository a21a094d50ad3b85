package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-coffee-freezer/internal/app"
	"github.com/MKhiriev/go-coffee-freezer/internal/store"
	"github.com/MKhiriev/go-coffee-freezer/internal/validators"
)

// errorResponse is the status and the page message shown for an error.
type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order, so more specific errors go first.
var errorResponses = []struct {
	target   error
	response errorResponse
}{
	{ErrInvalidID, errorResponse{http.StatusNotFound, app.MsgPageNotFound}},
	{store.ErrBagNotFound, errorResponse{http.StatusNotFound, app.MsgBagNotFound}},
	{store.ErrVialNotFound, errorResponse{http.StatusNotFound, app.MsgVialNotFound}},

	{store.ErrOutOfStock, errorResponse{http.StatusConflict, app.MsgOutOfStock}},
	{store.ErrBagAlreadyFrozen, errorResponse{http.StatusConflict, app.MsgBagAlreadyFrozen}},
	{store.ErrVialHasNoSourceBag, errorResponse{http.StatusConflict, app.MsgVialHasNoSourceBag}},

	{validators.ErrInvalidInput, errorResponse{http.StatusUnprocessableEntity, app.MsgInvalidForm}},
	{store.ErrConstraintViolation, errorResponse{http.StatusUnprocessableEntity, app.MsgConstraintViolation}},

	{store.ErrStoreUnavailable, errorResponse{http.StatusServiceUnavailable, app.MsgStoreUnavailable}},
}

var internalErrorResponse = errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.response
		}
	}
	return internalErrorResponse
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, r, ErrInvalidID)
}
