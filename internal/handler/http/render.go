package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-coffee-freezer/internal/logger"
	"github.com/MKhiriev/go-coffee-freezer/internal/view"
)

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page, title string, data any) {
	if err := h.renderer.Render(w, status, page, title, data); err != nil {
		logger.FromRequest(r).Err(err).Str("page", page).Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// renderError answers with the error page matching err. Server-side failures
// are logged as errors, client mistakes at debug level.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("uri", r.RequestURI).Int("status", resp.status).Msg("request rejected")
	}

	h.render(w, r, resp.status, view.PageError, http.StatusText(resp.status), view.Error{
		Status:  resp.status,
		Message: resp.message,
	})
}

// redirect answers a successful POST with 303 so reloading the target page
// never resubmits the form.
func redirect(w http.ResponseWriter, r *http.Request, url string) {
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// idFromPath parses the {id} URL parameter. Only positive integers are ids.
func idFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
