package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-coffee-freezer/internal/validators"
	"github.com/MKhiriev/go-coffee-freezer/internal/view"
)

func vialURL(id int64) string {
	return fmt.Sprintf("/view_vial/%d", id)
}

func newVialForm() view.Form {
	return view.Form{Action: "/add_vial", Submit: "Add vials", Cancel: "/"}
}

func editVialForm(id int64) view.Form {
	return view.Form{Action: fmt.Sprintf("/edit_vial/%d", id), Submit: "Save", Cancel: vialURL(id)}
}

func (h *Handler) addVialForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageVialForm, "Add vials", newVialForm())
}

func (h *Handler) addVial(w http.ResponseWriter, r *http.Request) {
	form, err := parseForm(r)
	if err != nil {
		h.renderError(w, r, fmt.Errorf("%w: %w", validators.ErrInvalidInput, err))
		return
	}

	page := newVialForm()
	page.Values = form.valuesOf(validators.VialFields())

	vial := form.vial()
	if err = form.errs.OrNil(); err != nil {
		h.renderFormError(w, r, view.PageVialForm, "Add vials", page, err)
		return
	}

	created, err := h.services.VialService.CreateVial(r.Context(), vial)
	if err != nil {
		h.renderFormError(w, r, view.PageVialForm, "Add vials", page, err)
		return
	}

	redirect(w, r, vialURL(created.ID))
}

func (h *Handler) viewVial(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	vial, err := h.services.VialService.GetVial(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageVialView, vial.Name, vial)
}

func (h *Handler) editVialForm(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	vial, err := h.services.VialService.GetVial(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	page := editVialForm(id)
	page.Values = view.VialValues(vial)
	h.render(w, r, http.StatusOK, view.PageVialForm, "Edit "+vial.Name, page)
}

func (h *Handler) editVial(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	form, err := parseForm(r)
	if err != nil {
		h.renderError(w, r, fmt.Errorf("%w: %w", validators.ErrInvalidInput, err))
		return
	}

	page := editVialForm(id)
	page.Values = form.valuesOf(validators.VialFields())

	vial := form.vial()
	vial.ID = id
	if err = form.errs.OrNil(); err != nil {
		h.renderFormError(w, r, view.PageVialForm, "Edit vials", page, err)
		return
	}

	if _, err = h.services.VialService.UpdateVial(r.Context(), vial); err != nil {
		h.renderFormError(w, r, view.PageVialForm, "Edit vials", page, err)
		return
	}

	redirect(w, r, vialURL(id))
}

func (h *Handler) deleteVialConfirm(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	vial, err := h.services.VialService.GetVial(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageConfirm, "Delete vials", view.Confirm{
		Message: fmt.Sprintf("Delete %q (%d vials left)?", vial.Name, vial.Vials),
		Action:  fmt.Sprintf("/delete_vial/%d", id),
		Submit:  "Delete",
		Cancel:  vialURL(id),
	})
}

func (h *Handler) deleteVial(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	if err = h.services.VialService.DeleteVial(r.Context(), id); err != nil {
		h.renderError(w, r, err)
		return
	}

	redirect(w, r, "/")
}
