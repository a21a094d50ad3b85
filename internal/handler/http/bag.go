package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-coffee-freezer/internal/validators"
	"github.com/MKhiriev/go-coffee-freezer/internal/view"
)

func bagURL(id int64) string {
	return fmt.Sprintf("/view_bag/%d", id)
}

func newBagForm() view.Form {
	return view.Form{Action: "/add_bag", Submit: "Add bag", Cancel: "/"}
}

func editBagForm(id int64) view.Form {
	return view.Form{Action: fmt.Sprintf("/edit_bag/%d", id), Submit: "Save", Cancel: bagURL(id)}
}

func (h *Handler) addBagForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageBagForm, "Add bag", newBagForm())
}

func (h *Handler) addBag(w http.ResponseWriter, r *http.Request) {
	form, err := parseForm(r)
	if err != nil {
		h.renderError(w, r, fmt.Errorf("%w: %w", validators.ErrInvalidInput, err))
		return
	}

	page := newBagForm()
	page.Values = form.valuesOf(validators.BagFields())

	bag := form.bag()
	if err = form.errs.OrNil(); err != nil {
		h.renderFormError(w, r, view.PageBagForm, "Add bag", page, err)
		return
	}

	created, err := h.services.BagService.CreateBag(r.Context(), bag)
	if err != nil {
		h.renderFormError(w, r, view.PageBagForm, "Add bag", page, err)
		return
	}

	redirect(w, r, bagURL(created.ID))
}

func (h *Handler) viewBag(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	bag, err := h.services.BagService.GetBag(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageBagView, bag.Name, bag)
}

func (h *Handler) editBagForm(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	bag, err := h.services.BagService.GetBag(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	page := editBagForm(id)
	page.Values = view.BagValues(bag)
	h.render(w, r, http.StatusOK, view.PageBagForm, "Edit "+bag.Name, page)
}

func (h *Handler) editBag(w http.ResponseWriter, r *http.Request) {
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

	page := editBagForm(id)
	page.Values = form.valuesOf(validators.BagFields())

	bag := form.bag()
	bag.ID = id
	if err = form.errs.OrNil(); err != nil {
		h.renderFormError(w, r, view.PageBagForm, "Edit bag", page, err)
		return
	}

	if _, err = h.services.BagService.UpdateBag(r.Context(), bag); err != nil {
		h.renderFormError(w, r, view.PageBagForm, "Edit bag", page, err)
		return
	}

	redirect(w, r, bagURL(id))
}

func (h *Handler) deleteBagConfirm(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	bag, err := h.services.BagService.GetBag(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageConfirm, "Delete bag", view.Confirm{
		Message: fmt.Sprintf("Delete the bag %q from %s?", bag.Name, bag.Roaster),
		Action:  fmt.Sprintf("/delete_bag/%d", id),
		Submit:  "Delete",
		Cancel:  bagURL(id),
	})
}

func (h *Handler) deleteBag(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	if err = h.services.BagService.DeleteBag(r.Context(), id); err != nil {
		h.renderError(w, r, err)
		return
	}

	redirect(w, r, "/")
}
