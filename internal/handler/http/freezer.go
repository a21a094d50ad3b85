// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-coffee-freezer/internal/app"
	"github.com/MKhiriev/go-coffee-freezer/internal/logger"
	"github.com/MKhiriev/go-coffee-freezer/internal/store"
	"github.com/MKhiriev/go-coffee-freezer/internal/utils"
	"github.com/MKhiriev/go-coffee-freezer/internal/validators"
	"github.com/MKhiriev/go-coffee-freezer/internal/view"
	"github.com/MKhiriev/go-coffee-freezer/models"
)

func freezeForm(bag models.Bag) view.Form {
	return view.Form{
		Action: fmt.Sprintf("/freeze_bag/%d", bag.ID),
		Submit: "Freeze",
		Cancel: bagURL(bag.ID),
		Bag:    bag,
	}
}

func (h *Handler) freezeBagForm(w http.ResponseWriter, r *http.Request) {
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
	if bag.Frozen {
		h.renderError(w, r, store.ErrBagAlreadyFrozen)
		return
	}

	page := freezeForm(bag)
	page.Values = map[string]string{
		validators.FieldActualFreezeDate: time.Now().Format(models.DateLayout),
	}
	h.render(w, r, http.StatusOK, view.PageFreezeForm, "Freeze "+bag.Name, page)
}

func (h *Handler) freezeBag(w http.ResponseWriter, r *http.Request) {
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

	request := form.freezeRequest(id)
	if err = form.errs.OrNil(); err == nil {
		if _, err = h.services.FreezerService.FreezeBag(r.Context(), request); err == nil {
			redirect(w, r, "/")
			return
		}
	}

	if _, ok := validators.AsFieldErrors(err); !ok {
		h.renderError(w, r, err)
		return
	}

	// the form shows the bag being frozen, so it is loaded only to render it back
	bag, getErr := h.services.BagService.GetBag(r.Context(), id)
	if getErr != nil {
		h.renderError(w, r, getErr)
		return
	}

	page := freezeForm(bag)
	page.Values = form.valuesOf(freezeFields)
	h.renderFormError(w, r, view.PageFreezeForm, "Freeze "+bag.Name, page, err)
}

func (h *Handler) unfreezeVialConfirm(w http.ResponseWriter, r *http.Request) {
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
	if vial.BagID == nil {
		h.renderError(w, r, store.ErrVialHasNoSourceBag)
		return
	}

	h.render(w, r, http.StatusOK, view.PageConfirm, "Unfreeze vials", view.Confirm{
		Message: fmt.Sprintf("Return %q to its bag? The %d vials left are removed from the freezer.", vial.Name, vial.Vials),
		Action:  fmt.Sprintf("/unfreeze_vial/%d", id),
		Submit:  "Unfreeze",
		Cancel:  vialURL(id),
	})
}

func (h *Handler) unfreezeVial(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	if _, err = h.services.FreezerService.UnfreezeVial(r.Context(), id); err != nil {
		h.renderError(w, r, err)
		return
	}

	redirect(w, r, "/")
}

func (h *Handler) consumeVialConfirm(w http.ResponseWriter, r *http.Request) {
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

	h.render(w, r, http.StatusOK, view.PageConfirm, "Consume a vial", view.Confirm{
		Message: fmt.Sprintf("Take one vial of %q out of the freezer? %d left.", vial.Name, vial.Vials),
		Action:  fmt.Sprintf("/consume_vials/%d", id),
		Submit:  "Consume",
		Cancel:  vialURL(id),
	})
}

func (h *Handler) consumeVial(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	_, err = h.services.FreezerService.ConsumeVial(r.Context(), id)
	if errors.Is(err, store.ErrOutOfStock) {
		logger.FromRequest(r).Debug().Int64("vial_id", id).Msg("consume from an empty batch")

		utils.WriteText(w, http.StatusConflict, app.MsgOutOfStock)
		return
	}
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	redirect(w, r, "/")
}
