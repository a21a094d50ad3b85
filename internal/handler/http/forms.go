// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-coffee-freezer/internal/validators"
	"github.com/MKhiriev/go-coffee-freezer/models"
)

// freezeFields are the inputs of the freeze form.
var freezeFields = []string{
	validators.FieldVials,
	validators.FieldGramsPerVial,
	validators.FieldActualFreezeDate,
}

// submittedForm is a parsed urlencoded form. Integer fields that cannot be
// converted are collected in errs; everything else is left to the validators.
type submittedForm struct {
	values url.Values
	errs   validators.FieldErrors
}

func parseForm(r *http.Request) (*submittedForm, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return &submittedForm{values: r.PostForm}, nil
}

func (f *submittedForm) text(field string) string {
	return strings.TrimSpace(f.values.Get(field))
}

func (f *submittedForm) integer(field string) int {
	raw := f.text(field)
	if raw == "" {
		f.errs.Add(field, validators.ErrRequired)
		return 0
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		f.errs.Add(field, validators.ErrNotAnInteger)
		return 0
	}
	return n
}

// valuesOf returns the submitted values of fields for rendering the form back.
func (f *submittedForm) valuesOf(fields []string) map[string]string {
	values := make(map[string]string, len(fields))
	for _, field := range fields {
		values[field] = f.text(field)
	}
	return values
}

func (f *submittedForm) description() models.Description {
	return models.Description{
		Name:         f.text(validators.FieldName),
		BrewMethod:   f.text(validators.FieldBrewMethod),
		Roaster:      f.text(validators.FieldRoaster),
		Origin:       f.text(validators.FieldOrigin),
		TastingNotes: f.text(validators.FieldTastingNotes),
		Notes:        f.text(validators.FieldNotes),
	}
}

func (f *submittedForm) bag() models.Bag {
	bag := models.Bag{
		TargetFreezeDate: f.text(validators.FieldTargetFreezeDate),
		Grams:            f.integer(validators.FieldGrams),
	}
	return bag.WithDescription(f.description())
}

func (f *submittedForm) vial() models.Vial {
	vial := models.Vial{
		Vials:            f.integer(validators.FieldVials),
		GramsPerVial:     f.integer(validators.FieldGramsPerVial),
		ActualFreezeDate: f.text(validators.FieldActualFreezeDate),
	}
	return vial.WithDescription(f.description())
}

func (f *submittedForm) freezeRequest(bagID int64) models.FreezeRequest {
	return models.FreezeRequest{
		BagID:            bagID,
		Vials:            f.integer(validators.FieldVials),
		GramsPerVial:     f.integer(validators.FieldGramsPerVial),
		ActualFreezeDate: f.text(validators.FieldActualFreezeDate),
	}
}
