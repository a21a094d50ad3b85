package validators

import (
	"context"
	"slices"
	"time"

	"github.com/MKhiriev/go-coffee-freezer/models"
)

// Field names of the bag, vial and freeze forms. They are passed to Validate
// to restrict validation to a subset of fields and are the keys of
// [FieldErrors].
const (
	FieldID               = "id"
	FieldBagID            = "bag_id"
	FieldName             = "name"
	FieldBrewMethod       = "brew_method"
	FieldRoaster          = "roaster"
	FieldOrigin           = "origin"
	FieldTastingNotes     = "tasting_notes"
	FieldNotes            = "notes"
	FieldTargetFreezeDate = "target_freeze_date"
	FieldGrams            = "grams"
	FieldVials            = "vials"
	FieldGramsPerVial     = "grams_per_vial"
	FieldActualFreezeDate = "actual_freeze_date"
)

const (
	maxShortTextLen = 100
	maxLongTextLen  = 4000
)

var (
	bagFields = []string{
		FieldName, FieldBrewMethod, FieldRoaster, FieldOrigin, FieldTastingNotes, FieldNotes,
		FieldTargetFreezeDate, FieldGrams,
	}
	vialFields = []string{
		FieldName, FieldBrewMethod, FieldRoaster, FieldOrigin, FieldTastingNotes, FieldNotes,
		FieldVials, FieldGramsPerVial, FieldActualFreezeDate,
	}
	freezeFields = []string{
		FieldBagID, FieldVials, FieldGramsPerVial, FieldActualFreezeDate,
	}
)

// InventoryValidator implements [Validator] for models.Bag, models.Vial and
// models.FreezeRequest. Unlike a fail-fast check it collects every failing
// field, so a form can show all problems at once.
type InventoryValidator struct{}

func NewInventoryValidator() Validator {
	return &InventoryValidator{}
}

// Validate returns nil or a [FieldErrors]. Without fields the default set of
// the model is validated; the id is only checked when FieldID is requested
// explicitly (updates).
func (v *InventoryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Bag:
		return v.validateBag(value, fields...)
	case *models.Bag:
		return v.validateBag(*value, fields...)

	case models.Vial:
		return v.validateVial(value, fields...)
	case *models.Vial:
		return v.validateVial(*value, fields...)

	case models.FreezeRequest:
		return v.validateFreezeRequest(value, fields...)
	case *models.FreezeRequest:
		return v.validateFreezeRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *InventoryValidator) validateBag(bag models.Bag, fields ...string) error {
	if len(fields) == 0 {
		fields = bagFields
	}

	var errs FieldErrors
	for _, f := range fields {
		switch f {
		case FieldID:
			checkID(&errs, f, bag.ID)
		case FieldName, FieldBrewMethod, FieldRoaster, FieldOrigin, FieldTastingNotes, FieldNotes:
			checkDescription(&errs, f, bag.Description())
		case FieldTargetFreezeDate:
			checkDate(&errs, f, bag.TargetFreezeDate)
		case FieldGrams:
			checkPositive(&errs, f, bag.Grams)
		default:
			return ErrUnknownField
		}
	}

	return errs.OrNil()
}

func (v *InventoryValidator) validateVial(vial models.Vial, fields ...string) error {
	if len(fields) == 0 {
		fields = vialFields
	}

	var errs FieldErrors
	for _, f := range fields {
		switch f {
		case FieldID:
			checkID(&errs, f, vial.ID)
		case FieldBagID:
			if vial.BagID != nil {
				checkID(&errs, f, *vial.BagID)
			}
		case FieldName, FieldBrewMethod, FieldRoaster, FieldOrigin, FieldTastingNotes, FieldNotes:
			checkDescription(&errs, f, vial.Description())
		case FieldVials:
			if vial.Vials < 0 {
				errs.Add(f, ErrNegative)
			}
		case FieldGramsPerVial:
			checkPositive(&errs, f, vial.GramsPerVial)
		case FieldActualFreezeDate:
			checkDate(&errs, f, vial.ActualFreezeDate)
		default:
			return ErrUnknownField
		}
	}

	return errs.OrNil()
}

// validateFreezeRequest requires at least one vial: freezing produces a batch
// that is in stock.
func (v *InventoryValidator) validateFreezeRequest(request models.FreezeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = freezeFields
	}

	var errs FieldErrors
	for _, f := range fields {
		switch f {
		case FieldBagID:
			checkID(&errs, f, request.BagID)
		case FieldVials:
			checkPositive(&errs, f, request.Vials)
		case FieldGramsPerVial:
			checkPositive(&errs, f, request.GramsPerVial)
		case FieldActualFreezeDate:
			checkDate(&errs, f, request.ActualFreezeDate)
		default:
			return ErrUnknownField
		}
	}

	return errs.OrNil()
}

func checkID(errs *FieldErrors, field string, id int64) {
	if id <= 0 {
		errs.Add(field, ErrInvalidID)
	}
}

func checkDescription(errs *FieldErrors, field string, d models.Description) {
	switch field {
	case FieldName:
		checkText(errs, field, d.Name, true, maxShortTextLen)
	case FieldBrewMethod:
		checkText(errs, field, d.BrewMethod, true, maxShortTextLen)
	case FieldRoaster:
		checkText(errs, field, d.Roaster, true, maxShortTextLen)
	case FieldOrigin:
		checkText(errs, field, d.Origin, true, maxShortTextLen)
	case FieldTastingNotes:
		checkText(errs, field, d.TastingNotes, false, maxLongTextLen)
	case FieldNotes:
		checkText(errs, field, d.Notes, false, maxLongTextLen)
	}
}

func checkText(errs *FieldErrors, field, value string, required bool, maxLen int) {
	switch {
	case required && value == "":
		errs.Add(field, ErrRequired)
	case len(value) > maxLen:
		errs.Add(field, ErrTooLong)
	}
}

func checkDate(errs *FieldErrors, field, value string) {
	if value == "" {
		errs.Add(field, ErrRequired)
		return
	}
	if _, err := time.Parse(models.DateLayout, value); err != nil {
		errs.Add(field, ErrInvalidDate)
	}
}

func checkPositive(errs *FieldErrors, field string, value int) {
	if value <= 0 {
		errs.Add(field, ErrNotPositive)
	}
}

// BagFields returns the fields validated for a bag by default.
func BagFields() []string {
	return slices.Clone(bagFields)
}

// VialFields returns the fields validated for a vial batch by default.
func VialFields() []string {
	return slices.Clone(vialFields)
}
