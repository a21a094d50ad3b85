package view

import (
	"strconv"

	"github.com/MKhiriev/go-coffee-freezer/models"
)

// Form is the data of the bag, vial and freeze form pages. Values holds the
// raw submitted (or stored) field values so invalid input is shown back as typed.
type Form struct {
	Action string
	Submit string
	Cancel string
	Values map[string]string
	Errors map[string]string

	// Bag is set on the freeze form only.
	Bag models.Bag
}

// Confirm is the data of the confirmation page. Submitting it POSTs to Action.
type Confirm struct {
	Message string
	Action  string
	Submit  string
	Cancel  string
}

// Error is the data of the error page.
type Error struct {
	Status  int
	Message string
}

func descriptionValues(d models.Description) map[string]string {
	return map[string]string{
		"name":          d.Name,
		"brew_method":   d.BrewMethod,
		"roaster":       d.Roaster,
		"origin":        d.Origin,
		"tasting_notes": d.TastingNotes,
		"notes":         d.Notes,
	}
}

// BagValues returns the form values of a stored bag.
func BagValues(bag models.Bag) map[string]string {
	values := descriptionValues(bag.Description())
	values["target_freeze_date"] = bag.TargetFreezeDate
	values["grams"] = strconv.Itoa(bag.Grams)
	return values
}

// VialValues returns the form values of a stored vial batch.
func VialValues(vial models.Vial) map[string]string {
	values := descriptionValues(vial.Description())
	values["vials"] = strconv.Itoa(vial.Vials)
	values["grams_per_vial"] = strconv.Itoa(vial.GramsPerVial)
	values["actual_freeze_date"] = vial.ActualFreezeDate
	return values
}
