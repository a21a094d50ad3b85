package store

import (
	"database/sql"

	"github.com/MKhiriev/go-coffee-freezer/models"
)

func scanBag(row rowScanner) (models.Bag, error) {
	var bag models.Bag
	err := row.Scan(
		&bag.ID,
		&bag.Name,
		&bag.BrewMethod,
		&bag.Roaster,
		&bag.Origin,
		&bag.TastingNotes,
		&bag.Notes,
		&bag.TargetFreezeDate,
		&bag.Grams,
		&bag.Frozen,
	)
	return bag, err
}

func scanVial(row rowScanner) (models.Vial, error) {
	var (
		vial  models.Vial
		bagID sql.NullInt64
	)
	err := row.Scan(
		&vial.ID,
		&bagID,
		&vial.Name,
		&vial.BrewMethod,
		&vial.Roaster,
		&vial.Origin,
		&vial.TastingNotes,
		&vial.Notes,
		&vial.Vials,
		&vial.GramsPerVial,
		&vial.ActualFreezeDate,
	)
	if bagID.Valid {
		vial.BagID = &bagID.Int64
	}
	return vial, err
}
