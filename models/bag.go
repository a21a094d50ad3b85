// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Bag represents an unfrozen quantity of coffee waiting to be portioned
// and frozen. Bags are listed as active until they are frozen.
type Bag struct {
	// ID is the identifier assigned by the store on creation.
	ID int64 `json:"id"`

	// Name is the coffee name as printed on the bag.
	Name string `json:"name"`

	// BrewMethod is the intended brewing method (e.g. "espresso", "filter").
	BrewMethod string `json:"brew_method"`

	// Roaster is the roastery the coffee comes from.
	Roaster string `json:"roaster"`

	// Origin is the country or region of origin.
	Origin string `json:"origin"`

	// TastingNotes is optional. An empty string means no notes.
	TastingNotes string `json:"tasting_notes"`

	// Notes is an optional free-form comment.
	Notes string `json:"notes"`

	// TargetFreezeDate is the day the bag should be frozen, formatted as
	// [DateLayout].
	TargetFreezeDate string `json:"target_freeze_date"`

	// Grams is the weight of coffee in the bag.
	Grams int `json:"grams"`

	// Frozen reports whether the bag was already converted into a vial batch.
	Frozen bool `json:"frozen"`
}

// Description returns the descriptive fields shared with [Vial].
func (b Bag) Description() Description {
	return Description{
		Name:         b.Name,
		BrewMethod:   b.BrewMethod,
		Roaster:      b.Roaster,
		Origin:       b.Origin,
		TastingNotes: b.TastingNotes,
		Notes:        b.Notes,
	}
}

// WithDescription returns a copy of b whose descriptive fields are replaced by d.
func (b Bag) WithDescription(d Description) Bag {
	b.Name = d.Name
	b.BrewMethod = d.BrewMethod
	b.Roaster = d.Roaster
	b.Origin = d.Origin
	b.TastingNotes = d.TastingNotes
	b.Notes = d.Notes
	return b
}

// TableName returns the name of the database table
// associated with the Bag model.
func (b Bag) TableName() string {
	return "bags"
}
