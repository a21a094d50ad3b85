// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Vial represents a batch of frozen, portioned coffee. A batch is usually
// created by freezing a [Bag] but can also be entered directly.
//
// A batch whose Vials count reached zero is kept as a past record.
type Vial struct {
	// ID is the identifier assigned by the store on creation.
	ID int64 `json:"id"`

	// BagID references the bag this batch was frozen from.
	// It is nil for batches entered directly or whose bag was deleted.
	BagID *int64 `json:"bag_id,omitempty"`

	Name         string `json:"name"`
	BrewMethod   string `json:"brew_method"`
	Roaster      string `json:"roaster"`
	Origin       string `json:"origin"`
	TastingNotes string `json:"tasting_notes"`
	Notes        string `json:"notes"`

	// Vials is the number of vials left in the freezer. Never negative.
	Vials int `json:"vials"`

	// GramsPerVial is the weight of a single vial.
	GramsPerVial int `json:"grams_per_vial"`

	// ActualFreezeDate is the day the batch was frozen, formatted as [DateLayout].
	ActualFreezeDate string `json:"actual_freeze_date"`
}

// InStock reports whether at least one vial is left.
func (v Vial) InStock() bool {
	return v.Vials > 0
}

// Description returns the descriptive fields shared with [Bag].
func (v Vial) Description() Description {
	return Description{
		Name:         v.Name,
		BrewMethod:   v.BrewMethod,
		Roaster:      v.Roaster,
		Origin:       v.Origin,
		TastingNotes: v.TastingNotes,
		Notes:        v.Notes,
	}
}

// WithDescription returns a copy of v whose descriptive fields are replaced by d.
func (v Vial) WithDescription(d Description) Vial {
	v.Name = d.Name
	v.BrewMethod = d.BrewMethod
	v.Roaster = d.Roaster
	v.Origin = d.Origin
	v.TastingNotes = d.TastingNotes
	v.Notes = d.Notes
	return v
}

// TableName returns the name of the database table
// associated with the Vial model.
func (v Vial) TableName() string {
	return "vials"
}
