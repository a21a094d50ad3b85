package models

// FreezeRequest carries the quantities submitted when a bag is portioned
// into vials.
type FreezeRequest struct {
	// BagID identifies the bag being frozen.
	BagID int64 `json:"bag_id"`

	// Vials is the number of vials produced.
	Vials int `json:"vials"`

	// GramsPerVial is the weight of each produced vial.
	GramsPerVial int `json:"grams_per_vial"`

	// ActualFreezeDate is the freeze day, formatted as [DateLayout].
	ActualFreezeDate string `json:"actual_freeze_date"`
}

// VialFrom builds the vial batch produced by freezing bag with the
// quantities of r. The returned vial has no ID yet.
func (r FreezeRequest) VialFrom(bag Bag) Vial {
	bagID := bag.ID
	vial := Vial{
		BagID:            &bagID,
		Vials:            r.Vials,
		GramsPerVial:     r.GramsPerVial,
		ActualFreezeDate: r.ActualFreezeDate,
	}
	return vial.WithDescription(bag.Description())
}
