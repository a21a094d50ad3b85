package models

// Inventory is the content of the listing page.
type Inventory struct {
	// ActiveBags are bags not frozen yet, soonest target freeze date first.
	ActiveBags []Bag

	// InStockVials are batches with vials left, fullest first.
	InStockVials []Vial

	// PastVials are emptied batches, most recently frozen first.
	PastVials []Vial
}
