package models

// Order describes a single ORDER BY term.
type Order struct {
	// Field is the column name. Only columns whitelisted by the store are accepted.
	Field string

	// Desc switches to descending order.
	Desc bool
}

// BagQuery filters and orders bags. Nil filters are not applied.
type BagQuery struct {
	Frozen *bool
	Order  []Order
}

// VialQuery filters and orders vial batches. Nil filters are not applied.
type VialQuery struct {
	// InStock selects batches with vials > 0 (true) or vials = 0 (false).
	InStock *bool
	Order   []Order
}

// ActiveBagsQuery selects bags not frozen yet ordered by target freeze date.
func ActiveBagsQuery() BagQuery {
	frozen := false
	return BagQuery{
		Frozen: &frozen,
		Order:  []Order{{Field: "target_freeze_date"}, {Field: "id"}},
	}
}

// InStockVialsQuery selects batches with vials left, fullest first.
func InStockVialsQuery() VialQuery {
	inStock := true
	return VialQuery{
		InStock: &inStock,
		Order:   []Order{{Field: "vials", Desc: true}, {Field: "id"}},
	}
}

// PastVialsQuery selects emptied batches, most recently frozen first.
func PastVialsQuery() VialQuery {
	inStock := false
	return VialQuery{
		InStock: &inStock,
		Order:   []Order{{Field: "actual_freeze_date", Desc: true}, {Field: "id"}},
	}
}
