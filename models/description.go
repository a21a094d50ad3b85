package models

// DateLayout is the layout of every date stored as text
// (target and actual freeze dates). It matches HTML date inputs.
const DateLayout = "2006-01-02"

// Description holds the descriptive fields that travel between a bag and
// its vial batch on freeze and unfreeze.
type Description struct {
	Name         string
	BrewMethod   string
	Roaster      string
	Origin       string
	TastingNotes string
	Notes        string
}
