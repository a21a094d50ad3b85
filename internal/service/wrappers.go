package service

// BagServiceWrapper defines middleware composition for BagService.
// Implementations wrap an existing BagService to add behavior such as
// validating or collecting metrics.
type BagServiceWrapper interface {
	Wrap(BagService) BagService // returns a decorated BagService applying additional behavior
}

// VialServiceWrapper defines middleware composition for VialService.
type VialServiceWrapper interface {
	Wrap(VialService) VialService
}

// FreezerServiceWrapper defines middleware composition for FreezerService.
type FreezerServiceWrapper interface {
	Wrap(FreezerService) FreezerService
}
