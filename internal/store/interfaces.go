package store

import (
	"context"

	"github.com/MKhiriev/go-coffee-freezer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BagRepository persists bags.
type BagRepository interface {
	CreateBag(ctx context.Context, bag models.Bag) (models.Bag, error)
	GetBag(ctx context.Context, id int64) (models.Bag, error)
	UpdateBag(ctx context.Context, bag models.Bag) (models.Bag, error)
	DeleteBag(ctx context.Context, id int64) error
	FindBags(ctx context.Context, query models.BagQuery) ([]models.Bag, error)
}

// VialRepository persists vial batches.
type VialRepository interface {
	CreateVial(ctx context.Context, vial models.Vial) (models.Vial, error)
	GetVial(ctx context.Context, id int64) (models.Vial, error)
	UpdateVial(ctx context.Context, vial models.Vial) (models.Vial, error)
	DeleteVial(ctx context.Context, id int64) error
	FindVials(ctx context.Context, query models.VialQuery) ([]models.Vial, error)
}

// FreezerRepository performs the state transitions between bags and vials.
// Every method is atomic.
type FreezerRepository interface {
	// Freeze creates the vial batch of request.BagID and flags the bag frozen.
	Freeze(ctx context.Context, request models.FreezeRequest) (models.Vial, error)

	// Unfreeze copies the descriptive fields of the batch back onto its source
	// bag, unflags the bag and deletes the batch.
	Unfreeze(ctx context.Context, vialID int64) (models.Bag, error)

	// Consume takes one vial out of the batch.
	Consume(ctx context.Context, vialID int64) (models.Vial, error)
}

// Pinger reports whether the underlying database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}
