package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-coffee-freezer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type BagService interface {
	CreateBag(ctx context.Context, bag models.Bag) (models.Bag, error)
	GetBag(ctx context.Context, id int64) (models.Bag, error)
	UpdateBag(ctx context.Context, bag models.Bag) (models.Bag, error)
	DeleteBag(ctx context.Context, id int64) error
}

type VialService interface {
	CreateVial(ctx context.Context, vial models.Vial) (models.Vial, error)
	GetVial(ctx context.Context, id int64) (models.Vial, error)
	UpdateVial(ctx context.Context, vial models.Vial) (models.Vial, error)
	DeleteVial(ctx context.Context, id int64) error
}

// FreezerService moves coffee between bags and vial batches.
type FreezerService interface {
	FreezeBag(ctx context.Context, request models.FreezeRequest) (models.Vial, error)
	UnfreezeVial(ctx context.Context, vialID int64) (models.Bag, error)
	ConsumeVial(ctx context.Context, vialID int64) (models.Vial, error)
}

// InventoryService builds the listing page content.
type InventoryService interface {
	Overview(ctx context.Context) (models.Inventory, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetWebsiteName(ctx context.Context) string
}

// HealthService reports whether the application can serve requests.
type HealthService interface {
	Check(ctx context.Context) error
}

// MetricsRecorder observes the outcome and latency of service operations.
type MetricsRecorder interface {
	Observe(ctx context.Context, operation string, success bool, duration time.Duration)
}
