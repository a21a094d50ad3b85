package service

import (
	"github.com/MKhiriev/go-coffee-freezer/internal/config"
	"github.com/MKhiriev/go-coffee-freezer/internal/logger"
	"github.com/MKhiriev/go-coffee-freezer/internal/store"
)

type Services struct {
	BagService       BagService
	VialService      VialService
	FreezerService   FreezerService
	InventoryService InventoryService
	AppInfoService   AppInfoService
	HealthService    HealthService
}

// NewServices builds the services over storages. Mutating services are
// decorated so that input is validated first, then the operation is
// recorded by recorder, then it reaches the store.
func NewServices(storages *store.Storages, cfg config.App, recorder MetricsRecorder, logger *logger.Logger) (*Services, error) {
	if storages == nil {
		return nil, ErrNoStorages
	}

	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	bagService := NewBagService(storages.BagRepository, logger)
	bagService = NewBagMetricsService(recorder).Wrap(bagService)
	bagService = NewBagValidationService().Wrap(bagService)

	vialService := NewVialService(storages.VialRepository, logger)
	vialService = NewVialMetricsService(recorder).Wrap(vialService)
	vialService = NewVialValidationService().Wrap(vialService)

	freezerService := NewFreezerService(storages.FreezerRepository, logger)
	freezerService = NewFreezerMetricsService(recorder).Wrap(freezerService)
	freezerService = NewFreezerValidationService().Wrap(freezerService)

	return &Services{
		BagService:       bagService,
		VialService:      vialService,
		FreezerService:   freezerService,
		InventoryService: NewInventoryService(storages.BagRepository, storages.VialRepository, logger),
		AppInfoService:   appInfoService,
		HealthService:    NewHealthService(storages, logger),
	}, nil
}
