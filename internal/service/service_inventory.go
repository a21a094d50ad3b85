package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-coffee-freezer/internal/logger"
	"github.com/MKhiriev/go-coffee-freezer/internal/store"
	"github.com/MKhiriev/go-coffee-freezer/models"
)

type inventoryService struct {
	bagRepository  store.BagRepository
	vialRepository store.VialRepository

	logger *logger.Logger
}

func NewInventoryService(bagRepository store.BagRepository, vialRepository store.VialRepository, logger *logger.Logger) InventoryService {
	return &inventoryService{
		bagRepository:  bagRepository,
		vialRepository: vialRepository,
		logger:         logger,
	}
}

// Overview returns the active bags (soonest target freeze date first), the
// batches in stock (fullest first) and the emptied batches (most recently
// frozen first).
func (s *inventoryService) Overview(ctx context.Context) (models.Inventory, error) {
	activeBags, err := s.bagRepository.FindBags(ctx, models.ActiveBagsQuery())
	if err != nil {
		return models.Inventory{}, fmt.Errorf("error listing active bags: %w", err)
	}

	inStock, err := s.vialRepository.FindVials(ctx, models.InStockVialsQuery())
	if err != nil {
		return models.Inventory{}, fmt.Errorf("error listing vials in stock: %w", err)
	}

	past, err := s.vialRepository.FindVials(ctx, models.PastVialsQuery())
	if err != nil {
		return models.Inventory{}, fmt.Errorf("error listing past vials: %w", err)
	}

	return models.Inventory{
		ActiveBags:   activeBags,
		InStockVials: inStock,
		PastVials:    past,
	}, nil
}
