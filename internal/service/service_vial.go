package service

import (
	"context"

	"github.com/MKhiriev/go-coffee-freezer/internal/logger"
	"github.com/MKhiriev/go-coffee-freezer/internal/store"
	"github.com/MKhiriev/go-coffee-freezer/models"
)

type vialService struct {
	vialRepository store.VialRepository

	logger *logger.Logger
}

func NewVialService(vialRepository store.VialRepository, logger *logger.Logger) VialService {
	return &vialService{
		vialRepository: vialRepository,
		logger:         logger,
	}
}

// CreateVial stores a batch entered by hand. Such a batch has no source bag,
// so it cannot be unfrozen later.
func (s *vialService) CreateVial(ctx context.Context, vial models.Vial) (models.Vial, error) {
	vial.ID = 0
	vial.BagID = nil
	return s.vialRepository.CreateVial(ctx, vial)
}

func (s *vialService) GetVial(ctx context.Context, id int64) (models.Vial, error) {
	return s.vialRepository.GetVial(ctx, id)
}

func (s *vialService) UpdateVial(ctx context.Context, vial models.Vial) (models.Vial, error) {
	return s.vialRepository.UpdateVial(ctx, vial)
}

func (s *vialService) DeleteVial(ctx context.Context, id int64) error {
	return s.vialRepository.DeleteVial(ctx, id)
}
