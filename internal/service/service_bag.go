package service

import (
	"context"

	"github.com/MKhiriev/go-coffee-freezer/internal/logger"
	"github.com/MKhiriev/go-coffee-freezer/internal/store"
	"github.com/MKhiriev/go-coffee-freezer/models"
)

type bagService struct {
	bagRepository store.BagRepository

	logger *logger.Logger
}

func NewBagService(bagRepository store.BagRepository, logger *logger.Logger) BagService {
	return &bagService{
		bagRepository: bagRepository,
		logger:        logger,
	}
}

// CreateBag stores a new active bag. The id and the frozen flag of the input
// are ignored.
func (s *bagService) CreateBag(ctx context.Context, bag models.Bag) (models.Bag, error) {
	bag.ID = 0
	bag.Frozen = false
	return s.bagRepository.CreateBag(ctx, bag)
}

func (s *bagService) GetBag(ctx context.Context, id int64) (models.Bag, error) {
	return s.bagRepository.GetBag(ctx, id)
}

func (s *bagService) UpdateBag(ctx context.Context, bag models.Bag) (models.Bag, error) {
	return s.bagRepository.UpdateBag(ctx, bag)
}

func (s *bagService) DeleteBag(ctx context.Context, id int64) error {
	return s.bagRepository.DeleteBag(ctx, id)
}
