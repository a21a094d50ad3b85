// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-coffee-freezer/internal/logger"
	"github.com/MKhiriev/go-coffee-freezer/internal/store"
	"github.com/MKhiriev/go-coffee-freezer/models"
)

type freezerService struct {
	freezerRepository store.FreezerRepository

	logger *logger.Logger
}

func NewFreezerService(freezerRepository store.FreezerRepository, logger *logger.Logger) FreezerService {
	return &freezerService{
		freezerRepository: freezerRepository,
		logger:            logger,
	}
}

// FreezeBag portions the bag request.BagID into a new vial batch. The bag is
// kept and flagged frozen.
func (s *freezerService) FreezeBag(ctx context.Context, request models.FreezeRequest) (models.Vial, error) {
	return s.freezerRepository.Freeze(ctx, request)
}

// UnfreezeVial returns the batch to its source bag. Quantities are not
// reconciled: the bag keeps its original weight.
func (s *freezerService) UnfreezeVial(ctx context.Context, vialID int64) (models.Bag, error) {
	return s.freezerRepository.Unfreeze(ctx, vialID)
}

// ConsumeVial takes one vial out of the batch. An empty batch yields
// store.ErrOutOfStock and stays at zero.
func (s *freezerService) ConsumeVial(ctx context.Context, vialID int64) (models.Vial, error) {
	return s.freezerRepository.Consume(ctx, vialID)
}
