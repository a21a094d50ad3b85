// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-coffee-freezer/internal/store"
	"github.com/MKhiriev/go-coffee-freezer/models"
)

// Operation names reported to [MetricsRecorder].
const (
	OperationCreateBag  = "create_bag"
	OperationUpdateBag  = "update_bag"
	OperationDeleteBag  = "delete_bag"
	OperationCreateVial = "create_vial"
	OperationUpdateVial = "update_vial"
	OperationDeleteVial = "delete_vial"
	OperationFreeze     = "freeze"
	OperationUnfreeze   = "unfreeze"
	OperationConsume    = "consume"
	OperationOutOfStock = "out_of_stock"
)

func observe(ctx context.Context, recorder MetricsRecorder, operation string, start time.Time, err error) {
	recorder.Observe(ctx, operation, err == nil, time.Since(start))
}

// BagMetricsService reports the mutations of bags. Reads are not recorded.
type BagMetricsService struct {
	inner    BagService
	recorder MetricsRecorder
}

func NewBagMetricsService(recorder MetricsRecorder) BagServiceWrapper {
	return &BagMetricsService{recorder: recorder}
}

func (m *BagMetricsService) CreateBag(ctx context.Context, bag models.Bag) (models.Bag, error) {
	start := time.Now()
	created, err := m.inner.CreateBag(ctx, bag)
	observe(ctx, m.recorder, OperationCreateBag, start, err)
	return created, err
}

func (m *BagMetricsService) GetBag(ctx context.Context, id int64) (models.Bag, error) {
	return m.inner.GetBag(ctx, id)
}

func (m *BagMetricsService) UpdateBag(ctx context.Context, bag models.Bag) (models.Bag, error) {
	start := time.Now()
	updated, err := m.inner.UpdateBag(ctx, bag)
	observe(ctx, m.recorder, OperationUpdateBag, start, err)
	return updated, err
}

func (m *BagMetricsService) DeleteBag(ctx context.Context, id int64) error {
	start := time.Now()
	err := m.inner.DeleteBag(ctx, id)
	observe(ctx, m.recorder, OperationDeleteBag, start, err)
	return err
}

func (m *BagMetricsService) Wrap(wrapped BagService) BagService {
	m.inner = wrapped
	return m
}

// VialMetricsService reports the mutations of vial batches.
type VialMetricsService struct {
	inner    VialService
	recorder MetricsRecorder
}

func NewVialMetricsService(recorder MetricsRecorder) VialServiceWrapper {
	return &VialMetricsService{recorder: recorder}
}

func (m *VialMetricsService) CreateVial(ctx context.Context, vial models.Vial) (models.Vial, error) {
	start := time.Now()
	created, err := m.inner.CreateVial(ctx, vial)
	observe(ctx, m.recorder, OperationCreateVial, start, err)
	return created, err
}

func (m *VialMetricsService) GetVial(ctx context.Context, id int64) (models.Vial, error) {
	return m.inner.GetVial(ctx, id)
}

func (m *VialMetricsService) UpdateVial(ctx context.Context, vial models.Vial) (models.Vial, error) {
	start := time.Now()
	updated, err := m.inner.UpdateVial(ctx, vial)
	observe(ctx, m.recorder, OperationUpdateVial, start, err)
	return updated, err
}

func (m *VialMetricsService) DeleteVial(ctx context.Context, id int64) error {
	start := time.Now()
	err := m.inner.DeleteVial(ctx, id)
	observe(ctx, m.recorder, OperationDeleteVial, start, err)
	return err
}

func (m *VialMetricsService) Wrap(wrapped VialService) VialService {
	m.inner = wrapped
	return m
}

// FreezerMetricsService reports the freezer transitions. A consume on an
// empty batch is reported as a successful out_of_stock operation.
type FreezerMetricsService struct {
	inner    FreezerService
	recorder MetricsRecorder
}

func NewFreezerMetricsService(recorder MetricsRecorder) FreezerServiceWrapper {
	return &FreezerMetricsService{recorder: recorder}
}

func (m *FreezerMetricsService) FreezeBag(ctx context.Context, request models.FreezeRequest) (models.Vial, error) {
	start := time.Now()
	vial, err := m.inner.FreezeBag(ctx, request)
	observe(ctx, m.recorder, OperationFreeze, start, err)
	return vial, err
}

func (m *FreezerMetricsService) UnfreezeVial(ctx context.Context, vialID int64) (models.Bag, error) {
	start := time.Now()
	bag, err := m.inner.UnfreezeVial(ctx, vialID)
	observe(ctx, m.recorder, OperationUnfreeze, start, err)
	return bag, err
}

func (m *FreezerMetricsService) ConsumeVial(ctx context.Context, vialID int64) (models.Vial, error) {
	start := time.Now()
	vial, err := m.inner.ConsumeVial(ctx, vialID)
	if errors.Is(err, store.ErrOutOfStock) {
		observe(ctx, m.recorder, OperationOutOfStock, start, nil)
		return vial, err
	}
	observe(ctx, m.recorder, OperationConsume, start, err)
	return vial, err
}

func (m *FreezerMetricsService) Wrap(wrapped FreezerService) FreezerService {
	m.inner = wrapped
	return m
}
