package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-coffee-freezer/internal/validators"
	"github.com/MKhiriev/go-coffee-freezer/models"
)

// BagValidationService rejects invalid bags before they reach the store.
// Rejections are [validators.FieldErrors].
type BagValidationService struct {
	inner     BagService
	validator validators.Validator
}

func NewBagValidationService() BagServiceWrapper {
	return &BagValidationService{
		validator: validators.NewInventoryValidator(),
	}
}

func (v *BagValidationService) CreateBag(ctx context.Context, bag models.Bag) (models.Bag, error) {
	if err := v.validator.Validate(ctx, bag); err != nil {
		return models.Bag{}, fmt.Errorf("error during bag validation before saving: %w", err)
	}
	return v.inner.CreateBag(ctx, bag)
}

func (v *BagValidationService) GetBag(ctx context.Context, id int64) (models.Bag, error) {
	return v.inner.GetBag(ctx, id)
}

func (v *BagValidationService) UpdateBag(ctx context.Context, bag models.Bag) (models.Bag, error) {
	fields := append([]string{validators.FieldID}, validators.BagFields()...)
	if err := v.validator.Validate(ctx, bag, fields...); err != nil {
		return models.Bag{}, fmt.Errorf("error during bag validation before updating: %w", err)
	}
	return v.inner.UpdateBag(ctx, bag)
}

func (v *BagValidationService) DeleteBag(ctx context.Context, id int64) error {
	return v.inner.DeleteBag(ctx, id)
}

func (v *BagValidationService) Wrap(wrapped BagService) BagService {
	v.inner = wrapped
	return v
}

// VialValidationService rejects invalid vial batches before they reach the
// store.
type VialValidationService struct {
	inner     VialService
	validator validators.Validator
}

func NewVialValidationService() VialServiceWrapper {
	return &VialValidationService{
		validator: validators.NewInventoryValidator(),
	}
}

func (v *VialValidationService) CreateVial(ctx context.Context, vial models.Vial) (models.Vial, error) {
	if err := v.validator.Validate(ctx, vial); err != nil {
		return models.Vial{}, fmt.Errorf("error during vial validation before saving: %w", err)
	}
	return v.inner.CreateVial(ctx, vial)
}

func (v *VialValidationService) GetVial(ctx context.Context, id int64) (models.Vial, error) {
	return v.inner.GetVial(ctx, id)
}

func (v *VialValidationService) UpdateVial(ctx context.Context, vial models.Vial) (models.Vial, error) {
	fields := append([]string{validators.FieldID}, validators.VialFields()...)
	if err := v.validator.Validate(ctx, vial, fields...); err != nil {
		return models.Vial{}, fmt.Errorf("error during vial validation before updating: %w", err)
	}
	return v.inner.UpdateVial(ctx, vial)
}

func (v *VialValidationService) DeleteVial(ctx context.Context, id int64) error {
	return v.inner.DeleteVial(ctx, id)
}

func (v *VialValidationService) Wrap(wrapped VialService) VialService {
	v.inner = wrapped
	return v
}

// FreezerValidationService checks the quantities of a freeze request.
type FreezerValidationService struct {
	inner     FreezerService
	validator validators.Validator
}

func NewFreezerValidationService() FreezerServiceWrapper {
	return &FreezerValidationService{
		validator: validators.NewInventoryValidator(),
	}
}

func (v *FreezerValidationService) FreezeBag(ctx context.Context, request models.FreezeRequest) (models.Vial, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Vial{}, fmt.Errorf("error during freeze request validation: %w", err)
	}
	return v.inner.FreezeBag(ctx, request)
}

func (v *FreezerValidationService) UnfreezeVial(ctx context.Context, vialID int64) (models.Bag, error) {
	return v.inner.UnfreezeVial(ctx, vialID)
}

func (v *FreezerValidationService) ConsumeVial(ctx context.Context, vialID int64) (models.Vial, error) {
	return v.inner.ConsumeVial(ctx, vialID)
}

func (v *FreezerValidationService) Wrap(wrapped FreezerService) FreezerService {
	v.inner = wrapped
	return v
}
