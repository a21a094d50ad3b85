// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-coffee-freezer/internal/logger"
	"github.com/MKhiriev/go-coffee-freezer/models"
)

// freezerRepository implements [FreezerRepository]. Freeze and Unfreeze touch
// both tables and therefore run inside a transaction; Consume is a single
// conditional UPDATE.
type freezerRepository struct {
	*DB
	logger *logger.Logger
}

func NewFreezerRepository(db *DB, logger *logger.Logger) FreezerRepository {
	logger.Debug().Msg("creating freezer repository")
	return &freezerRepository{
		DB:     db,
		logger: logger,
	}
}

// Freeze creates one vial batch from the bag request.BagID and flags the bag
// frozen. The bag itself is kept.
//
// Errors:
//   - [ErrBagNotFound] when the bag does not exist;
//   - [ErrBagAlreadyFrozen] when the bag was frozen before.
func (r *freezerRepository) Freeze(ctx context.Context, request models.FreezeRequest) (models.Vial, error) {
	log := logger.FromContext(ctx)

	var vial models.Vial
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		bag, err := getBag(ctx, r.DB, tx, request.BagID)
		if err != nil {
			return err
		}
		if bag.Frozen {
			return fmt.Errorf("%w: id %d", ErrBagAlreadyFrozen, bag.ID)
		}

		vial, err = createVial(ctx, r.DB, tx, request.VialFrom(bag))
		if err != nil {
			return err
		}

		query, args, err := buildFreezeBagQuery(r.builder, bag.ID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		return r.execAffectingOne(ctx, tx, query, args, ErrBagNotFound)
	})
	if err != nil {
		log.Err(err).Str("func", "*freezerRepository.Freeze").Int64("bag_id", request.BagID).Msg("failed to freeze bag")
		return models.Vial{}, err
	}

	log.Info().
		Str("func", "*freezerRepository.Freeze").
		Int64("bag_id", request.BagID).
		Int64("vial_id", vial.ID).
		Int("vials", vial.Vials).
		Msg("bag frozen")

	return vial, nil
}

// Unfreeze moves the batch vialID back into its source bag: descriptive
// fields are copied onto the bag, the bag is unflagged and the batch is
// deleted. Quantities are not reconciled.
//
// Errors:
//   - [ErrVialNotFound] when the batch does not exist;
//   - [ErrVialHasNoSourceBag] when the batch has no bag reference or the
//     referenced bag no longer exists. The batch is left untouched.
func (r *freezerRepository) Unfreeze(ctx context.Context, vialID int64) (models.Bag, error) {
	log := logger.FromContext(ctx)

	var bag models.Bag
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		vial, err := getVial(ctx, r.DB, tx, vialID)
		if err != nil {
			return err
		}
		if vial.BagID == nil {
			return fmt.Errorf("%w: vial id %d", ErrVialHasNoSourceBag, vialID)
		}

		bagID := *vial.BagID
		query, args, err := buildUnfreezeBagQuery(r.builder, bagID, vial.Description())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if err = r.execAffectingOne(ctx, tx, query, args, ErrBagNotFound); err != nil {
			if errors.Is(err, ErrBagNotFound) {
				return fmt.Errorf("%w: bag id %d is gone", ErrVialHasNoSourceBag, bagID)
			}
			return err
		}

		query, args, err = buildDeleteVialQuery(r.builder, vialID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if err = r.execAffectingOne(ctx, tx, query, args, ErrVialNotFound); err != nil {
			return err
		}

		bag, err = getBag(ctx, r.DB, tx, bagID)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*freezerRepository.Unfreeze").Int64("vial_id", vialID).Msg("failed to unfreeze vial")
		return models.Bag{}, err
	}

	log.Info().
		Str("func", "*freezerRepository.Unfreeze").
		Int64("vial_id", vialID).
		Int64("bag_id", bag.ID).
		Msg("vial unfrozen")

	return bag, nil
}

// Consume takes one vial out of the batch and returns the updated batch.
//
// Errors:
//   - [ErrVialNotFound] when the batch does not exist;
//   - [ErrOutOfStock] when no vials are left; the count stays at zero.
func (r *freezerRepository) Consume(ctx context.Context, vialID int64) (models.Vial, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildConsumeVialQuery(r.builder, vialID)
	if err != nil {
		log.Err(err).Str("func", "*freezerRepository.Consume").Msg("failed to build query")
		return models.Vial{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.execAffectingOne(ctx, r.DB, query, args, ErrOutOfStock)
	if errors.Is(err, ErrOutOfStock) {
		// nothing matched: either the batch is empty or it does not exist
		if _, getErr := r.getVial(ctx, vialID); getErr != nil {
			return models.Vial{}, getErr
		}
		log.Warn().Str("func", "*freezerRepository.Consume").Int64("vial_id", vialID).Msg("no vials to consume")
		return models.Vial{}, fmt.Errorf("%w: vial id %d", ErrOutOfStock, vialID)
	}
	if err != nil {
		log.Err(err).Str("func", "*freezerRepository.Consume").Int64("vial_id", vialID).Msg("failed to consume vial")
		return models.Vial{}, err
	}

	return r.getVial(ctx, vialID)
}

func (r *freezerRepository) getVial(ctx context.Context, id int64) (models.Vial, error) {
	return getVial(ctx, r.DB, r.DB, id)
}
