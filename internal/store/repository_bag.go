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

// bagRepository is the SQL implementation of [BagRepository] over the
// "bags" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] so
// database failures are logged with the request's trace id.
type bagRepository struct {
	*DB
	logger *logger.Logger
}

// NewBagRepository constructs a [BagRepository] backed by the provided
// database connection and logger.
func NewBagRepository(db *DB, logger *logger.Logger) BagRepository {
	logger.Debug().Msg("creating bag repository")
	return &bagRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateBag inserts bag and returns it with the id assigned by the database.
// The ID field of the input is ignored.
func (r *bagRepository) CreateBag(ctx context.Context, bag models.Bag) (models.Bag, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertBagQuery(r.builder, bag)
	if err != nil {
		log.Err(err).Str("func", "*bagRepository.CreateBag").Msg("failed to build query")
		return models.Bag{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&bag.ID); err != nil {
		log.Err(err).Str("func", "*bagRepository.CreateBag").Msg("failed to insert bag")
		return models.Bag{}, r.classify(err, ErrExecutingStatement)
	}

	log.Debug().Str("func", "*bagRepository.CreateBag").Int64("bag_id", bag.ID).Msg("bag created")
	return bag, nil
}

// GetBag returns the bag with the given id or [ErrBagNotFound].
func (r *bagRepository) GetBag(ctx context.Context, id int64) (models.Bag, error) {
	return getBag(ctx, r.DB, r.DB, id)
}

// UpdateBag overwrites the editable fields of the bag identified by bag.ID.
// Returns [ErrBagNotFound] when no row matched.
func (r *bagRepository) UpdateBag(ctx context.Context, bag models.Bag) (models.Bag, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateBagQuery(r.builder, bag)
	if err != nil {
		log.Err(err).Str("func", "*bagRepository.UpdateBag").Msg("failed to build query")
		return models.Bag{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, r.DB, query, args, ErrBagNotFound); err != nil {
		log.Err(err).Str("func", "*bagRepository.UpdateBag").Int64("bag_id", bag.ID).Msg("failed to update bag")
		return models.Bag{}, err
	}

	return r.GetBag(ctx, bag.ID)
}

// DeleteBag removes the bag. Vial batches frozen from it lose their bag reference.
func (r *bagRepository) DeleteBag(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteBagQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*bagRepository.DeleteBag").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, r.DB, query, args, ErrBagNotFound); err != nil {
		log.Err(err).Str("func", "*bagRepository.DeleteBag").Int64("bag_id", id).Msg("failed to delete bag")
		return err
	}

	log.Info().Str("func", "*bagRepository.DeleteBag").Int64("bag_id", id).Msg("bag deleted")
	return nil
}

// FindBags returns the bags matching query in the requested order.
func (r *bagRepository) FindBags(ctx context.Context, query models.BagQuery) ([]models.Bag, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildFindBagsQuery(r.builder, query)
	if err != nil {
		log.Err(err).Str("func", "*bagRepository.FindBags").Msg("failed to build query")
		if errors.Is(err, ErrUnsupportedOrderField) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*bagRepository.FindBags").Msg("failed to execute query for bags")
		return nil, r.classify(err, ErrExecutingQuery)
	}
	defer rows.Close()

	bags := make([]models.Bag, 0, 16)
	for rows.Next() {
		bag, scanErr := scanBag(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*bagRepository.FindBags").Msg("failed to scan bag row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		bags = append(bags, bag)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*bagRepository.FindBags").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return bags, nil
}

// getBag reads one bag through q, which is either the connection or an open
// transaction.
func getBag(ctx context.Context, db *DB, q querier, id int64) (models.Bag, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBagQuery(db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "getBag").Msg("failed to build query")
		return models.Bag{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	bag, err := scanBag(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Bag{}, fmt.Errorf("%w: id %d", ErrBagNotFound, id)
	}
	if err != nil {
		log.Err(err).Str("func", "getBag").Int64("bag_id", id).Msg("failed to get bag")
		return models.Bag{}, db.classify(err, ErrScanningRow)
	}

	return bag, nil
}

// execAffectingOne executes a single-row UPDATE or DELETE through q and
// returns notFound when no row matched.
func (db *DB) execAffectingOne(ctx context.Context, q querier, query string, args []any, notFound error) error {
	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return db.classify(err, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}
