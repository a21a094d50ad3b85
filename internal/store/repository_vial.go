package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-coffee-freezer/internal/logger"
	"github.com/MKhiriev/go-coffee-freezer/models"
)

// vialRepository is the SQL implementation of [VialRepository] over the
// "vials" table.
type vialRepository struct {
	*DB
	logger *logger.Logger
}

// NewVialRepository constructs a [VialRepository] backed by the provided
// database connection and logger.
func NewVialRepository(db *DB, logger *logger.Logger) VialRepository {
	logger.Debug().Msg("creating vial repository")
	return &vialRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateVial inserts vial and returns it with the id assigned by the database.
func (r *vialRepository) CreateVial(ctx context.Context, vial models.Vial) (models.Vial, error) {
	return createVial(ctx, r.DB, r.DB, vial)
}

// GetVial returns the vial batch with the given id or [ErrVialNotFound].
func (r *vialRepository) GetVial(ctx context.Context, id int64) (models.Vial, error) {
	return getVial(ctx, r.DB, r.DB, id)
}

// UpdateVial overwrites the editable fields of the batch identified by vial.ID.
func (r *vialRepository) UpdateVial(ctx context.Context, vial models.Vial) (models.Vial, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateVialQuery(r.builder, vial)
	if err != nil {
		log.Err(err).Str("func", "*vialRepository.UpdateVial").Msg("failed to build query")
		return models.Vial{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, r.DB, query, args, ErrVialNotFound); err != nil {
		log.Err(err).Str("func", "*vialRepository.UpdateVial").Int64("vial_id", vial.ID).Msg("failed to update vial")
		return models.Vial{}, err
	}

	return r.GetVial(ctx, vial.ID)
}

func (r *vialRepository) DeleteVial(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteVialQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*vialRepository.DeleteVial").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, r.DB, query, args, ErrVialNotFound); err != nil {
		log.Err(err).Str("func", "*vialRepository.DeleteVial").Int64("vial_id", id).Msg("failed to delete vial")
		return err
	}

	log.Info().Str("func", "*vialRepository.DeleteVial").Int64("vial_id", id).Msg("vial deleted")
	return nil
}

// FindVials returns the batches matching query in the requested order.
func (r *vialRepository) FindVials(ctx context.Context, query models.VialQuery) ([]models.Vial, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildFindVialsQuery(r.builder, query)
	if err != nil {
		log.Err(err).Str("func", "*vialRepository.FindVials").Msg("failed to build query")
		if errors.Is(err, ErrUnsupportedOrderField) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*vialRepository.FindVials").Msg("failed to execute query for vials")
		return nil, r.classify(err, ErrExecutingQuery)
	}
	defer rows.Close()

	vials := make([]models.Vial, 0, 16)
	for rows.Next() {
		vial, scanErr := scanVial(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*vialRepository.FindVials").Msg("failed to scan vial row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		vials = append(vials, vial)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*vialRepository.FindVials").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return vials, nil
}

func createVial(ctx context.Context, db *DB, q querier, vial models.Vial) (models.Vial, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertVialQuery(db.builder, vial)
	if err != nil {
		log.Err(err).Str("func", "createVial").Msg("failed to build query")
		return models.Vial{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = q.QueryRowContext(ctx, query, args...).Scan(&vial.ID); err != nil {
		log.Err(err).Str("func", "createVial").Msg("failed to insert vial")
		return models.Vial{}, db.classify(err, ErrExecutingStatement)
	}

	log.Debug().Str("func", "createVial").Int64("vial_id", vial.ID).Msg("vial created")
	return vial, nil
}

func getVial(ctx context.Context, db *DB, q querier, id int64) (models.Vial, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectVialQuery(db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "getVial").Msg("failed to build query")
		return models.Vial{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	vial, err := scanVial(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Vial{}, fmt.Errorf("%w: id %d", ErrVialNotFound, id)
	}
	if err != nil {
		log.Err(err).Str("func", "getVial").Int64("vial_id", id).Msg("failed to get vial")
		return models.Vial{}, db.classify(err, ErrScanningRow)
	}

	return vial, nil
}
