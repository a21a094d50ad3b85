package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-coffee-freezer/internal/config"
	"github.com/MKhiriev/go-coffee-freezer/internal/logger"
)

// Storages groups every repository built on top of one database connection.
type Storages struct {
	BagRepository     BagRepository
	VialRepository    VialRepository
	FreezerRepository FreezerRepository

	db *DB
}

// NewStorages connects to the database configured in cfg, applies the
// embedded migrations and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := Connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to storage: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating storage: %w", err)
	}
	log.Info().Str("dialect", db.Dialect()).Msg("storage is ready")

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories over an already migrated connection.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		BagRepository:     NewBagRepository(db, log),
		VialRepository:    NewVialRepository(db, log),
		FreezerRepository: NewFreezerRepository(db, log),
		db:                db,
	}
}

func (s *Storages) PingContext(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storages) Close() error {
	return s.db.Close()
}
