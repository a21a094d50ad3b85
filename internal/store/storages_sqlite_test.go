// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-coffee-freezer/internal/config"
	"github.com/MKhiriev/go-coffee-freezer/internal/logger"
	"github.com/MKhiriev/go-coffee-freezer/models"
)

// newSQLiteStorages opens a fresh migrated SQLite database in a temp dir.
func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	cfg := config.Storage{DB: config.DB{DSN: filepath.Join(t.TempDir(), "coffee.sqlite")}}
	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() {
		s.Close()
	})

	return s
}

func createTestBag(t *testing.T, s *Storages, name, target string) models.Bag {
	t.Helper()

	bag, err := s.BagRepository.CreateBag(context.Background(), models.Bag{
		Name:             name,
		BrewMethod:       "filter",
		Roaster:          "Square Mile",
		Origin:           "Ethiopia",
		TargetFreezeDate: target,
		Grams:            340,
	})
	require.NoError(t, err)
	return bag
}

func TestSQLite_ActiveBagsOrderedByTargetFreezeDate(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	later := createTestBag(t, s, "Huila", "2024-03-15")
	yirgacheffe := createTestBag(t, s, "Yirgacheffe", "2024-01-01")

	assert.False(t, yirgacheffe.Frozen)

	bags, err := s.BagRepository.FindBags(ctx, models.ActiveBagsQuery())
	require.NoError(t, err)
	require.Len(t, bags, 2)
	assert.Equal(t, yirgacheffe.ID, bags[0].ID)
	assert.Equal(t, later.ID, bags[1].ID)
}

func TestSQLite_FreezeConsumeUnfreezeLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	bag := createTestBag(t, s, "Yirgacheffe", "2024-01-01")

	vial, err := s.FreezerRepository.Freeze(ctx, models.FreezeRequest{
		BagID:            bag.ID,
		Vials:            4,
		GramsPerVial:     85,
		ActualFreezeDate: "2024-02-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, vial.Vials)
	require.NotNil(t, vial.BagID)
	assert.Equal(t, bag.ID, *vial.BagID)
	assert.Equal(t, bag.Name, vial.Name)

	// the bag is kept but no longer active
	frozen, err := s.BagRepository.GetBag(ctx, bag.ID)
	require.NoError(t, err)
	assert.True(t, frozen.Frozen)

	active, err := s.BagRepository.FindBags(ctx, models.ActiveBagsQuery())
	require.NoError(t, err)
	assert.Empty(t, active)

	inStock, err := s.VialRepository.FindVials(ctx, models.InStockVialsQuery())
	require.NoError(t, err)
	require.Len(t, inStock, 1)
	assert.Equal(t, vial.ID, inStock[0].ID)

	_, err = s.FreezerRepository.Freeze(ctx, models.FreezeRequest{BagID: bag.ID, Vials: 1, GramsPerVial: 10, ActualFreezeDate: "2024-02-02"})
	assert.ErrorIs(t, err, ErrBagAlreadyFrozen)

	for want := 3; want >= 0; want-- {
		consumed, consumeErr := s.FreezerRepository.Consume(ctx, vial.ID)
		require.NoError(t, consumeErr)
		assert.Equal(t, want, consumed.Vials)
	}

	_, err = s.FreezerRepository.Consume(ctx, vial.ID)
	assert.ErrorIs(t, err, ErrOutOfStock)

	empty, err := s.VialRepository.GetVial(ctx, vial.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Vials)

	inStock, err = s.VialRepository.FindVials(ctx, models.InStockVialsQuery())
	require.NoError(t, err)
	assert.Empty(t, inStock)

	past, err := s.VialRepository.FindVials(ctx, models.PastVialsQuery())
	require.NoError(t, err)
	require.Len(t, past, 1)
	assert.Equal(t, vial.ID, past[0].ID)

	// notes edited on the batch travel back to the bag
	empty.Notes = "too bright as espresso"
	_, err = s.VialRepository.UpdateVial(ctx, empty)
	require.NoError(t, err)

	restored, err := s.FreezerRepository.Unfreeze(ctx, vial.ID)
	require.NoError(t, err)
	assert.Equal(t, bag.ID, restored.ID)
	assert.False(t, restored.Frozen)
	assert.Equal(t, "too bright as espresso", restored.Notes)
	assert.Equal(t, bag.Grams, restored.Grams)

	_, err = s.VialRepository.GetVial(ctx, vial.ID)
	assert.ErrorIs(t, err, ErrVialNotFound)

	active, err = s.BagRepository.FindBags(ctx, models.ActiveBagsQuery())
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, bag.ID, active[0].ID)
}

func TestSQLite_UnfreezeAfterSourceBagDeleted(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	bag := createTestBag(t, s, "Yirgacheffe", "2024-01-01")
	vial, err := s.FreezerRepository.Freeze(ctx, models.FreezeRequest{BagID: bag.ID, Vials: 2, GramsPerVial: 18, ActualFreezeDate: "2024-02-01"})
	require.NoError(t, err)

	require.NoError(t, s.BagRepository.DeleteBag(ctx, bag.ID))

	orphan, err := s.VialRepository.GetVial(ctx, vial.ID)
	require.NoError(t, err)
	assert.Nil(t, orphan.BagID)

	_, err = s.FreezerRepository.Unfreeze(ctx, vial.ID)
	assert.ErrorIs(t, err, ErrVialHasNoSourceBag)

	// the batch is left untouched
	kept, err := s.VialRepository.GetVial(ctx, vial.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, kept.Vials)
}

func TestSQLite_CheckConstraints(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	_, err := s.BagRepository.CreateBag(ctx, models.Bag{Name: "x", BrewMethod: "x", Roaster: "x", Origin: "x", TargetFreezeDate: "2024-01-01", Grams: 0})
	assert.ErrorIs(t, err, ErrConstraintViolation)

	_, err = s.VialRepository.CreateVial(ctx, models.Vial{Name: "x", BrewMethod: "x", Roaster: "x", Origin: "x", Vials: -1, GramsPerVial: 10, ActualFreezeDate: "2024-01-01"})
	assert.ErrorIs(t, err, ErrConstraintViolation)
}

func TestSQLite_Ping(t *testing.T) {
	s := newSQLiteStorages(t)
	assert.NoError(t, s.PingContext(context.Background()))
}
