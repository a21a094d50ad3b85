package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-coffee-freezer/internal/logger"
	"github.com/MKhiriev/go-coffee-freezer/internal/mock"
	"github.com/MKhiriev/go-coffee-freezer/models"
)

func TestInventoryService_Overview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bags := mock.NewMockBagRepository(ctrl)
	vials := mock.NewMockVialRepository(ctrl)
	svc := NewInventoryService(bags, vials, logger.Nop())
	ctx := context.Background()

	active := []models.Bag{{ID: 1, Name: "Yirgacheffe"}}
	inStock := []models.Vial{{ID: 2, Vials: 4}}
	past := []models.Vial{{ID: 3, Vials: 0}}

	bags.EXPECT().FindBags(ctx, models.ActiveBagsQuery()).Return(active, nil)
	vials.EXPECT().FindVials(ctx, models.InStockVialsQuery()).Return(inStock, nil)
	vials.EXPECT().FindVials(ctx, models.PastVialsQuery()).Return(past, nil)

	inv, err := svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, active, inv.ActiveBags)
	assert.Equal(t, inStock, inv.InStockVials)
	assert.Equal(t, past, inv.PastVials)
}

func TestInventoryService_Overview_Errors(t *testing.T) {
	dbErr := errors.New("db down")

	t.Run("bags", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bags := mock.NewMockBagRepository(ctrl)
		vials := mock.NewMockVialRepository(ctrl)
		svc := NewInventoryService(bags, vials, logger.Nop())

		bags.EXPECT().FindBags(gomock.Any(), gomock.Any()).Return(nil, dbErr)

		_, err := svc.Overview(context.Background())
		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "active bags")
	})

	t.Run("past vials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bags := mock.NewMockBagRepository(ctrl)
		vials := mock.NewMockVialRepository(ctrl)
		svc := NewInventoryService(bags, vials, logger.Nop())

		bags.EXPECT().FindBags(gomock.Any(), gomock.Any()).Return(nil, nil)
		vials.EXPECT().FindVials(gomock.Any(), models.InStockVialsQuery()).Return(nil, nil)
		vials.EXPECT().FindVials(gomock.Any(), models.PastVialsQuery()).Return(nil, dbErr)

		_, err := svc.Overview(context.Background())
		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "past vials")
	})
}
