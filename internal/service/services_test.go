package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-coffee-freezer/internal/config"
	"github.com/MKhiriev/go-coffee-freezer/internal/logger"
	"github.com/MKhiriev/go-coffee-freezer/internal/mock"
	"github.com/MKhiriev/go-coffee-freezer/internal/store"
	"github.com/MKhiriev/go-coffee-freezer/internal/validators"
	"github.com/MKhiriev/go-coffee-freezer/models"
)

func TestNewServices_NoStorages(t *testing.T) {
	_, err := NewServices(nil, config.App{WebsiteName: "x"}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNoStorages)
}

func TestNewServices_NoWebsiteName(t *testing.T) {
	_, err := NewServices(&store.Storages{}, config.App{}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrWebsiteNameIsNotSpecified)
}

func TestNewServices_ValidationRunsBeforeMetricsAndStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bags := mock.NewMockBagRepository(ctrl)
	recorder := mock.NewMockMetricsRecorder(ctrl)
	storages := &store.Storages{BagRepository: bags}

	services, err := NewServices(storages, config.App{WebsiteName: "Coffee Freezer"}, recorder, logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	// invalid input never reaches the recorder or the repository
	_, err = services.BagService.CreateBag(ctx, models.Bag{})
	assert.ErrorIs(t, err, validators.ErrInvalidInput)

	bags.EXPECT().CreateBag(ctx, testBag()).Return(models.Bag{ID: 1}, nil)
	recorder.EXPECT().Observe(ctx, OperationCreateBag, true, gomock.Any())

	created, err := services.BagService.CreateBag(ctx, testBag())
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Coffee Freezer", services.AppInfoService.GetWebsiteName(ctx))
}
