package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-coffee-freezer/internal/mock"
	"github.com/MKhiriev/go-coffee-freezer/internal/store"
	"github.com/MKhiriev/go-coffee-freezer/models"
)

func TestFreezerMetricsService_ConsumeVial(t *testing.T) {
	tests := []struct {
		name        string
		innerErr    error
		wantOp      string
		wantSuccess bool
	}{
		{name: "consumed", wantOp: OperationConsume, wantSuccess: true},
		{name: "out of stock", innerErr: store.ErrOutOfStock, wantOp: OperationOutOfStock, wantSuccess: true},
		{name: "not found", innerErr: store.ErrVialNotFound, wantOp: OperationConsume, wantSuccess: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			inner := mock.NewMockFreezerService(ctrl)
			recorder := mock.NewMockMetricsRecorder(ctrl)
			svc := NewFreezerMetricsService(recorder).Wrap(inner)
			ctx := context.Background()

			inner.EXPECT().ConsumeVial(ctx, int64(3)).Return(models.Vial{}, tt.innerErr)
			recorder.EXPECT().Observe(ctx, tt.wantOp, tt.wantSuccess, gomock.Any())

			_, err := svc.ConsumeVial(ctx, 3)
			if tt.innerErr != nil {
				assert.ErrorIs(t, err, tt.innerErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFreezerMetricsService_FreezeAndUnfreeze(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mock.NewMockFreezerService(ctrl)
	recorder := mock.NewMockMetricsRecorder(ctrl)
	svc := NewFreezerMetricsService(recorder).Wrap(inner)
	ctx := context.Background()

	request := models.FreezeRequest{BagID: 1, Vials: 4, GramsPerVial: 85, ActualFreezeDate: "2024-02-01"}

	inner.EXPECT().FreezeBag(ctx, request).Return(models.Vial{ID: 2}, nil)
	recorder.EXPECT().Observe(ctx, OperationFreeze, true, gomock.Any())

	inner.EXPECT().UnfreezeVial(ctx, int64(2)).Return(models.Bag{}, store.ErrVialHasNoSourceBag)
	recorder.EXPECT().Observe(ctx, OperationUnfreeze, false, gomock.Any())

	_, err := svc.FreezeBag(ctx, request)
	require.NoError(t, err)

	_, err = svc.UnfreezeVial(ctx, 2)
	assert.ErrorIs(t, err, store.ErrVialHasNoSourceBag)
}

func TestBagMetricsService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mock.NewMockBagService(ctrl)
	recorder := mock.NewMockMetricsRecorder(ctrl)
	svc := NewBagMetricsService(recorder).Wrap(inner)
	ctx := context.Background()

	inner.EXPECT().CreateBag(ctx, gomock.Any()).Return(models.Bag{ID: 1}, nil)
	recorder.EXPECT().Observe(ctx, OperationCreateBag, true, gomock.Any())

	inner.EXPECT().UpdateBag(ctx, gomock.Any()).Return(models.Bag{}, errors.New("boom"))
	recorder.EXPECT().Observe(ctx, OperationUpdateBag, false, gomock.Any())

	inner.EXPECT().DeleteBag(ctx, int64(1)).Return(nil)
	recorder.EXPECT().Observe(ctx, OperationDeleteBag, true, gomock.Any())

	// reads are not recorded
	inner.EXPECT().GetBag(ctx, int64(1)).Return(models.Bag{ID: 1}, nil)

	_, err := svc.CreateBag(ctx, testBag())
	require.NoError(t, err)
	_, err = svc.UpdateBag(ctx, testBag())
	require.Error(t, err)
	require.NoError(t, svc.DeleteBag(ctx, 1))
	_, err = svc.GetBag(ctx, 1)
	require.NoError(t, err)
}

func TestVialMetricsService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mock.NewMockVialService(ctrl)
	recorder := mock.NewMockMetricsRecorder(ctrl)
	svc := NewVialMetricsService(recorder).Wrap(inner)
	ctx := context.Background()

	inner.EXPECT().CreateVial(ctx, gomock.Any()).Return(models.Vial{ID: 1}, nil)
	recorder.EXPECT().Observe(ctx, OperationCreateVial, true, gomock.Any())
	inner.EXPECT().UpdateVial(ctx, gomock.Any()).Return(models.Vial{ID: 1}, nil)
	recorder.EXPECT().Observe(ctx, OperationUpdateVial, true, gomock.Any())
	inner.EXPECT().DeleteVial(ctx, int64(1)).Return(store.ErrVialNotFound)
	recorder.EXPECT().Observe(ctx, OperationDeleteVial, false, gomock.Any())
	inner.EXPECT().GetVial(ctx, int64(1)).Return(models.Vial{ID: 1}, nil)

	_, err := svc.CreateVial(ctx, models.Vial{})
	require.NoError(t, err)
	_, err = svc.UpdateVial(ctx, models.Vial{ID: 1})
	require.NoError(t, err)
	assert.ErrorIs(t, svc.DeleteVial(ctx, 1), store.ErrVialNotFound)
	_, err = svc.GetVial(ctx, 1)
	require.NoError(t, err)
}
