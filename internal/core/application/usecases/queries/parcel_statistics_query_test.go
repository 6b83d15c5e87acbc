package queries_test

import (
	"testing"

	"postal/internal/core/application/usecases/queries"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/parcel"
	"postal/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParcelStatisticsQuery_InvalidEnumValues(t *testing.T) {
	_, err := queries.NewParcelStatisticsQuery(parcel.Filter{Tiers: []parcel.DeliveryTier{parcel.DeliveryTier(99)}})
	require.Error(t, err)
}

func TestParcelStatisticsQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()

	light, err := parcel.RestoreParcel(kernel.NewUUID(), "token-1", kernel.NewUUID(), kernel.NewUUID(),
		100, 500, parcel.Created, parcel.TierDefault, parcel.CategoryBooks, kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	heavy, err := parcel.RestoreParcel(kernel.NewUUID(), "token-2", kernel.NewUUID(), kernel.NewUUID(),
		300, 700, parcel.InTransit, parcel.TierExpress, parcel.CategoryClothes, kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	filter := parcel.Filter{Statuses: []parcel.Status{parcel.Created, parcel.InTransit}}

	query, err := queries.NewParcelStatisticsQuery(filter)
	require.NoError(t, err)

	// The statistics scan is always a full scan: page must be nil.
	parcelRepo := new(MockParcelRepository)
	parcelRepo.On("FindMatching", ctx, filter, (*ports.Page)(nil)).
		Return([]*parcel.Parcel{light, heavy}, nil).Once()

	handler := queries.NewParcelStatisticsQueryHandler(parcelRepo)

	stats, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalParcels)
	assert.InDelta(t, 200.0, stats.AverageWeight, 1e-9)
	assert.InDelta(t, 600.0, stats.AveragePrice, 1e-9)
	assert.True(t, heavy.IsEqual(stats.MostExpensive))
	assert.True(t, light.IsEqual(stats.Cheapest))
	assert.True(t, heavy.IsEqual(stats.Heaviest))
	assert.True(t, light.IsEqual(stats.Lightest))
	parcelRepo.AssertExpectations(t)
}

func TestParcelStatisticsQueryHandler_Handle_EmptyPopulation(t *testing.T) {
	ctx := t.Context()

	query, err := queries.NewParcelStatisticsQuery(parcel.Filter{})
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	parcelRepo.On("FindMatching", ctx, parcel.Filter{}, (*ports.Page)(nil)).
		Return([]*parcel.Parcel{}, nil).Once()

	handler := queries.NewParcelStatisticsQueryHandler(parcelRepo)

	stats, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.Zero(t, stats.TotalParcels)
	assert.Zero(t, stats.AverageWeight)
	assert.Zero(t, stats.AveragePrice)
	assert.Nil(t, stats.MostExpensive)
	assert.Len(t, stats.CountByStatus, len(parcel.AllStatuses()))
}
