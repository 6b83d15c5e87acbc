package services_test

import (
	"testing"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/parcel"
	"postal/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreParcel(t *testing.T, weight, price float64, status parcel.Status, tier parcel.DeliveryTier, category parcel.Category) *parcel.Parcel {
	t.Helper()

	p, err := parcel.RestoreParcel(
		kernel.NewUUID(),
		kernel.NewUUID().String(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		weight,
		price,
		status,
		tier,
		category,
		kernel.NewUUID(),
		kernel.NewUUID(),
	)
	require.NoError(t, err)

	return p
}

func TestBuildParcelStatisticsEmptySet(t *testing.T) {
	stats := services.BuildParcelStatistics(nil)

	assert.Zero(t, stats.TotalParcels)
	assert.Zero(t, stats.AverageWeight)
	assert.Zero(t, stats.AveragePrice)

	assert.Nil(t, stats.MostExpensive)
	assert.Nil(t, stats.Cheapest)
	assert.Nil(t, stats.Heaviest)
	assert.Nil(t, stats.Lightest)

	t.Run("count maps should be zero-filled for every variant", func(t *testing.T) {
		assert.Len(t, stats.CountByStatus, len(parcel.AllStatuses()))
		for _, status := range parcel.AllStatuses() {
			count, ok := stats.CountByStatus[status]
			assert.True(t, ok)
			assert.Zero(t, count)
		}

		assert.Len(t, stats.CountByTier, len(parcel.AllTiers()))
		assert.Len(t, stats.CountByCategory, len(parcel.AllCategories()))
	})
}

func TestBuildParcelStatistics(t *testing.T) {
	first := restoreParcel(t, 100, 500, parcel.Created, parcel.TierDefault, parcel.CategoryBooks)
	second := restoreParcel(t, 300, 100, parcel.InTransit, parcel.TierExpress, parcel.CategoryBooks)
	third := restoreParcel(t, 200, 900, parcel.InTransit, parcel.TierDefault, parcel.CategoryClothes)

	stats := services.BuildParcelStatistics([]*parcel.Parcel{first, second, third})

	assert.Equal(t, int64(3), stats.TotalParcels)
	assert.InDelta(t, 200.0, stats.AverageWeight, 1e-9)
	assert.InDelta(t, 500.0, stats.AveragePrice, 1e-9)

	assert.Equal(t, int64(1), stats.CountByStatus[parcel.Created])
	assert.Equal(t, int64(2), stats.CountByStatus[parcel.InTransit])
	assert.Equal(t, int64(0), stats.CountByStatus[parcel.Delivered])

	assert.Equal(t, int64(2), stats.CountByTier[parcel.TierDefault])
	assert.Equal(t, int64(1), stats.CountByTier[parcel.TierExpress])
	assert.Equal(t, int64(0), stats.CountByTier[parcel.TierEconom])

	assert.Equal(t, int64(2), stats.CountByCategory[parcel.CategoryBooks])
	assert.Equal(t, int64(1), stats.CountByCategory[parcel.CategoryClothes])
	assert.Equal(t, int64(0), stats.CountByCategory[parcel.CategoryGroceries])

	assert.True(t, third.IsEqual(stats.MostExpensive))
	assert.True(t, second.IsEqual(stats.Cheapest))
	assert.True(t, second.IsEqual(stats.Heaviest))
	assert.True(t, first.IsEqual(stats.Lightest))
}

func TestBuildParcelStatisticsTieKeepsFirstOccurrence(t *testing.T) {
	first := restoreParcel(t, 10, 402, parcel.Created, parcel.TierDefault, parcel.CategoryBooks)
	second := restoreParcel(t, 10, 402, parcel.Created, parcel.TierDefault, parcel.CategoryBooks)

	stats := services.BuildParcelStatistics([]*parcel.Parcel{first, second})

	assert.True(t, first.IsEqual(stats.MostExpensive))
	assert.True(t, first.IsEqual(stats.Cheapest))
	assert.True(t, first.IsEqual(stats.Heaviest))
	assert.True(t, first.IsEqual(stats.Lightest))
}
