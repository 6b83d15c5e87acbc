package queries

import (
	"context"

	"postal/internal/core/domain/services"
	"postal/internal/core/ports"
)

// ParcelStatisticsQueryHandler computes aggregate parcel statistics.
//
// The matching parcels are loaded through the repository and folded in a
// single pass by services.BuildParcelStatistics, so the aggregation
// semantics live in one place regardless of the storage backend.
type ParcelStatisticsQueryHandler struct {
	parcelRepo ports.ParcelRepository
}

// NewParcelStatisticsQueryHandler creates a handler for statistics queries.
func NewParcelStatisticsQueryHandler(parcelRepo ports.ParcelRepository) ParcelStatisticsQueryHandler {
	return ParcelStatisticsQueryHandler{parcelRepo: parcelRepo}
}

// Handle executes the statistics query over all parcels matching the
// filter. An empty population yields zero totals, zero averages, and no
// extreme parcels.
func (h ParcelStatisticsQueryHandler) Handle(
	ctx context.Context,
	query ParcelStatisticsQuery,
) (services.ParcelStatistics, error) {
	if err := query.Validate(); err != nil {
		return services.ParcelStatistics{}, err
	}

	parcels, err := h.parcelRepo.FindMatching(ctx, query.Filter(), nil)
	if err != nil {
		return services.ParcelStatistics{}, err
	}

	return services.BuildParcelStatistics(parcels), nil
}
