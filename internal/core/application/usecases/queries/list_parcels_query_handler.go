package queries

import (
	"context"

	"postal/internal/core/domain/model/parcel"
	"postal/internal/core/ports"
)

// ListParcelsQueryHandler retrieves parcels matching a filter.
type ListParcelsQueryHandler struct {
	parcelRepo ports.ParcelRepository
}

// NewListParcelsQueryHandler creates a handler for filtered parcel listing.
func NewListParcelsQueryHandler(parcelRepo ports.ParcelRepository) ListParcelsQueryHandler {
	return ListParcelsQueryHandler{parcelRepo: parcelRepo}
}

// Handle executes the filtered listing. Results come back in stable
// identifier order; an empty result is a valid outcome, not an error.
func (h ListParcelsQueryHandler) Handle(ctx context.Context, query ListParcelsQuery) ([]*parcel.Parcel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.parcelRepo.FindMatching(ctx, query.Filter(), query.Page())
}
