package queries

import (
	"context"

	"postal/internal/core/domain/model/parcel"
	"postal/internal/core/ports"
)

// GetParcelByTokenQueryHandler retrieves a parcel by its tracking token.
type GetParcelByTokenQueryHandler struct {
	parcelRepo ports.ParcelRepository
}

// NewGetParcelByTokenQueryHandler creates a handler for tracking-token
// lookups.
func NewGetParcelByTokenQueryHandler(parcelRepo ports.ParcelRepository) GetParcelByTokenQueryHandler {
	return GetParcelByTokenQueryHandler{parcelRepo: parcelRepo}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when no parcel
// carries the given token.
func (h GetParcelByTokenQueryHandler) Handle(ctx context.Context, query GetParcelByTokenQuery) (*parcel.Parcel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.parcelRepo.GetByToken(ctx, query.TrackingToken())
}
