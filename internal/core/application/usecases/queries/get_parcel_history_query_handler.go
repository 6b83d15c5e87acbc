package queries

import (
	"context"

	"postal/internal/core/domain/model/audit"
	"postal/internal/core/ports"
)

// GetParcelHistoryQueryHandler retrieves a parcel's audit trail.
type GetParcelHistoryQueryHandler struct {
	parcelRepo ports.ParcelRepository
	auditRepo  ports.AuditRepository
}

// NewGetParcelHistoryQueryHandler creates a handler for audit trail
// queries.
func NewGetParcelHistoryQueryHandler(
	parcelRepo ports.ParcelRepository,
	auditRepo ports.AuditRepository,
) GetParcelHistoryQueryHandler {
	return GetParcelHistoryQueryHandler{
		parcelRepo: parcelRepo,
		auditRepo:  auditRepo,
	}
}

// Handle resolves the parcel by tracking token and returns its audit
// entries, oldest first. Returns an ObjectNotFoundError when no parcel
// carries the given token.
func (h GetParcelHistoryQueryHandler) Handle(ctx context.Context, query GetParcelHistoryQuery) ([]*audit.Entry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.parcelRepo.GetByToken(ctx, query.TrackingToken())
	if err != nil {
		return nil, err
	}

	return h.auditRepo.GetByParcel(ctx, aggregate.ID())
}
