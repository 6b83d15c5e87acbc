package queries

import (
	"context"

	"postal/internal/core/domain/model/office"
	"postal/internal/core/ports"
)

// GetOfficeQueryHandler retrieves a post office by identifier.
type GetOfficeQueryHandler struct {
	officeRepo ports.OfficeRepository
}

// NewGetOfficeQueryHandler creates a handler for office lookups.
func NewGetOfficeQueryHandler(officeRepo ports.OfficeRepository) GetOfficeQueryHandler {
	return GetOfficeQueryHandler{officeRepo: officeRepo}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when the
// office does not exist.
func (h GetOfficeQueryHandler) Handle(ctx context.Context, query GetOfficeQuery) (*office.Office, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.officeRepo.Get(ctx, query.OfficeID())
}
