package queries

import (
	"context"

	"postal/internal/core/domain/model/office"
	"postal/internal/core/ports"
)

// ListOfficesQueryHandler retrieves post offices matching a filter.
type ListOfficesQueryHandler struct {
	officeRepo ports.OfficeRepository
}

// NewListOfficesQueryHandler creates a handler for filtered office listing.
func NewListOfficesQueryHandler(officeRepo ports.OfficeRepository) ListOfficesQueryHandler {
	return ListOfficesQueryHandler{officeRepo: officeRepo}
}

// Handle executes the filtered listing in stable identifier order.
func (h ListOfficesQueryHandler) Handle(ctx context.Context, query ListOfficesQuery) ([]*office.Office, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.officeRepo.FindMatching(ctx, query.Filter(), query.Page())
}
