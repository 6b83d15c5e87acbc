package queries

import (
	"context"

	"postal/internal/core/domain/model/client"
	"postal/internal/core/ports"
)

// GetClientQueryHandler retrieves a client by identifier.
type GetClientQueryHandler struct {
	clientRepo ports.ClientRepository
}

// NewGetClientQueryHandler creates a handler for client lookups.
func NewGetClientQueryHandler(clientRepo ports.ClientRepository) GetClientQueryHandler {
	return GetClientQueryHandler{clientRepo: clientRepo}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when the
// client does not exist.
func (h GetClientQueryHandler) Handle(ctx context.Context, query GetClientQuery) (*client.Client, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.clientRepo.Get(ctx, query.ClientID())
}
