package queries

import (
	"context"

	"postal/internal/core/domain/model/client"
	"postal/internal/core/ports"
)

// ListClientsQueryHandler retrieves clients.
type ListClientsQueryHandler struct {
	clientRepo ports.ClientRepository
}

// NewListClientsQueryHandler creates a handler for client listing.
func NewListClientsQueryHandler(clientRepo ports.ClientRepository) ListClientsQueryHandler {
	return ListClientsQueryHandler{clientRepo: clientRepo}
}

// Handle executes the listing in stable identifier order.
func (h ListClientsQueryHandler) Handle(ctx context.Context, query ListClientsQuery) ([]*client.Client, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.clientRepo.GetAll(ctx, query.Page())
}
