package ports

import (
	"context"

	"postal/internal/core/domain/model/client"
	"postal/internal/core/domain/model/kernel"
)

// ClientRepository defines the persistence contract for clients.
type ClientRepository interface {
	// Add persists a new client.
	Add(ctx context.Context, aggregate *client.Client) error

	// Update persists changes to an existing client.
	Update(ctx context.Context, aggregate *client.Client) error

	// Get retrieves a client by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)

	// GetAll retrieves clients in stable identifier order.
	// A nil page requests a full scan.
	GetAll(ctx context.Context, page *Page) ([]*client.Client, error)

	// Exists reports whether a client with the given identifier is stored.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// Delete removes a client by its unique identifier.
	Delete(ctx context.Context, id kernel.UUID) error
}
