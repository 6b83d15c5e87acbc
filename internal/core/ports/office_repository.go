package ports

import (
	"context"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/office"
)

// OfficeRepository defines the persistence contract for post offices.
type OfficeRepository interface {
	// Add persists a new office.
	Add(ctx context.Context, aggregate *office.Office) error

	// Update persists changes to an existing office.
	Update(ctx context.Context, aggregate *office.Office) error

	// Get retrieves an office by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*office.Office, error)

	// GetAll retrieves every office in stable identifier order.
	GetAll(ctx context.Context) ([]*office.Office, error)

	// FindMatching retrieves all offices satisfying the filter, in stable
	// identifier order. A nil page requests a full scan. Implementations
	// must reproduce exactly the semantics of office.Filter.Matches.
	FindMatching(ctx context.Context, filter office.Filter, page *Page) ([]*office.Office, error)

	// Exists reports whether an office with the given identifier is stored.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// Delete removes an office by its unique identifier.
	Delete(ctx context.Context, id kernel.UUID) error
}
