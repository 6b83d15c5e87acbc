// Package ports defines repository and unit-of-work interfaces for the
// postal domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/parcel"
)

// Page describes an offset/limit window over a result set.
// Number is zero-based.
type Page struct {
	Number int
	Size   int
}

// Offset returns the number of records to skip for this page.
func (p Page) Offset() int {
	return p.Number * p.Size
}

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// The parcel must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// GetByID retrieves a parcel aggregate by its unique identifier.
	GetByID(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByToken retrieves a parcel aggregate by its tracking token.
	GetByToken(ctx context.Context, trackingToken string) (*parcel.Parcel, error)

	// FindMatching retrieves all parcels satisfying the filter, in stable
	// identifier order. A nil page requests a full scan; a non-nil page
	// narrows the result to that window. Implementations must reproduce
	// exactly the semantics of parcel.Filter.Matches.
	FindMatching(ctx context.Context, filter parcel.Filter, page *Page) ([]*parcel.Parcel, error)
}
