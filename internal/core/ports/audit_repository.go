package ports

import (
	"context"

	"postal/internal/core/domain/model/audit"
	"postal/internal/core/domain/model/kernel"
)

// AuditRepository defines the persistence contract for the parcel audit
// trail. The log is append-only: no update or delete operation is exposed.
type AuditRepository interface {
	// Add appends one immutable audit entry.
	Add(ctx context.Context, entry *audit.Entry) error

	// GetByParcel retrieves all entries recorded for the given parcel,
	// oldest first.
	GetByParcel(ctx context.Context, parcelID kernel.UUID) ([]*audit.Entry, error)
}
