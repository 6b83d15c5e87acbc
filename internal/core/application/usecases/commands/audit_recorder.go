package commands

import (
	"context"
	"time"

	"postal/internal/core/domain/model/audit"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/staff"
)

// auditRepos is the repository surface needed to record one audit entry.
// ParcelUoW satisfies it, so parcel handlers pass their unit of work
// directly and the entry joins the surrounding transaction.
type auditRepos interface {
	EmployeeRepoFactory
	AuditRepoFactory
}

// appendAuditEntry records one handling event for a parcel inside the
// caller's transaction. The acting employee is resolved as the first
// registered clerk, system-wide; the entry is stamped with the current
// time. Returns an ObjectNotFoundError when no clerk is registered.
func appendAuditEntry(
	ctx context.Context,
	repos auditRepos,
	action audit.Action,
	parcelID kernel.UUID,
	officeID kernel.UUID,
) error {
	clerk, err := repos.EmployeeRepository().FindFirstByRole(ctx, staff.Clerk)
	if err != nil {
		return err
	}

	entry, err := audit.NewEntry(kernel.NewUUID(), time.Now(), action, parcelID, clerk.ID(), officeID)
	if err != nil {
		return err
	}

	return repos.AuditRepository().Add(ctx, entry)
}
