package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repository access bound to the
// transaction. Client code must explicitly manage the transaction lifecycle:
// a parcel write and its audit-entry write become visible to readers only
// after the shared Commit succeeds.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ParcelRepository returns a ParcelRepository bound to the current transaction.
	ParcelRepository() ParcelRepository

	// OfficeRepository returns an OfficeRepository bound to the current transaction.
	OfficeRepository() OfficeRepository

	// EmployeeRepository returns an EmployeeRepository bound to the current transaction.
	EmployeeRepository() EmployeeRepository

	// ClientRepository returns a ClientRepository bound to the current transaction.
	ClientRepository() ClientRepository

	// AuditRepository returns an AuditRepository bound to the current transaction.
	AuditRepository() AuditRepository
}
