// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"postal/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends only on the narrowest interface covering
// the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// OfficeRepoFactory provides access to the office repository within a transaction.
	OfficeRepoFactory interface {
		OfficeRepository() ports.OfficeRepository
	}

	// EmployeeRepoFactory provides access to the employee repository within a transaction.
	EmployeeRepoFactory interface {
		EmployeeRepository() ports.EmployeeRepository
	}

	// ClientRepoFactory provides access to the client repository within a transaction.
	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	// AuditRepoFactory provides access to the audit repository within a transaction.
	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	// ParcelUoW manages transactions for parcel lifecycle operations.
	// Parcel commands resolve office, client, and employee references and
	// append audit entries inside the same transaction as the parcel write,
	// so the full repository surface is exposed.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
		OfficeRepoFactory
		EmployeeRepoFactory
		ClientRepoFactory
		AuditRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// OfficeUoW manages transactions for office-only operations.
	OfficeUoW interface {
		TxManager
		OfficeRepoFactory
	}

	// OfficeUoWFactory creates new office unit of work instances.
	OfficeUoWFactory interface {
		Create() OfficeUoW
	}

	// EmployeeUoW manages transactions for employee operations.
	// Employee commands validate the assigned office, so both repositories
	// are exposed.
	EmployeeUoW interface {
		TxManager
		EmployeeRepoFactory
		OfficeRepoFactory
	}

	// EmployeeUoWFactory creates new employee unit of work instances.
	EmployeeUoWFactory interface {
		Create() EmployeeUoW
	}

	// ClientUoW manages transactions for client-only operations.
	ClientUoW interface {
		TxManager
		ClientRepoFactory
	}

	// ClientUoWFactory creates new client unit of work instances.
	ClientUoWFactory interface {
		Create() ClientUoW
	}
)
