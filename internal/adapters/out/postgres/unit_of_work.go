// Package postgres provides a GORM-based implementation of the Unit of Work
// pattern. A unit of work maintains a list of aggregates affected by a
// business transaction and coordinates writing out changes atomically: a
// parcel write and its audit entry become visible to readers only after the
// shared commit succeeds.
package postgres

import (
	"context"

	"postal/internal/adapters/out/postgres/auditrepo"
	"postal/internal/adapters/out/postgres/clientrepo"
	"postal/internal/adapters/out/postgres/employeerepo"
	"postal/internal/adapters/out/postgres/officerepo"
	"postal/internal/adapters/out/postgres/parcelrepo"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database
// connections. Each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for transaction
// management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations. Repository accessors return instances
// bound to the current transaction when one is active, so a handler's
// repository calls all commit or roll back together.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls on the same instance are safe and will not create nested
// transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns an error if no active transaction exists or the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns an error if no active transaction exists or the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// ParcelRepository returns a ParcelRepository bound to the current
// transaction.
func (uow *GormUnitOfWork) ParcelRepository() ports.ParcelRepository {
	return parcelrepo.NewGormParcelRepository(uow.conn(), uow)
}

// OfficeRepository returns an OfficeRepository bound to the current
// transaction.
func (uow *GormUnitOfWork) OfficeRepository() ports.OfficeRepository {
	return officerepo.NewGormOfficeRepository(uow.conn(), uow)
}

// EmployeeRepository returns an EmployeeRepository bound to the current
// transaction.
func (uow *GormUnitOfWork) EmployeeRepository() ports.EmployeeRepository {
	return employeerepo.NewGormEmployeeRepository(uow.conn(), uow)
}

// ClientRepository returns a ClientRepository bound to the current
// transaction.
func (uow *GormUnitOfWork) ClientRepository() ports.ClientRepository {
	return clientrepo.NewGormClientRepository(uow.conn(), uow)
}

// AuditRepository returns an AuditRepository bound to the current
// transaction.
func (uow *GormUnitOfWork) AuditRepository() ports.AuditRepository {
	return auditrepo.NewGormAuditRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by repository implementations on add and update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
