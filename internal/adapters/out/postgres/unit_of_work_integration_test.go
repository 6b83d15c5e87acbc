package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "postal/internal/adapters/out/postgres"
	"postal/internal/adapters/out/postgres/auditrepo"
	"postal/internal/adapters/out/postgres/clientrepo"
	"postal/internal/adapters/out/postgres/employeerepo"
	"postal/internal/adapters/out/postgres/officerepo"
	"postal/internal/adapters/out/postgres/parcelrepo"
	"postal/internal/core/domain/model/audit"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/parcel"
	"postal/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&officerepo.OfficeDTO{},
		&employeerepo.EmployeeDTO{},
		&clientrepo.ClientDTO{},
		&auditrepo.EntryDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE parcels, post_offices, employees, clients, parcel_audit_entries").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies the factory creates isolated unit
// of work instances with access to every repository.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.ParcelRepository())
	suite.NotNil(uow1.OfficeRepository())
	suite.NotNil(uow1.EmployeeRepository())
	suite.NotNil(uow1.ClientRepository())
	suite.NotNil(uow1.AuditRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit, and rollback
// behavior, including repeated begin calls.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitWithoutBegin_ReturnsError() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

// TestUnitOfWork_CommitMakesWritesVisible verifies that a parcel write and
// its audit entry committed together are both visible afterwards.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitMakesWritesVisible() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testParcel := suite.createTestParcel("token-1")
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, testParcel))

	entry := suite.createTestEntry(testParcel)
	suite.Require().NoError(uow.AuditRepository().Add(ctx, entry))

	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()

	retrieved, err := reader.ParcelRepository().GetByToken(ctx, "token-1")
	suite.Require().NoError(err)
	suite.Equal(testParcel.ID(), retrieved.ID())

	history, err := reader.AuditRepository().GetByParcel(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Len(history, 1)
	suite.Equal(audit.Received, history[0].Action())
}

// TestUnitOfWork_RollbackHidesAllWrites verifies atomicity: after a
// rollback neither the parcel nor its audit entry is visible.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackHidesAllWrites() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testParcel := suite.createTestParcel("token-1")
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, testParcel))
	suite.Require().NoError(uow.AuditRepository().Add(ctx, suite.createTestEntry(testParcel)))

	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.factory.Create()

	_, err := reader.ParcelRepository().GetByToken(ctx, "token-1")
	suite.Require().Error(err)

	history, err := reader.AuditRepository().GetByParcel(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Empty(history)
}

// TestUnitOfWork_WritesInvisibleBeforeCommit verifies isolation: an open
// transaction's writes are hidden from readers on the main connection.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WritesInvisibleBeforeCommit() {
	ctx := context.Background()

	writer := suite.factory.Create()
	suite.Require().NoError(writer.Begin(ctx))

	testParcel := suite.createTestParcel("token-1")
	suite.Require().NoError(writer.ParcelRepository().Add(ctx, testParcel))

	reader := suite.factory.Create()
	_, err := reader.ParcelRepository().GetByToken(ctx, "token-1")
	suite.Require().Error(err, "Uncommitted write should not be visible")

	suite.Require().NoError(writer.Commit(ctx))

	retrieved, err := reader.ParcelRepository().GetByToken(ctx, "token-1")
	suite.Require().NoError(err)
	suite.Equal(testParcel.ID(), retrieved.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestParcel(token string) *parcel.Parcel {
	testParcel, err := parcel.NewParcel(
		kernel.NewUUID(),
		token,
		kernel.NewUUID(),
		kernel.NewUUID(),
		10,
		402,
		parcel.TierDefault,
		parcel.CategoryBooks,
		kernel.NewUUID(),
		kernel.NewUUID(),
	)
	suite.Require().NoError(err)
	return testParcel
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestEntry(p *parcel.Parcel) *audit.Entry {
	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		time.Now(),
		audit.Received,
		p.ID(),
		kernel.NewUUID(),
		p.Origin(),
	)
	suite.Require().NoError(err)
	return entry
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
