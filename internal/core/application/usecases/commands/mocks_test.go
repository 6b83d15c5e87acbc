package commands_test

import (
	"context"

	"postal/internal/core/application/usecases/commands"
	"postal/internal/core/domain/model/audit"
	"postal/internal/core/domain/model/client"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/office"
	"postal/internal/core/domain/model/parcel"
	"postal/internal/core/domain/model/staff"
	"postal/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockParcelRepository struct {
	mock.Mock
}

func (m *MockParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockParcelRepository) GetByID(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetByToken(ctx context.Context, trackingToken string) (*parcel.Parcel, error) {
	args := m.Called(ctx, trackingToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) FindMatching(ctx context.Context, filter parcel.Filter, page *ports.Page) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

type MockOfficeRepository struct {
	mock.Mock
}

func (m *MockOfficeRepository) Add(ctx context.Context, aggregate *office.Office) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOfficeRepository) Update(ctx context.Context, aggregate *office.Office) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOfficeRepository) Get(ctx context.Context, id kernel.UUID) (*office.Office, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*office.Office), args.Error(1)
}

func (m *MockOfficeRepository) GetAll(ctx context.Context) ([]*office.Office, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*office.Office), args.Error(1)
}

func (m *MockOfficeRepository) FindMatching(ctx context.Context, filter office.Filter, page *ports.Page) ([]*office.Office, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*office.Office), args.Error(1)
}

func (m *MockOfficeRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOfficeRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) Add(ctx context.Context, aggregate *staff.Employee) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, aggregate *staff.Employee) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Get(ctx context.Context, id kernel.UUID) (*staff.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) GetAll(ctx context.Context, page *ports.Page) ([]*staff.Employee, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*staff.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) GetByOffice(ctx context.Context, officeID kernel.UUID, page *ports.Page) ([]*staff.Employee, error) {
	args := m.Called(ctx, officeID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*staff.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindFirstByRole(ctx context.Context, role staff.Role) (*staff.Employee, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Add(ctx context.Context, aggregate *client.Client) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockClientRepository) Update(ctx context.Context, aggregate *client.Client) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockClientRepository) Get(ctx context.Context, id kernel.UUID) (*client.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *MockClientRepository) GetAll(ctx context.Context, page *ports.Page) ([]*client.Client, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*client.Client), args.Error(1)
}

func (m *MockClientRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Add(ctx context.Context, entry *audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) GetByParcel(ctx context.Context, parcelID kernel.UUID) ([]*audit.Entry, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*audit.Entry), args.Error(1)
}

// MockParcelUoW satisfies every unit-of-work interface in the package, so a
// single mock serves parcel, office, employee, and client handler tests.
type MockParcelUoW struct {
	mock.Mock
}

func (m *MockParcelUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockParcelUoW) OfficeRepository() ports.OfficeRepository {
	args := m.Called()
	return args.Get(0).(ports.OfficeRepository)
}

func (m *MockParcelUoW) EmployeeRepository() ports.EmployeeRepository {
	args := m.Called()
	return args.Get(0).(ports.EmployeeRepository)
}

func (m *MockParcelUoW) ClientRepository() ports.ClientRepository {
	args := m.Called()
	return args.Get(0).(ports.ClientRepository)
}

func (m *MockParcelUoW) AuditRepository() ports.AuditRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditRepository)
}

type MockParcelUoWFactory struct {
	mock.Mock
}

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockOfficeUoWFactory struct {
	mock.Mock
}

func (m *MockOfficeUoWFactory) Create() commands.OfficeUoW {
	args := m.Called()
	return args.Get(0).(commands.OfficeUoW)
}

type MockEmployeeUoWFactory struct {
	mock.Mock
}

func (m *MockEmployeeUoWFactory) Create() commands.EmployeeUoW {
	args := m.Called()
	return args.Get(0).(commands.EmployeeUoW)
}

type MockClientUoWFactory struct {
	mock.Mock
}

func (m *MockClientUoWFactory) Create() commands.ClientUoW {
	args := m.Called()
	return args.Get(0).(commands.ClientUoW)
}

type MockTokenGenerator struct {
	mock.Mock
}

func (m *MockTokenGenerator) NewToken() string {
	args := m.Called()
	return args.String(0)
}
