package commands_test

import (
	"testing"

	"postal/internal/core/application/usecases/commands"
	"postal/internal/core/domain/model/audit"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/parcel"
	"postal/internal/core/domain/model/staff"
	"postal/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStoredParcel(t *testing.T, token string, status parcel.Status) *parcel.Parcel {
	t.Helper()

	p, err := parcel.RestoreParcel(
		kernel.NewUUID(),
		token,
		kernel.NewUUID(),
		kernel.NewUUID(),
		10,
		402,
		status,
		parcel.TierDefault,
		parcel.CategoryBooks,
		kernel.NewUUID(),
		kernel.NewUUID(),
	)
	require.NoError(t, err)

	return p
}

func TestSendParcelCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewSendParcelCommand("token-1")
	require.NoError(t, err)

	aggregate := newStoredParcel(t, "token-1", parcel.Created)
	clerk := newTestClerk(t)

	parcelRepo := new(MockParcelRepository)
	parcelRepo.On("GetByToken", ctx, "token-1").Return(aggregate, nil).Once()
	parcelRepo.On("Update", ctx, aggregate).Return(nil).Once()

	employeeRepo := new(MockEmployeeRepository)
	employeeRepo.On("FindFirstByRole", ctx, staff.Clerk).Return(clerk, nil).Once()

	auditRepo := new(MockAuditRepository)
	auditRepo.On("Add", ctx, mock.MatchedBy(func(entry *audit.Entry) bool {
		return entry.Action() == audit.Sent &&
			entry.Parcel().IsEqual(aggregate.ID()) &&
			entry.Office().IsEqual(aggregate.Origin())
	})).Return(nil).Once()

	uow := new(MockParcelUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("EmployeeRepository").Return(employeeRepo)
	uow.On("AuditRepository").Return(auditRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)

	uowFactory := new(MockParcelUoWFactory)
	uowFactory.On("Create").Return(uow).Once()

	handler := commands.NewSendParcelCommandHandler(uowFactory)

	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.InTransit, updated.Status())

	uow.AssertExpectations(t)
	parcelRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
}

func TestSendParcelCommandHandler_Handle_RedispatchKeepsStatus(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewSendParcelCommand("token-1")
	require.NoError(t, err)

	aggregate := newStoredParcel(t, "token-1", parcel.InTransit)

	parcelRepo := new(MockParcelRepository)
	parcelRepo.On("GetByToken", ctx, "token-1").Return(aggregate, nil).Once()
	parcelRepo.On("Update", ctx, aggregate).Return(nil).Once()

	employeeRepo := new(MockEmployeeRepository)
	employeeRepo.On("FindFirstByRole", ctx, staff.Clerk).Return(newTestClerk(t), nil).Once()

	auditRepo := new(MockAuditRepository)
	auditRepo.On("Add", ctx, mock.MatchedBy(func(entry *audit.Entry) bool {
		return entry.Action() == audit.Sent
	})).Return(nil).Once()

	uow := new(MockParcelUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("EmployeeRepository").Return(employeeRepo)
	uow.On("AuditRepository").Return(auditRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)

	uowFactory := new(MockParcelUoWFactory)
	uowFactory.On("Create").Return(uow).Once()

	handler := commands.NewSendParcelCommandHandler(uowFactory)

	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.InTransit, updated.Status())
	auditRepo.AssertExpectations(t)
}

func TestSendParcelCommandHandler_Handle_DeliveredParcel(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewSendParcelCommand("token-1")
	require.NoError(t, err)

	aggregate := newStoredParcel(t, "token-1", parcel.Delivered)

	parcelRepo := new(MockParcelRepository)
	parcelRepo.On("GetByToken", ctx, "token-1").Return(aggregate, nil).Once()

	uow := new(MockParcelUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	uowFactory := new(MockParcelUoWFactory)
	uowFactory.On("Create").Return(uow).Once()

	handler := commands.NewSendParcelCommandHandler(uowFactory)

	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	parcelRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestSendParcelCommandHandler_Handle_UnknownToken(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewSendParcelCommand("missing")
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	parcelRepo.On("GetByToken", ctx, "missing").
		Return(nil, errs.NewObjectNotFoundError("parcel", "missing")).Once()

	uow := new(MockParcelUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	uowFactory := new(MockParcelUoWFactory)
	uowFactory.On("Create").Return(uow).Once()

	handler := commands.NewSendParcelCommandHandler(uowFactory)

	_, err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
