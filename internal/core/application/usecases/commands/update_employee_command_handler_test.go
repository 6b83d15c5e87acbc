package commands_test

import (
	"testing"

	"postal/internal/core/application/usecases/commands"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/staff"
	"postal/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateEmployeeCommand(t *testing.T) {
	officeID := kernel.NewUUID()

	cmd, err := commands.NewCreateEmployeeCommand("Ada", "Lovelace", staff.Clerk, officeID)

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Equal(t, "Ada", cmd.FirstName())
	assert.Equal(t, "Lovelace", cmd.LastName())
	assert.Equal(t, staff.Clerk, cmd.Role())
	assert.Equal(t, officeID, cmd.OfficeID())
}

func TestNewCreateEmployeeCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateEmployeeCommand("", "Lovelace", staff.Clerk, kernel.NewUUID())
	assert.ErrorIs(t, err, commands.ErrFirstNameIsRequired)

	_, err = commands.NewCreateEmployeeCommand("Ada", "", staff.Clerk, kernel.NewUUID())
	assert.ErrorIs(t, err, commands.ErrLastNameIsRequired)

	_, err = commands.NewCreateEmployeeCommand("Ada", "Lovelace", staff.RoleUnknown, kernel.NewUUID())
	require.Error(t, err)
}

func TestUpdateEmployeeCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	employee := newTestClerk(t)
	newOfficeID := kernel.NewUUID()

	cmd, err := commands.NewUpdateEmployeeCommand(employee.ID(), "Grace", "Hopper", staff.Manager, newOfficeID)
	require.NoError(t, err)

	employeeRepo := new(MockEmployeeRepository)
	employeeRepo.On("Get", ctx, employee.ID()).Return(employee, nil).Once()
	employeeRepo.On("Update", ctx, employee).Return(nil).Once()

	officeRepo := new(MockOfficeRepository)
	officeRepo.On("Get", ctx, newOfficeID).Return(newTestOffice(t, newOfficeID), nil).Once()

	uow := new(MockParcelUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("EmployeeRepository").Return(employeeRepo)
	uow.On("OfficeRepository").Return(officeRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)

	uowFactory := new(MockEmployeeUoWFactory)
	uowFactory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateEmployeeCommandHandler(uowFactory)

	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Grace", updated.FirstName())
	assert.Equal(t, staff.Manager, updated.Role())
	assert.Equal(t, newOfficeID, updated.Office())

	uow.AssertExpectations(t)
	employeeRepo.AssertExpectations(t)
}

func TestUpdateEmployeeCommandHandler_Handle_UnknownOffice(t *testing.T) {
	ctx := t.Context()

	employee := newTestClerk(t)
	newOfficeID := kernel.NewUUID()

	cmd, err := commands.NewUpdateEmployeeCommand(employee.ID(), "Grace", "Hopper", staff.Manager, newOfficeID)
	require.NoError(t, err)

	employeeRepo := new(MockEmployeeRepository)
	employeeRepo.On("Get", ctx, employee.ID()).Return(employee, nil).Once()

	officeRepo := new(MockOfficeRepository)
	officeRepo.On("Get", ctx, newOfficeID).
		Return(nil, errs.NewObjectNotFoundError("postOfficeId", newOfficeID)).Once()

	uow := new(MockParcelUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("EmployeeRepository").Return(employeeRepo)
	uow.On("OfficeRepository").Return(officeRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	uowFactory := new(MockEmployeeUoWFactory)
	uowFactory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateEmployeeCommandHandler(uowFactory)

	_, err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	employeeRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
