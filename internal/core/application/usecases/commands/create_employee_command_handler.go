package commands

import (
	"context"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/staff"
)

// CreateEmployeeCommandHandler handles employee registration.
// The assigned office must exist before the employee is stored.
type CreateEmployeeCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

// NewCreateEmployeeCommandHandler creates a handler for employee
// registration.
func NewCreateEmployeeCommandHandler(uowFactory EmployeeUoWFactory) CreateEmployeeCommandHandler {
	return CreateEmployeeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the employee registration command and returns the created
// employee. Returns an ObjectNotFoundError when the assigned office does not
// exist.
func (h *CreateEmployeeCommandHandler) Handle(ctx context.Context, cmd CreateEmployeeCommand) (*staff.Employee, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.OfficeRepository().Get(ctx, cmd.OfficeID()); err != nil {
		return nil, err
	}

	newEmployee, err := staff.NewEmployee(kernel.NewUUID(), cmd.FirstName(), cmd.LastName(), cmd.Role(), cmd.OfficeID())
	if err != nil {
		return nil, err
	}

	if err = uow.EmployeeRepository().Add(ctx, newEmployee); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newEmployee, nil
}
