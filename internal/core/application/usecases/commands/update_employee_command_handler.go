package commands

import (
	"context"

	"postal/internal/core/domain/model/staff"
)

// UpdateEmployeeCommandHandler handles employee updates, including
// reassignment to another post office.
type UpdateEmployeeCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

// NewUpdateEmployeeCommandHandler creates a handler for employee updates.
func NewUpdateEmployeeCommandHandler(uowFactory EmployeeUoWFactory) UpdateEmployeeCommandHandler {
	return UpdateEmployeeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the employee, validates the target office, applies the new
// attributes, and persists the result. Returns an ObjectNotFoundError when
// the employee or the target office does not exist.
func (h *UpdateEmployeeCommandHandler) Handle(ctx context.Context, cmd UpdateEmployeeCommand) (*staff.Employee, error) {
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

	employeeRepo := uow.EmployeeRepository()
	aggregate, err := employeeRepo.Get(ctx, cmd.EmployeeID())
	if err != nil {
		return nil, err
	}

	if _, err = uow.OfficeRepository().Get(ctx, cmd.OfficeID()); err != nil {
		return nil, err
	}

	if err = aggregate.Update(cmd.FirstName(), cmd.LastName(), cmd.Role()); err != nil {
		return nil, err
	}
	if err = aggregate.MoveTo(cmd.OfficeID()); err != nil {
		return nil, err
	}

	if err = employeeRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
