package commands

import (
	"context"

	"postal/internal/pkg/errs"
)

// DeleteEmployeeCommandHandler handles employee removal.
type DeleteEmployeeCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

// NewDeleteEmployeeCommandHandler creates a handler for employee removal.
func NewDeleteEmployeeCommandHandler(uowFactory EmployeeUoWFactory) DeleteEmployeeCommandHandler {
	return DeleteEmployeeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the employee. Returns an ObjectNotFoundError when no
// employee with the given identifier exists.
func (h *DeleteEmployeeCommandHandler) Handle(ctx context.Context, cmd DeleteEmployeeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	employeeRepo := uow.EmployeeRepository()
	exists, err := employeeRepo.Exists(ctx, cmd.EmployeeID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("employeeId", cmd.EmployeeID())
	}

	if err = employeeRepo.Delete(ctx, cmd.EmployeeID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
