package commands

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/guard"
)

var ErrDeleteEmployeeCommandIsNotConstructed = errors.New(
	"DeleteEmployeeCommand must be created via NewDeleteEmployeeCommand constructor",
)

// DeleteEmployeeCommand represents a request to remove an employee.
type DeleteEmployeeCommand struct { //nolint:recvcheck //using for validation
	employeeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteEmployeeCommand creates a command to remove an employee.
func NewDeleteEmployeeCommand(employeeID kernel.UUID) (DeleteEmployeeCommand, error) {
	employeeCommand := DeleteEmployeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := employeeCommand.setEmployeeID(employeeID); err != nil {
		return DeleteEmployeeCommand{}, err
	}

	return employeeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrDeleteEmployeeCommandIsNotConstructed)
}

// EmployeeID returns the identifier of the employee to remove.
func (c DeleteEmployeeCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

func (c *DeleteEmployeeCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	c.employeeID = employeeID
	return nil
}
