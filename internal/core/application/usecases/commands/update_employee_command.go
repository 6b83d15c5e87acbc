package commands

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/staff"
	"postal/internal/pkg/guard"
)

var ErrUpdateEmployeeCommandIsNotConstructed = errors.New(
	"UpdateEmployeeCommand must be created via NewUpdateEmployeeCommand constructor",
)

// UpdateEmployeeCommand represents a request to replace an employee's name,
// role, and office assignment.
type UpdateEmployeeCommand struct { //nolint:recvcheck //using for validation
	employeeID kernel.UUID
	firstName  string
	lastName   string
	role       staff.Role
	officeID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateEmployeeCommand creates a command to update an employee.
func NewUpdateEmployeeCommand(
	employeeID kernel.UUID,
	firstName, lastName string,
	role staff.Role,
	officeID kernel.UUID,
) (UpdateEmployeeCommand, error) {
	employeeCommand := UpdateEmployeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		employeeCommand.setEmployeeID(employeeID),
		employeeCommand.setFirstName(firstName),
		employeeCommand.setLastName(lastName),
		employeeCommand.setRole(role),
		employeeCommand.setOfficeID(officeID),
	); err != nil {
		return UpdateEmployeeCommand{}, err
	}

	return employeeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrUpdateEmployeeCommandIsNotConstructed)
}

// EmployeeID returns the identifier of the employee to update.
func (c UpdateEmployeeCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// FirstName returns the new first name.
func (c UpdateEmployeeCommand) FirstName() string {
	return c.firstName
}

// LastName returns the new last name.
func (c UpdateEmployeeCommand) LastName() string {
	return c.lastName
}

// Role returns the new role.
func (c UpdateEmployeeCommand) Role() staff.Role {
	return c.role
}

// OfficeID returns the new office assignment.
func (c UpdateEmployeeCommand) OfficeID() kernel.UUID {
	return c.officeID
}

func (c *UpdateEmployeeCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	c.employeeID = employeeID
	return nil
}

func (c *UpdateEmployeeCommand) setFirstName(firstName string) error {
	if firstName == "" {
		return ErrFirstNameIsRequired
	}

	c.firstName = firstName
	return nil
}

func (c *UpdateEmployeeCommand) setLastName(lastName string) error {
	if lastName == "" {
		return ErrLastNameIsRequired
	}

	c.lastName = lastName
	return nil
}

func (c *UpdateEmployeeCommand) setRole(role staff.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *UpdateEmployeeCommand) setOfficeID(officeID kernel.UUID) error {
	if err := officeID.Validate(); err != nil {
		return err
	}

	c.officeID = officeID
	return nil
}
