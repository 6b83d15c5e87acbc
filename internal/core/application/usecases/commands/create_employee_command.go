package commands

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/staff"
	"postal/internal/pkg/guard"
)

var (
	ErrCreateEmployeeCommandIsNotConstructed = errors.New(
		"CreateEmployeeCommand must be created via NewCreateEmployeeCommand constructor",
	)
	ErrFirstNameIsRequired = errors.New("first name is required")
	ErrLastNameIsRequired  = errors.New("last name is required")
)

// CreateEmployeeCommand represents a request to register a new employee at a
// post office.
type CreateEmployeeCommand struct { //nolint:recvcheck //using for validation
	firstName string
	lastName  string
	role      staff.Role
	officeID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateEmployeeCommand creates a command to register a new employee.
// Validates that both names are present, the role is valid, and the office
// identifier is valid.
func NewCreateEmployeeCommand(
	firstName, lastName string,
	role staff.Role,
	officeID kernel.UUID,
) (CreateEmployeeCommand, error) {
	employeeCommand := CreateEmployeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		employeeCommand.setFirstName(firstName),
		employeeCommand.setLastName(lastName),
		employeeCommand.setRole(role),
		employeeCommand.setOfficeID(officeID),
	); err != nil {
		return CreateEmployeeCommand{}, err
	}

	return employeeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrCreateEmployeeCommandIsNotConstructed)
}

// FirstName returns the employee's first name.
func (c CreateEmployeeCommand) FirstName() string {
	return c.firstName
}

// LastName returns the employee's last name.
func (c CreateEmployeeCommand) LastName() string {
	return c.lastName
}

// Role returns the employee's role.
func (c CreateEmployeeCommand) Role() staff.Role {
	return c.role
}

// OfficeID returns the identifier of the office the employee is assigned to.
func (c CreateEmployeeCommand) OfficeID() kernel.UUID {
	return c.officeID
}

func (c *CreateEmployeeCommand) setFirstName(firstName string) error {
	if firstName == "" {
		return ErrFirstNameIsRequired
	}

	c.firstName = firstName
	return nil
}

func (c *CreateEmployeeCommand) setLastName(lastName string) error {
	if lastName == "" {
		return ErrLastNameIsRequired
	}

	c.lastName = lastName
	return nil
}

func (c *CreateEmployeeCommand) setRole(role staff.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *CreateEmployeeCommand) setOfficeID(officeID kernel.UUID) error {
	if err := officeID.Validate(); err != nil {
		return err
	}

	c.officeID = officeID
	return nil
}
