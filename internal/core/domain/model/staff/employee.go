// Package staff contains the employee entity and its role enumeration.
// Employees act on parcels; every audit entry references the employee who
// performed the handling event.
package staff

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/errs"
)

var (
	// ErrEmployeeIsNotConstructed is returned when an Employee instance was
	// not created through the NewEmployee factory method.
	ErrEmployeeIsNotConstructed = errors.New("Employee must be created via NewEmployee constructor")
)

// Employee represents a member of staff assigned to a post office.
type Employee struct {
	id        kernel.UUID
	firstName string
	lastName  string
	role      Role
	officeID  kernel.UUID

	isConstructed bool
}

// NewEmployee creates a new Employee with validation.
func NewEmployee(id kernel.UUID, firstName, lastName string, role Role, officeID kernel.UUID) (*Employee, error) {
	e := &Employee{
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setName(firstName, lastName),
		e.setRole(role),
		e.setOffice(officeID),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// Validate ensures the Employee instance was properly constructed.
func (e *Employee) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEmployeeIsNotConstructed
	}
	return nil
}

// ID returns the employee's unique identifier.
func (e *Employee) ID() kernel.UUID {
	return e.id
}

// FirstName returns the employee's first name.
func (e *Employee) FirstName() string {
	return e.firstName
}

// LastName returns the employee's last name.
func (e *Employee) LastName() string {
	return e.lastName
}

// Role returns the employee's role.
func (e *Employee) Role() Role {
	return e.role
}

// Office returns the identifier of the office the employee is assigned to.
func (e *Employee) Office() kernel.UUID {
	return e.officeID
}

// Update replaces the employee's name and role, applying the same validation
// as construction.
func (e *Employee) Update(firstName, lastName string, role Role) error {
	return errors.Join(
		e.setName(firstName, lastName),
		e.setRole(role),
	)
}

// MoveTo reassigns the employee to another post office.
func (e *Employee) MoveTo(officeID kernel.UUID) error {
	return e.setOffice(officeID)
}

func (e *Employee) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Employee) setName(firstName, lastName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	if lastName == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	e.firstName = firstName
	e.lastName = lastName
	return nil
}

func (e *Employee) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	e.role = role
	return nil
}

func (e *Employee) setOffice(officeID kernel.UUID) error {
	if err := officeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("postOfficeId", err)
	}
	e.officeID = officeID
	return nil
}
