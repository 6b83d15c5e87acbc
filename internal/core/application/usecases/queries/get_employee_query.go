package queries

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/guard"
)

var ErrGetEmployeeQueryIsNotConstructed = errors.New(
	"GetEmployeeQuery must be created via NewGetEmployeeQuery constructor",
)

// GetEmployeeQuery retrieves a single employee by identifier.
type GetEmployeeQuery struct { //nolint:recvcheck //using for validation
	employeeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetEmployeeQuery creates a query to look up an employee.
func NewGetEmployeeQuery(employeeID kernel.UUID) (GetEmployeeQuery, error) {
	employeeQuery := GetEmployeeQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := employeeQuery.setEmployeeID(employeeID); err != nil {
		return GetEmployeeQuery{}, err
	}

	return employeeQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetEmployeeQuery) Validate() error {
	return q.guard.Validate(ErrGetEmployeeQueryIsNotConstructed)
}

// EmployeeID returns the identifier to look up.
func (q GetEmployeeQuery) EmployeeID() kernel.UUID {
	return q.employeeID
}

func (q *GetEmployeeQuery) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	q.employeeID = employeeID
	return nil
}
