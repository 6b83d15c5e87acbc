package queries

import (
	"context"

	"postal/internal/core/domain/model/staff"
	"postal/internal/core/ports"
)

// GetEmployeeQueryHandler retrieves an employee by identifier.
type GetEmployeeQueryHandler struct {
	employeeRepo ports.EmployeeRepository
}

// NewGetEmployeeQueryHandler creates a handler for employee lookups.
func NewGetEmployeeQueryHandler(employeeRepo ports.EmployeeRepository) GetEmployeeQueryHandler {
	return GetEmployeeQueryHandler{employeeRepo: employeeRepo}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when the
// employee does not exist.
func (h GetEmployeeQueryHandler) Handle(ctx context.Context, query GetEmployeeQuery) (*staff.Employee, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.employeeRepo.Get(ctx, query.EmployeeID())
}
