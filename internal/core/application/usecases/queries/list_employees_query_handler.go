package queries

import (
	"context"

	"postal/internal/core/domain/model/staff"
	"postal/internal/core/ports"
)

// ListEmployeesQueryHandler retrieves employees, system-wide or per office.
type ListEmployeesQueryHandler struct {
	employeeRepo ports.EmployeeRepository
}

// NewListEmployeesQueryHandler creates a handler for employee listing.
func NewListEmployeesQueryHandler(employeeRepo ports.EmployeeRepository) ListEmployeesQueryHandler {
	return ListEmployeesQueryHandler{employeeRepo: employeeRepo}
}

// Handle executes the listing in stable identifier order.
func (h ListEmployeesQueryHandler) Handle(ctx context.Context, query ListEmployeesQuery) ([]*staff.Employee, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if officeID := query.OfficeID(); officeID != nil {
		return h.employeeRepo.GetByOffice(ctx, *officeID, query.Page())
	}

	return h.employeeRepo.GetAll(ctx, query.Page())
}
