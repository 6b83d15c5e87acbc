package ports

import (
	"context"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/staff"
)

// EmployeeRepository defines the persistence contract for employees.
type EmployeeRepository interface {
	// Add persists a new employee.
	Add(ctx context.Context, aggregate *staff.Employee) error

	// Update persists changes to an existing employee.
	Update(ctx context.Context, aggregate *staff.Employee) error

	// Get retrieves an employee by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*staff.Employee, error)

	// GetAll retrieves employees in stable identifier order.
	// A nil page requests a full scan.
	GetAll(ctx context.Context, page *Page) ([]*staff.Employee, error)

	// GetByOffice retrieves employees assigned to the given office, in
	// stable identifier order. A nil page requests a full scan.
	GetByOffice(ctx context.Context, officeID kernel.UUID, page *Page) ([]*staff.Employee, error)

	// FindFirstByRole retrieves the first stored employee holding the given
	// role, system-wide. Used to resolve the acting employee for audit
	// entries.
	FindFirstByRole(ctx context.Context, role staff.Role) (*staff.Employee, error)

	// Exists reports whether an employee with the given identifier is stored.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// Delete removes an employee by its unique identifier.
	Delete(ctx context.Context, id kernel.UUID) error
}
