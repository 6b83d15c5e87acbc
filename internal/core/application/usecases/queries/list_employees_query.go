package queries

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/ports"
	"postal/internal/pkg/guard"
)

var ErrListEmployeesQueryIsNotConstructed = errors.New(
	"ListEmployeesQuery must be created via NewListEmployeesQuery constructor",
)

// ListEmployeesQuery retrieves employees, optionally restricted to one post
// office and narrowed to one page.
type ListEmployeesQuery struct { //nolint:recvcheck //using for validation
	officeID *kernel.UUID
	page     *ports.Page

	guard guard.ConstructorGuard
}

// NewListEmployeesQuery creates a query for employee listing.
// A nil officeID lists employees across all offices; a nil page requests
// the full result set.
func NewListEmployeesQuery(officeID *kernel.UUID, page *ports.Page) (ListEmployeesQuery, error) {
	employeesQuery := ListEmployeesQuery{
		page:  page,
		guard: guard.NewConstructorGuard(),
	}

	if err := employeesQuery.setOfficeID(officeID); err != nil {
		return ListEmployeesQuery{}, err
	}

	return employeesQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q ListEmployeesQuery) Validate() error {
	return q.guard.Validate(ErrListEmployeesQueryIsNotConstructed)
}

// OfficeID returns the office restriction, or nil for all offices.
func (q ListEmployeesQuery) OfficeID() *kernel.UUID {
	return q.officeID
}

// Page returns the requested page, or nil for the full result set.
func (q ListEmployeesQuery) Page() *ports.Page {
	return q.page
}

func (q *ListEmployeesQuery) setOfficeID(officeID *kernel.UUID) error {
	if officeID != nil {
		if err := officeID.Validate(); err != nil {
			return err
		}
	}

	q.officeID = officeID
	return nil
}
