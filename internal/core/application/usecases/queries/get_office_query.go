package queries

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/guard"
)

var ErrGetOfficeQueryIsNotConstructed = errors.New(
	"GetOfficeQuery must be created via NewGetOfficeQuery constructor",
)

// GetOfficeQuery retrieves a single post office by identifier.
type GetOfficeQuery struct { //nolint:recvcheck //using for validation
	officeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOfficeQuery creates a query to look up a post office.
func NewGetOfficeQuery(officeID kernel.UUID) (GetOfficeQuery, error) {
	officeQuery := GetOfficeQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := officeQuery.setOfficeID(officeID); err != nil {
		return GetOfficeQuery{}, err
	}

	return officeQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOfficeQuery) Validate() error {
	return q.guard.Validate(ErrGetOfficeQueryIsNotConstructed)
}

// OfficeID returns the identifier to look up.
func (q GetOfficeQuery) OfficeID() kernel.UUID {
	return q.officeID
}

func (q *GetOfficeQuery) setOfficeID(officeID kernel.UUID) error {
	if err := officeID.Validate(); err != nil {
		return err
	}

	q.officeID = officeID
	return nil
}
