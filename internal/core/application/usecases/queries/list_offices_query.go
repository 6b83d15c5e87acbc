package queries

import (
	"errors"

	"postal/internal/core/domain/model/office"
	"postal/internal/core/ports"
	"postal/internal/pkg/guard"
)

var ErrListOfficesQueryIsNotConstructed = errors.New(
	"ListOfficesQuery must be created via NewListOfficesQuery constructor",
)

// ListOfficesQuery retrieves post offices matching a filter, optionally
// narrowed to one page. The office filter matches by case-insensitive
// substring; an empty filter matches every office.
type ListOfficesQuery struct {
	filter office.Filter
	page   *ports.Page

	guard guard.ConstructorGuard
}

// NewListOfficesQuery creates a query for filtered office listing.
func NewListOfficesQuery(filter office.Filter, page *ports.Page) ListOfficesQuery {
	return ListOfficesQuery{
		filter: filter,
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListOfficesQuery) Validate() error {
	return q.guard.Validate(ErrListOfficesQueryIsNotConstructed)
}

// Filter returns the office filter.
func (q ListOfficesQuery) Filter() office.Filter {
	return q.filter
}

// Page returns the requested page, or nil for the full result set.
func (q ListOfficesQuery) Page() *ports.Page {
	return q.page
}
