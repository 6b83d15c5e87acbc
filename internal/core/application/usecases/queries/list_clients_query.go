package queries

import (
	"errors"

	"postal/internal/core/ports"
	"postal/internal/pkg/guard"
)

var ErrListClientsQueryIsNotConstructed = errors.New(
	"ListClientsQuery must be created via NewListClientsQuery constructor",
)

// ListClientsQuery retrieves clients, optionally narrowed to one page.
type ListClientsQuery struct {
	page *ports.Page

	guard guard.ConstructorGuard
}

// NewListClientsQuery creates a query for client listing.
// A nil page requests the full result set.
func NewListClientsQuery(page *ports.Page) ListClientsQuery {
	return ListClientsQuery{
		page:  page,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListClientsQuery) Validate() error {
	return q.guard.Validate(ErrListClientsQueryIsNotConstructed)
}

// Page returns the requested page, or nil for the full result set.
func (q ListClientsQuery) Page() *ports.Page {
	return q.page
}
