package queries

import (
	"errors"

	"postal/internal/core/domain/model/parcel"
	"postal/internal/core/ports"
	"postal/internal/pkg/guard"
)

var ErrListParcelsQueryIsNotConstructed = errors.New(
	"ListParcelsQuery must be created via NewListParcelsQuery constructor",
)

// ListParcelsQuery retrieves all parcels matching a filter, optionally
// narrowed to one page. An empty filter matches every parcel.
type ListParcelsQuery struct { //nolint:recvcheck //using for validation
	filter parcel.Filter
	page   *ports.Page

	guard guard.ConstructorGuard
}

// NewListParcelsQuery creates a query for filtered parcel listing.
// Every enum value carried by the filter must be valid; a nil page requests
// the full result set.
func NewListParcelsQuery(filter parcel.Filter, page *ports.Page) (ListParcelsQuery, error) {
	parcelsQuery := ListParcelsQuery{
		page:  page,
		guard: guard.NewConstructorGuard(),
	}

	if err := parcelsQuery.setFilter(filter); err != nil {
		return ListParcelsQuery{}, err
	}

	return parcelsQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q ListParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListParcelsQueryIsNotConstructed)
}

// Filter returns the parcel filter.
func (q ListParcelsQuery) Filter() parcel.Filter {
	return q.filter
}

// Page returns the requested page, or nil for the full result set.
func (q ListParcelsQuery) Page() *ports.Page {
	return q.page
}

func (q *ListParcelsQuery) setFilter(filter parcel.Filter) error {
	var errList []error
	for _, status := range filter.Statuses {
		errList = append(errList, status.Validate())
	}
	for _, tier := range filter.Tiers {
		errList = append(errList, tier.Validate())
	}
	for _, category := range filter.Categories {
		errList = append(errList, category.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	q.filter = filter
	return nil
}
