package queries

import (
	"errors"

	"postal/internal/core/domain/model/parcel"
	"postal/internal/pkg/guard"
)

var ErrParcelStatisticsQueryIsNotConstructed = errors.New(
	"ParcelStatisticsQuery must be created via NewParcelStatisticsQuery constructor",
)

// ParcelStatisticsQuery computes aggregate statistics over the parcels
// matching a filter. An empty filter covers the whole population.
type ParcelStatisticsQuery struct { //nolint:recvcheck //using for validation
	filter parcel.Filter

	guard guard.ConstructorGuard
}

// NewParcelStatisticsQuery creates a statistics query.
// Every enum value carried by the filter must be valid.
func NewParcelStatisticsQuery(filter parcel.Filter) (ParcelStatisticsQuery, error) {
	statisticsQuery := ParcelStatisticsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := statisticsQuery.setFilter(filter); err != nil {
		return ParcelStatisticsQuery{}, err
	}

	return statisticsQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q ParcelStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrParcelStatisticsQueryIsNotConstructed)
}

// Filter returns the parcel filter scoping the statistics.
func (q ParcelStatisticsQuery) Filter() parcel.Filter {
	return q.filter
}

func (q *ParcelStatisticsQuery) setFilter(filter parcel.Filter) error {
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
