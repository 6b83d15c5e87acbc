// Package queries contains read-only operations for retrieving system
// state. Implements the Query side of the CQRS architecture: queries never
// modify data and run outside any unit of work.
//
// Unlike command handlers, query handlers depend directly on repository
// ports. All parcel filtering flows through parcel.Filter so that the query
// path and the storage adapters share one predicate definition.
package queries

import (
	"errors"

	"postal/internal/pkg/guard"
)

var (
	ErrGetParcelByTokenQueryIsNotConstructed = errors.New(
		"GetParcelByTokenQuery must be created via NewGetParcelByTokenQuery constructor",
	)
	ErrTrackingTokenIsRequired = errors.New("tracking token is required")
)

// GetParcelByTokenQuery retrieves a single parcel by its tracking token.
type GetParcelByTokenQuery struct { //nolint:recvcheck //using for validation
	trackingToken string

	guard guard.ConstructorGuard
}

// NewGetParcelByTokenQuery creates a query to look up a parcel by tracking
// token. Validates that the token is not empty.
func NewGetParcelByTokenQuery(trackingToken string) (GetParcelByTokenQuery, error) {
	parcelQuery := GetParcelByTokenQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := parcelQuery.setTrackingToken(trackingToken); err != nil {
		return GetParcelByTokenQuery{}, err
	}

	return parcelQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelByTokenQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelByTokenQueryIsNotConstructed)
}

// TrackingToken returns the tracking token to look up.
func (q GetParcelByTokenQuery) TrackingToken() string {
	return q.trackingToken
}

func (q *GetParcelByTokenQuery) setTrackingToken(trackingToken string) error {
	if trackingToken == "" {
		return ErrTrackingTokenIsRequired
	}

	q.trackingToken = trackingToken
	return nil
}
