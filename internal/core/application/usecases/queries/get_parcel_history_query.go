package queries

import (
	"errors"

	"postal/internal/pkg/guard"
)

var ErrGetParcelHistoryQueryIsNotConstructed = errors.New(
	"GetParcelHistoryQuery must be created via NewGetParcelHistoryQuery constructor",
)

// GetParcelHistoryQuery retrieves the audit trail of a parcel identified by
// its tracking token.
type GetParcelHistoryQuery struct { //nolint:recvcheck //using for validation
	trackingToken string

	guard guard.ConstructorGuard
}

// NewGetParcelHistoryQuery creates a query for a parcel's audit trail.
// Validates that the token is not empty.
func NewGetParcelHistoryQuery(trackingToken string) (GetParcelHistoryQuery, error) {
	historyQuery := GetParcelHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := historyQuery.setTrackingToken(trackingToken); err != nil {
		return GetParcelHistoryQuery{}, err
	}

	return historyQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelHistoryQueryIsNotConstructed)
}

// TrackingToken returns the tracking token of the parcel.
func (q GetParcelHistoryQuery) TrackingToken() string {
	return q.trackingToken
}

func (q *GetParcelHistoryQuery) setTrackingToken(trackingToken string) error {
	if trackingToken == "" {
		return ErrTrackingTokenIsRequired
	}

	q.trackingToken = trackingToken
	return nil
}
