package queries

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/guard"
)

var ErrGetClientQueryIsNotConstructed = errors.New(
	"GetClientQuery must be created via NewGetClientQuery constructor",
)

// GetClientQuery retrieves a single client by identifier.
type GetClientQuery struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetClientQuery creates a query to look up a client.
func NewGetClientQuery(clientID kernel.UUID) (GetClientQuery, error) {
	clientQuery := GetClientQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := clientQuery.setClientID(clientID); err != nil {
		return GetClientQuery{}, err
	}

	return clientQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClientQuery) Validate() error {
	return q.guard.Validate(ErrGetClientQueryIsNotConstructed)
}

// ClientID returns the identifier to look up.
func (q GetClientQuery) ClientID() kernel.UUID {
	return q.clientID
}

func (q *GetClientQuery) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	q.clientID = clientID
	return nil
}
