package commands

import (
	"errors"

	"postal/internal/pkg/guard"
)

var (
	ErrSendParcelCommandIsNotConstructed = errors.New(
		"SendParcelCommand must be created via NewSendParcelCommand constructor",
	)
	ErrTrackingTokenIsRequired = errors.New("tracking token is required")
)

// SendParcelCommand represents a request to dispatch a parcel identified by
// its tracking token.
type SendParcelCommand struct { //nolint:recvcheck //using for validation
	trackingToken string

	guard guard.ConstructorGuard
}

// NewSendParcelCommand creates a command to dispatch a parcel.
// Validates that the tracking token is not empty.
func NewSendParcelCommand(trackingToken string) (SendParcelCommand, error) {
	sendCommand := SendParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := sendCommand.setTrackingToken(trackingToken); err != nil {
		return SendParcelCommand{}, err
	}

	return sendCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSendParcelCommandIsNotConstructed if validation fails.
func (c SendParcelCommand) Validate() error {
	return c.guard.Validate(ErrSendParcelCommandIsNotConstructed)
}

// TrackingToken returns the tracking token of the parcel to dispatch.
func (c SendParcelCommand) TrackingToken() string {
	return c.trackingToken
}

func (c *SendParcelCommand) setTrackingToken(trackingToken string) error {
	if trackingToken == "" {
		return ErrTrackingTokenIsRequired
	}

	c.trackingToken = trackingToken
	return nil
}
