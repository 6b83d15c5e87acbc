package commands

import (
	"errors"

	"postal/internal/core/domain/model/parcel"
	"postal/internal/pkg/guard"
)

var ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
	"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
)

// UpdateParcelStatusCommand represents a request to set a parcel's status to
// an explicit target value, identified by tracking token.
type UpdateParcelStatusCommand struct { //nolint:recvcheck //using for validation
	trackingToken string
	status        parcel.Status

	guard guard.ConstructorGuard
}

// NewUpdateParcelStatusCommand creates a command to set a parcel status.
// Validates that the tracking token is not empty and the target status is a
// valid value.
func NewUpdateParcelStatusCommand(trackingToken string, status parcel.Status) (UpdateParcelStatusCommand, error) {
	statusCommand := UpdateParcelStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setTrackingToken(trackingToken),
		statusCommand.setStatus(status),
	); err != nil {
		return UpdateParcelStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateParcelStatusCommandIsNotConstructed if validation fails.
func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

// TrackingToken returns the tracking token of the parcel to update.
func (c UpdateParcelStatusCommand) TrackingToken() string {
	return c.trackingToken
}

// Status returns the target status.
func (c UpdateParcelStatusCommand) Status() parcel.Status {
	return c.status
}

func (c *UpdateParcelStatusCommand) setTrackingToken(trackingToken string) error {
	if trackingToken == "" {
		return ErrTrackingTokenIsRequired
	}

	c.trackingToken = trackingToken
	return nil
}

func (c *UpdateParcelStatusCommand) setStatus(status parcel.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
