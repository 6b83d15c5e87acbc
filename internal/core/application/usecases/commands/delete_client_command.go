package commands

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/guard"
)

var ErrDeleteClientCommandIsNotConstructed = errors.New(
	"DeleteClientCommand must be created via NewDeleteClientCommand constructor",
)

// DeleteClientCommand represents a request to remove a client.
type DeleteClientCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteClientCommand creates a command to remove a client.
func NewDeleteClientCommand(clientID kernel.UUID) (DeleteClientCommand, error) {
	clientCommand := DeleteClientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := clientCommand.setClientID(clientID); err != nil {
		return DeleteClientCommand{}, err
	}

	return clientCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteClientCommand) Validate() error {
	return c.guard.Validate(ErrDeleteClientCommandIsNotConstructed)
}

// ClientID returns the identifier of the client to remove.
func (c DeleteClientCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c *DeleteClientCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}
