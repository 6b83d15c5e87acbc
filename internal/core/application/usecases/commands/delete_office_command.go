package commands

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/guard"
)

var ErrDeleteOfficeCommandIsNotConstructed = errors.New(
	"DeleteOfficeCommand must be created via NewDeleteOfficeCommand constructor",
)

// DeleteOfficeCommand represents a request to remove a post office.
type DeleteOfficeCommand struct { //nolint:recvcheck //using for validation
	officeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteOfficeCommand creates a command to remove a post office.
func NewDeleteOfficeCommand(officeID kernel.UUID) (DeleteOfficeCommand, error) {
	officeCommand := DeleteOfficeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := officeCommand.setOfficeID(officeID); err != nil {
		return DeleteOfficeCommand{}, err
	}

	return officeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOfficeCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOfficeCommandIsNotConstructed)
}

// OfficeID returns the identifier of the office to remove.
func (c DeleteOfficeCommand) OfficeID() kernel.UUID {
	return c.officeID
}

func (c *DeleteOfficeCommand) setOfficeID(officeID kernel.UUID) error {
	if err := officeID.Validate(); err != nil {
		return err
	}

	c.officeID = officeID
	return nil
}
