package commands

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/guard"
)

var ErrUpdateClientCommandIsNotConstructed = errors.New(
	"UpdateClientCommand must be created via NewUpdateClientCommand constructor",
)

// UpdateClientCommand represents a request to replace a client's attributes.
type UpdateClientCommand struct { //nolint:recvcheck //using for validation
	clientID  kernel.UUID
	firstName string
	lastName  string
	email     string
	phone     string

	guard guard.ConstructorGuard
}

// NewUpdateClientCommand creates a command to update a client.
func NewUpdateClientCommand(clientID kernel.UUID, firstName, lastName, email, phone string) (UpdateClientCommand, error) {
	clientCommand := UpdateClientCommand{
		email: email,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		clientCommand.setClientID(clientID),
		clientCommand.setFirstName(firstName),
		clientCommand.setLastName(lastName),
	); err != nil {
		return UpdateClientCommand{}, err
	}

	return clientCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateClientCommand) Validate() error {
	return c.guard.Validate(ErrUpdateClientCommandIsNotConstructed)
}

// ClientID returns the identifier of the client to update.
func (c UpdateClientCommand) ClientID() kernel.UUID {
	return c.clientID
}

// FirstName returns the new first name.
func (c UpdateClientCommand) FirstName() string {
	return c.firstName
}

// LastName returns the new last name.
func (c UpdateClientCommand) LastName() string {
	return c.lastName
}

// Email returns the new email address.
func (c UpdateClientCommand) Email() string {
	return c.email
}

// Phone returns the new phone number.
func (c UpdateClientCommand) Phone() string {
	return c.phone
}

func (c *UpdateClientCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *UpdateClientCommand) setFirstName(firstName string) error {
	if firstName == "" {
		return ErrFirstNameIsRequired
	}

	c.firstName = firstName
	return nil
}

func (c *UpdateClientCommand) setLastName(lastName string) error {
	if lastName == "" {
		return ErrLastNameIsRequired
	}

	c.lastName = lastName
	return nil
}
