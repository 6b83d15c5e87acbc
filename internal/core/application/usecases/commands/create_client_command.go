package commands

import (
	"errors"

	"postal/internal/pkg/guard"
)

var ErrCreateClientCommandIsNotConstructed = errors.New(
	"CreateClientCommand must be created via NewCreateClientCommand constructor",
)

// CreateClientCommand represents a request to register a new client.
type CreateClientCommand struct { //nolint:recvcheck //using for validation
	firstName string
	lastName  string
	email     string
	phone     string

	guard guard.ConstructorGuard
}

// NewCreateClientCommand creates a command to register a new client.
// Both names are required; email and phone may be empty.
func NewCreateClientCommand(firstName, lastName, email, phone string) (CreateClientCommand, error) {
	clientCommand := CreateClientCommand{
		email: email,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		clientCommand.setFirstName(firstName),
		clientCommand.setLastName(lastName),
	); err != nil {
		return CreateClientCommand{}, err
	}

	return clientCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

// FirstName returns the client's first name.
func (c CreateClientCommand) FirstName() string {
	return c.firstName
}

// LastName returns the client's last name.
func (c CreateClientCommand) LastName() string {
	return c.lastName
}

// Email returns the client's email address.
func (c CreateClientCommand) Email() string {
	return c.email
}

// Phone returns the client's phone number.
func (c CreateClientCommand) Phone() string {
	return c.phone
}

func (c *CreateClientCommand) setFirstName(firstName string) error {
	if firstName == "" {
		return ErrFirstNameIsRequired
	}

	c.firstName = firstName
	return nil
}

func (c *CreateClientCommand) setLastName(lastName string) error {
	if lastName == "" {
		return ErrLastNameIsRequired
	}

	c.lastName = lastName
	return nil
}
