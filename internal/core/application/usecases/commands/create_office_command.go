package commands

import (
	"errors"

	"postal/internal/pkg/guard"
)

var (
	ErrCreateOfficeCommandIsNotConstructed = errors.New(
		"CreateOfficeCommand must be created via NewCreateOfficeCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
	ErrCityIsRequired = errors.New("city is required")
)

// CreateOfficeCommand represents a request to register a new post office.
type CreateOfficeCommand struct { //nolint:recvcheck //using for validation
	name     string
	city     string
	postcode string
	street   string

	guard guard.ConstructorGuard
}

// NewCreateOfficeCommand creates a command to register a new post office.
// Name and city are required; postcode and street may be empty.
func NewCreateOfficeCommand(name, city, postcode, street string) (CreateOfficeCommand, error) {
	officeCommand := CreateOfficeCommand{
		postcode: postcode,
		street:   street,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		officeCommand.setName(name),
		officeCommand.setCity(city),
	); err != nil {
		return CreateOfficeCommand{}, err
	}

	return officeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOfficeCommand) Validate() error {
	return c.guard.Validate(ErrCreateOfficeCommandIsNotConstructed)
}

// Name returns the office name.
func (c CreateOfficeCommand) Name() string {
	return c.name
}

// City returns the city the office is located in.
func (c CreateOfficeCommand) City() string {
	return c.city
}

// Postcode returns the office postcode.
func (c CreateOfficeCommand) Postcode() string {
	return c.postcode
}

// Street returns the office street address.
func (c CreateOfficeCommand) Street() string {
	return c.street
}

func (c *CreateOfficeCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateOfficeCommand) setCity(city string) error {
	if city == "" {
		return ErrCityIsRequired
	}

	c.city = city
	return nil
}
