package commands

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/guard"
)

var ErrUpdateOfficeCommandIsNotConstructed = errors.New(
	"UpdateOfficeCommand must be created via NewUpdateOfficeCommand constructor",
)

// UpdateOfficeCommand represents a request to replace a post office's
// descriptive attributes.
type UpdateOfficeCommand struct { //nolint:recvcheck //using for validation
	officeID kernel.UUID
	name     string
	city     string
	postcode string
	street   string

	guard guard.ConstructorGuard
}

// NewUpdateOfficeCommand creates a command to update a post office.
// Validates that the office ID is valid and name and city are not empty.
func NewUpdateOfficeCommand(officeID kernel.UUID, name, city, postcode, street string) (UpdateOfficeCommand, error) {
	officeCommand := UpdateOfficeCommand{
		postcode: postcode,
		street:   street,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		officeCommand.setOfficeID(officeID),
		officeCommand.setName(name),
		officeCommand.setCity(city),
	); err != nil {
		return UpdateOfficeCommand{}, err
	}

	return officeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOfficeCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOfficeCommandIsNotConstructed)
}

// OfficeID returns the identifier of the office to update.
func (c UpdateOfficeCommand) OfficeID() kernel.UUID {
	return c.officeID
}

// Name returns the new office name.
func (c UpdateOfficeCommand) Name() string {
	return c.name
}

// City returns the new city.
func (c UpdateOfficeCommand) City() string {
	return c.city
}

// Postcode returns the new postcode.
func (c UpdateOfficeCommand) Postcode() string {
	return c.postcode
}

// Street returns the new street address.
func (c UpdateOfficeCommand) Street() string {
	return c.street
}

func (c *UpdateOfficeCommand) setOfficeID(officeID kernel.UUID) error {
	if err := officeID.Validate(); err != nil {
		return err
	}

	c.officeID = officeID
	return nil
}

func (c *UpdateOfficeCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateOfficeCommand) setCity(city string) error {
	if city == "" {
		return ErrCityIsRequired
	}

	c.city = city
	return nil
}
