// Package client contains the client entity: the sender or recipient of a
// parcel. Clients are referenced by ID from parcels, never embedded.
package client

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/errs"
)

var (
	// ErrClientIsNotConstructed is returned when a Client instance was not
	// created through the NewClient factory method.
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")
)

// Client represents a person who sends or receives parcels.
type Client struct {
	id        kernel.UUID
	firstName string
	lastName  string
	email     string
	phone     string

	isConstructed bool
}

// NewClient creates a new Client with validation.
// First and last name are required; email and phone may be empty.
func NewClient(id kernel.UUID, firstName, lastName, email, phone string) (*Client, error) {
	c := &Client{
		email:         email,
		phone:         phone,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(firstName, lastName),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Client instance was properly constructed through NewClient.
func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

// ID returns the client's unique identifier.
func (c *Client) ID() kernel.UUID {
	return c.id
}

// FirstName returns the client's first name.
func (c *Client) FirstName() string {
	return c.firstName
}

// LastName returns the client's last name.
func (c *Client) LastName() string {
	return c.lastName
}

// Email returns the client's email address.
func (c *Client) Email() string {
	return c.email
}

// Phone returns the client's phone number.
func (c *Client) Phone() string {
	return c.phone
}

// Update replaces the client's attributes, applying the same validation as
// construction.
func (c *Client) Update(firstName, lastName, email, phone string) error {
	if err := c.setName(firstName, lastName); err != nil {
		return err
	}
	c.email = email
	c.phone = phone
	return nil
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setName(firstName, lastName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	if lastName == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	c.firstName = firstName
	c.lastName = lastName
	return nil
}
