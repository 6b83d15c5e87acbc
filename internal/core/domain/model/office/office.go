// Package office contains the post office aggregate and its search filter.
// Post offices are referenced, never embedded, by parcels and audit entries.
package office

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/errs"
)

var (
	// ErrOfficeIsNotConstructed is returned when an Office instance was not
	// created through the NewOffice factory method.
	ErrOfficeIsNotConstructed = errors.New("Office must be created via NewOffice constructor")
)

// Office represents a post office where parcels are registered, dispatched,
// and delivered.
type Office struct {
	id       kernel.UUID
	name     string
	city     string
	postcode string
	street   string

	isConstructed bool
}

// NewOffice creates a new Office with validation.
// Name and city are required; postcode and street may be empty.
func NewOffice(id kernel.UUID, name, city, postcode, street string) (*Office, error) {
	o := &Office{
		postcode:      postcode,
		street:        street,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setName(name),
		o.setCity(city),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Office instance was properly constructed through NewOffice.
func (o *Office) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOfficeIsNotConstructed
	}
	return nil
}

// ID returns the office's unique identifier.
func (o *Office) ID() kernel.UUID {
	return o.id
}

// Name returns the office name.
func (o *Office) Name() string {
	return o.name
}

// City returns the city the office is located in.
func (o *Office) City() string {
	return o.city
}

// Postcode returns the office postcode.
func (o *Office) Postcode() string {
	return o.postcode
}

// Street returns the office street address.
func (o *Office) Street() string {
	return o.street
}

// Update replaces the office's descriptive attributes, applying the same
// validation as construction.
func (o *Office) Update(name, city, postcode, street string) error {
	if err := errors.Join(
		o.setName(name),
		o.setCity(city),
	); err != nil {
		return err
	}

	o.postcode = postcode
	o.street = street
	return nil
}

func (o *Office) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Office) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	o.name = name
	return nil
}

func (o *Office) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	o.city = city
	return nil
}
