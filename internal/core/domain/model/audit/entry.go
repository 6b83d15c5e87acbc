// Package audit contains the immutable audit trail of parcel handling
// events. An Entry is created exactly once per qualifying lifecycle
// transition and is never mutated or deleted afterward: the log is
// write-once, read-many.
package audit

import (
	"errors"
	"time"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/errs"
)

var (
	// ErrEntryIsNotConstructed is returned when an Entry instance was not
	// created through NewEntry or RestoreEntry.
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")
)

// Entry records one handling event for a parcel: what happened, when, by
// whom, and where. Entries expose no mutators.
type Entry struct {
	id         kernel.UUID
	timestamp  time.Time
	action     Action
	parcelID   kernel.UUID
	employeeID kernel.UUID
	officeID   kernel.UUID

	isConstructed bool
}

// NewEntry creates a new audit Entry stamped with the given timestamp.
func NewEntry(
	id kernel.UUID,
	timestamp time.Time,
	action Action,
	parcelID kernel.UUID,
	employeeID kernel.UUID,
	officeID kernel.UUID,
) (*Entry, error) {
	e := &Entry{
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setTimestamp(timestamp),
		e.setAction(action),
		e.setParcel(parcelID),
		e.setEmployee(employeeID),
		e.setOffice(officeID),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEntry reconstructs an Entry from persistence.
// It applies the same validation as NewEntry.
func RestoreEntry(
	id kernel.UUID,
	timestamp time.Time,
	action Action,
	parcelID kernel.UUID,
	employeeID kernel.UUID,
	officeID kernel.UUID,
) (*Entry, error) {
	return NewEntry(id, timestamp, action, parcelID, employeeID, officeID)
}

// Validate ensures the Entry instance was properly constructed.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// Timestamp returns when the handling event occurred.
func (e *Entry) Timestamp() time.Time {
	return e.timestamp
}

// Action returns the kind of handling event.
func (e *Entry) Action() Action {
	return e.action
}

// Parcel returns the identifier of the parcel the event concerns.
func (e *Entry) Parcel() kernel.UUID {
	return e.parcelID
}

// Employee returns the identifier of the employee who performed the event.
func (e *Entry) Employee() kernel.UUID {
	return e.employeeID
}

// Office returns the identifier of the post office where the event occurred.
func (e *Entry) Office() kernel.UUID {
	return e.officeID
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setTimestamp(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("timestamp")
	}
	e.timestamp = t
	return nil
}

func (e *Entry) setAction(a Action) error {
	if err := a.Validate(); err != nil {
		return err
	}
	e.action = a
	return nil
}

func (e *Entry) setParcel(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parcelId", err)
	}
	e.parcelID = id
	return nil
}

func (e *Entry) setEmployee(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("employeeId", err)
	}
	e.employeeID = id
	return nil
}

func (e *Entry) setOffice(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("postOfficeId", err)
	}
	e.officeID = id
	return nil
}
