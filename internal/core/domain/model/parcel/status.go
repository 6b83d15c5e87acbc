package parcel

import (
	"fmt"

	"postal/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
//
// State transitions enforced by the dispatch path:
//
//	Created ──┬──> InTransit ──> Delivered
//	          │        │
//	          └────────┘
//	    (re-dispatch allowed, status unchanged)
//
// The direct status-set path (Parcel.SetStatus) deliberately performs no
// transition check; see the parcel aggregate for details.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Created is the initial status when a parcel is first registered.
	// Parcels in this status are waiting at the origin post office.
	Created

	// InTransit indicates the parcel is moving between post offices.
	InTransit

	// Delivered indicates the parcel has reached its recipient.
	// This is a final state for the dispatch path.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "UNKNOWN",
		Created:       "CREATED",
		InTransit:     "IN_TRANSIT",
		Delivered:     "DELIVERED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "CREATED",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
	}
}

// AllStatuses returns every valid status in declaration order.
// Used by the statistics aggregator to pre-seed zero counts.
func AllStatuses() []Status {
	return []Status{Created, InTransit, Delivered}
}

// Validate checks if the Status value is valid.
// Valid statuses are Created, InTransit, and Delivered.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("CREATED", "IN_TRANSIT",
// "DELIVERED"), or "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StatusFromString parses a status from its wire name.
// Returns an error for unrecognized names.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status name", s),
	)
}

// ValidateSend checks if the status allows dispatching without performing
// the transition.
//
// Valid statuses for dispatch:
//   - Created (first dispatch)
//   - InTransit (re-dispatch between intermediate offices)
//
// Returns an error naming the current status if dispatch is not allowed.
func (s Status) ValidateSend() error {
	if s != Created && s != InTransit {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("parcel cannot be sent from status %s", s.String()),
		)
	}
	return nil
}

// Send transitions the status for a dispatch operation.
//
// Valid transitions:
//   - Created -> InTransit (first dispatch)
//   - InTransit -> InTransit (re-dispatch is logged but non-mutating)
//
// Returns (0, error) if dispatch is not allowed from the current status.
func (s Status) Send() (Status, error) {
	if err := s.ValidateSend(); err != nil {
		return 0, err
	}

	return InTransit, nil
}
