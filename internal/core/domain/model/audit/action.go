package audit

import (
	"fmt"

	"postal/internal/pkg/errs"
)

// Action is the kind of handling event recorded for a parcel.
type Action int

const (
	// ActionUnknown represents an invalid or undefined action.
	ActionUnknown Action = iota

	// Received records that a parcel was taken in at a post office.
	Received

	// Sent records that a parcel was dispatched from a post office.
	Sent

	// Delivered records that a parcel was handed to its recipient.
	Delivered
)

func getActionStrings() map[Action]string {
	//nolint:exhaustive // ActionUnknown is intentionally excluded as it's invalid
	return map[Action]string{
		Received:  "RECEIVED",
		Sent:      "SENT",
		Delivered: "DELIVERED",
	}
}

// Validate checks if the Action value is valid.
func (a Action) Validate() error {
	if _, ok := getActionStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("action is invalid", fmt.Errorf("%d is not a valid action", a))
	}
	return nil
}

// String returns the wire name of the action, or "UNKNOWN" for invalid values.
func (a Action) String() string {
	if str, ok := getActionStrings()[a]; ok {
		return str
	}
	return "UNKNOWN"
}
