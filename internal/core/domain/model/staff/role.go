package staff

import (
	"fmt"

	"postal/internal/pkg/errs"
)

// Role represents the position an employee holds at a post office.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// Clerk handles routine counter work, including parcel intake and handover.
	Clerk

	// Manager oversees daily operations of a post office.
	Manager

	// Driver transports parcels between post offices.
	Driver

	// Accountant manages financial records of a post office.
	Accountant

	// Administrator handles record keeping and coordination tasks.
	Administrator
)

func getRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		Clerk:         "CLERK",
		Manager:       "MANAGER",
		Driver:        "DRIVER",
		Accountant:    "ACCOUNTANT",
		Administrator: "ADMINISTRATOR",
	}
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role, or "UNKNOWN" for invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// RoleFromString parses a role from its wire name.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a valid role name", s),
	)
}
