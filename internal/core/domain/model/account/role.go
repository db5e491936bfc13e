package account

import (
	"fmt"

	"parcellocker/internal/pkg/errs"
)

// Role is the closed set of user roles. Operations users administer bloqs and
// lockers and may view any rent; regular users only act on their own rents.
type Role int

const (
	// RoleUnknown catches uninitialized Role values.
	RoleUnknown Role = iota
	RegularUser
	OperationsUser
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RegularUser:    "REGULAR_USER",
		OperationsUser: "OPERATIONS_USER",
	}
}

// RoleFromString parses the wire representation of a role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role", fmt.Errorf("%q is not a valid role", s))
}

// String returns the wire representation, or "UNKNOWN" for invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate rejects RoleUnknown and any value outside the closed set.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}
