package order

import (
	"fmt"

	"cafedelivery/internal/pkg/errs"
)

// Role identifies which kind of actor is requesting an order transition.
// The state machine admits each transition only for specific roles.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer is the customer who owns the order.
	RoleCustomer

	// RoleAdmin covers kitchen and back-office staff. Confirmation,
	// preparation, and administrative cancellation run under this role.
	RoleAdmin

	// RoleCourier is a delivery agent. Accepting a delivery and marking it
	// delivered run under this role.
	RoleCourier
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleCustomer: "customer",
		RoleAdmin:    "admin",
		RoleCourier:  "courier",
	}
}

// ParseRole converts a string (e.g. a token claim) into a Role.
func ParseRole(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s && role != RoleUnknown {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate rejects RoleUnknown and out-of-range values.
func (r Role) Validate() error {
	if r != RoleCustomer && r != RoleAdmin && r != RoleCourier {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the lower-case name of the role.
// Implements fmt.Stringer; safe on invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
