package order

import (
	"fmt"

	"cafedelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with role-gated transitions:
//
//	Pending ──> Confirmed ──> InPreparation ──> AwaitingCourier ──> EnRoute ──> Delivered
//	   │            │               │                  │               │
//	   └────────────┴───────────────┴──────────────────┴───────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. Transition methods return the new
// status without side effects; Order applies them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status right after checkout, before the
	// kitchen has confirmed the order.
	Pending

	// Confirmed means the kitchen has accepted the order.
	Confirmed

	// InPreparation means the kitchen is preparing the order.
	InPreparation

	// AwaitingCourier means the order is ready and waiting for a courier
	// to accept the delivery.
	AwaitingCourier

	// EnRoute means a courier has accepted the delivery and is on the way.
	// An EnRoute order always has a courier bound.
	EnRoute

	// Delivered means the courier completed the delivery. Terminal.
	Delivered

	// Cancelled means the order was cancelled before delivery. Terminal.
	Cancelled
)

// StatusCount is the number of Status values including Unknown. Tallies
// indexed by status ordinal use a fixed [StatusCount]int array so every
// status is represented even with zero occurrences.
const StatusCount = int(Cancelled) + 1

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		Pending:         "Pending",
		Confirmed:       "Confirmed",
		InPreparation:   "InPreparation",
		AwaitingCourier: "AwaitingCourier",
		EnRoute:         "EnRoute",
		Delivered:       "Delivered",
		Cancelled:       "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:         "Pending",
		Confirmed:       "Confirmed",
		InPreparation:   "InPreparation",
		AwaitingCourier: "AwaitingCourier",
		EnRoute:         "EnRoute",
		Delivered:       "Delivered",
		Cancelled:       "Cancelled",
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ParseStatus converts the wire representation into a Status.
// Unknown is not parseable; it never appears on the wire.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Confirm transitions Pending -> Confirmed. Admin (kitchen) only.
func (s Status) Confirm(role Role) (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError(s.String(), Confirmed.String())
	}
	if role != RoleAdmin {
		return 0, roleDenied(s, Confirmed, role)
	}
	return Confirmed, nil
}

// StartPreparation transitions Confirmed -> InPreparation. Admin (kitchen) only.
func (s Status) StartPreparation(role Role) (Status, error) {
	if s != Confirmed {
		return 0, errs.NewInvalidTransitionError(s.String(), InPreparation.String())
	}
	if role != RoleAdmin {
		return 0, roleDenied(s, InPreparation, role)
	}
	return InPreparation, nil
}

// ReadyForCourier transitions InPreparation -> AwaitingCourier. Admin
// (kitchen) only. Reaching AwaitingCourier is what makes the order eligible
// for courier assignment.
func (s Status) ReadyForCourier(role Role) (Status, error) {
	if s != InPreparation {
		return 0, errs.NewInvalidTransitionError(s.String(), AwaitingCourier.String())
	}
	if role != RoleAdmin {
		return 0, roleDenied(s, AwaitingCourier, role)
	}
	return AwaitingCourier, nil
}

// AcceptDelivery transitions AwaitingCourier -> EnRoute. Courier only.
// The caller must bind the courier's identity in the same atomic update.
func (s Status) AcceptDelivery(role Role) (Status, error) {
	if s != AwaitingCourier {
		return 0, errs.NewInvalidTransitionError(s.String(), EnRoute.String())
	}
	if role != RoleCourier {
		return 0, roleDenied(s, EnRoute, role)
	}
	return EnRoute, nil
}

// CompleteDelivery transitions EnRoute -> Delivered. Courier only.
func (s Status) CompleteDelivery(role Role) (Status, error) {
	if s != EnRoute {
		return 0, errs.NewInvalidTransitionError(s.String(), Delivered.String())
	}
	if role != RoleCourier {
		return 0, roleDenied(s, Delivered, role)
	}
	return Delivered, nil
}

// Cancel transitions any non-terminal status -> Cancelled. From Pending the
// customer may cancel their own order; from every later status cancellation
// is admin only.
func (s Status) Cancel(role Role) (Status, error) {
	if s.IsTerminal() || s.Validate() != nil {
		return 0, errs.NewInvalidTransitionError(s.String(), Cancelled.String())
	}

	if s == Pending {
		if role != RoleCustomer && role != RoleAdmin {
			return 0, roleDenied(s, Cancelled, role)
		}
		return Cancelled, nil
	}

	if role != RoleAdmin {
		return 0, roleDenied(s, Cancelled, role)
	}
	return Cancelled, nil
}

// TransitionTo dispatches to the transition method that reaches target.
// Requests for targets no transition reaches (Pending, Unknown) fail with
// an InvalidTransitionError.
func (s Status) TransitionTo(target Status, role Role) (Status, error) {
	switch target {
	case Confirmed:
		return s.Confirm(role)
	case InPreparation:
		return s.StartPreparation(role)
	case AwaitingCourier:
		return s.ReadyForCourier(role)
	case EnRoute:
		return s.AcceptDelivery(role)
	case Delivered:
		return s.CompleteDelivery(role)
	case Cancelled:
		return s.Cancel(role)
	default:
		return 0, errs.NewInvalidTransitionError(s.String(), target.String())
	}
}

// ValidateCanHaveCourier checks consistency between status and courier
// binding: EnRoute and Delivered orders must have a courier; orders that
// never reached EnRoute must not. Cancelled orders may have one or not,
// depending on when they were cancelled.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if !courier && (s == EnRoute || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	if courier && (s == Pending || s == Confirmed || s == InPreparation || s == AwaitingCourier) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	return nil
}

func roleDenied(from, to Status, role Role) error {
	return errs.NewInvalidTransitionErrorWithCause(
		from.String(),
		to.String(),
		fmt.Errorf("role %s may not perform this transition", role),
	)
}
