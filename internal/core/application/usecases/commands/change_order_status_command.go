package commands

import (
	"errors"

	"cafedelivery/internal/core/domain/model/kernel"
	"cafedelivery/internal/core/domain/model/order"
	"cafedelivery/internal/pkg/errs"
	"cafedelivery/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
	ErrActorIDIsRequired = errs.NewValueIsRequiredError("actorID")
	// ErrTargetStatusIsInvalid rejects targets that are not reachable
	// through this command. EnRoute and Delivered are driven by the courier
	// workflow commands, which also bind or credit the courier.
	ErrTargetStatusIsInvalid = errs.NewValueIsInvalidError("target status")
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// lifecycle status on behalf of an authenticated actor. The domain state
// machine decides whether the transition is legal for the actor's role.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	target    order.Status
	actorID   string
	actorRole order.Role

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
// Accepts targets reachable by the kitchen and customers: Confirmed,
// InPreparation, AwaitingCourier, and Cancelled.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	target order.Status,
	actorID string,
	actorRole order.Role,
) (ChangeOrderStatusCommand, error) {
	command := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTarget(target),
		command.setActor(actorID, actorRole),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to change.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

// ActorID returns the authenticated caller's opaque identifier.
func (c ChangeOrderStatusCommand) ActorID() string {
	return c.actorID
}

// ActorRole returns the authenticated caller's role.
func (c ChangeOrderStatusCommand) ActorRole() order.Role {
	return c.actorRole
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == order.EnRoute || target == order.Delivered || target == order.Pending {
		return ErrTargetStatusIsInvalid
	}

	c.target = target
	return nil
}

func (c *ChangeOrderStatusCommand) setActor(actorID string, actorRole order.Role) error {
	if actorID == "" {
		return ErrActorIDIsRequired
	}
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	c.actorRole = actorRole
	return nil
}
