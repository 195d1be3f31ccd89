package commands

import (
	"errors"

	"cafedelivery/internal/core/domain/model/kernel"
	"cafedelivery/internal/pkg/guard"
)

var ErrAcceptDeliveryCommandIsNotConstructed = errors.New(
	"AcceptDeliveryCommand must be created via NewAcceptDeliveryCommand constructor",
)

// AcceptDeliveryCommand represents a courier accepting an awaiting order.
// The acceptance moves the order to EnRoute and binds the courier to it in
// the same update, so two couriers racing for one order resolve to exactly
// one winner.
type AcceptDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptDeliveryCommand creates a command for a courier to accept an order.
func NewAcceptDeliveryCommand(orderID, courierID kernel.UUID) (AcceptDeliveryCommand, error) {
	command := AcceptDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCourierID(courierID),
	); err != nil {
		return AcceptDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryCommandIsNotConstructed)
}

// OrderID returns the order being accepted.
func (c AcceptDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the accepting courier.
func (c AcceptDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *AcceptDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptDeliveryCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
