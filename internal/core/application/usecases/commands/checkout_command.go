package commands

import (
	"errors"

	"cafedelivery/internal/core/domain/model/kernel"
	"cafedelivery/internal/core/domain/model/order"
	"cafedelivery/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand represents a request to convert the caller's cart into a
// pending order. The caller supplies the order id so retries after a lost
// response stay idempotent.
//
// Example:
//
//	address, _ := kernel.NewAddress("Av. Corrientes 1500", "Buenos Aires", "timbre 3B")
//	cmd, err := NewCheckoutCommand(kernel.NewUUID(), userID, address, order.PaymentCash, "sin azucar")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	ownerID         string
	deliveryAddress kernel.Address
	paymentMethod   order.PaymentMethod
	notes           string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to place an order from a cart.
// Validates the order id, owner, delivery address, and payment method.
func NewCheckoutCommand(
	orderID kernel.UUID,
	ownerID string,
	deliveryAddress kernel.Address,
	paymentMethod order.PaymentMethod,
	notes string,
) (CheckoutCommand, error) {
	command := CheckoutCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setOwnerID(ownerID),
		command.setDeliveryAddress(deliveryAddress),
		command.setPaymentMethod(paymentMethod),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// OrderID returns the caller-supplied identifier for the new order.
func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OwnerID returns the cart owner's opaque identifier.
func (c CheckoutCommand) OwnerID() string {
	return c.ownerID
}

// DeliveryAddress returns where the order should be delivered.
func (c CheckoutCommand) DeliveryAddress() kernel.Address {
	return c.deliveryAddress
}

// PaymentMethod returns how the customer pays.
func (c CheckoutCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Notes returns the optional customer note.
func (c CheckoutCommand) Notes() string {
	return c.notes
}

func (c *CheckoutCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutCommand) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return ErrOwnerIDIsRequired
	}

	c.ownerID = ownerID
	return nil
}

func (c *CheckoutCommand) setDeliveryAddress(deliveryAddress kernel.Address) error {
	if err := deliveryAddress.Validate(); err != nil {
		return err
	}

	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CheckoutCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}
