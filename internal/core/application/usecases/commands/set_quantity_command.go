package commands

import (
	"errors"

	"cafedelivery/internal/core/domain/model/kernel"
	"cafedelivery/internal/pkg/guard"
)

var ErrSetQuantityCommandIsNotConstructed = errors.New(
	"SetQuantityCommand must be created via NewSetQuantityCommand constructor",
)

// SetQuantityCommand represents a request to replace the quantity of an
// existing cart line. Zero and negative quantities are accepted and keep
// the line in the cart; removal is RemoveItemCommand's job.
type SetQuantityCommand struct { //nolint:recvcheck //using for validation
	ownerID  string
	lineID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewSetQuantityCommand creates a command to set a cart line's quantity.
// Any quantity is accepted, including zero and negatives.
func NewSetQuantityCommand(ownerID string, lineID kernel.UUID, quantity int) (SetQuantityCommand, error) {
	command := SetQuantityCommand{
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOwnerID(ownerID),
		command.setLineID(lineID),
	); err != nil {
		return SetQuantityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetQuantityCommand) Validate() error {
	return c.guard.Validate(ErrSetQuantityCommandIsNotConstructed)
}

// OwnerID returns the cart owner's opaque identifier.
func (c SetQuantityCommand) OwnerID() string {
	return c.ownerID
}

// LineID returns the cart line to change.
func (c SetQuantityCommand) LineID() kernel.UUID {
	return c.lineID
}

// Quantity returns the replacement quantity.
func (c SetQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *SetQuantityCommand) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return ErrOwnerIDIsRequired
	}

	c.ownerID = ownerID
	return nil
}

func (c *SetQuantityCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}
