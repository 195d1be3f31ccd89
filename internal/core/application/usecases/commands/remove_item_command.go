package commands

import (
	"errors"

	"cafedelivery/internal/core/domain/model/kernel"
	"cafedelivery/internal/pkg/guard"
)

var ErrRemoveItemCommandIsNotConstructed = errors.New(
	"RemoveItemCommand must be created via NewRemoveItemCommand constructor",
)

// RemoveItemCommand represents a request to remove a line from the caller's
// cart. Removing a line that is not present is a no-op.
type RemoveItemCommand struct { //nolint:recvcheck //using for validation
	ownerID string
	lineID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveItemCommand creates a command to remove a cart line.
func NewRemoveItemCommand(ownerID string, lineID kernel.UUID) (RemoveItemCommand, error) {
	command := RemoveItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOwnerID(ownerID),
		command.setLineID(lineID),
	); err != nil {
		return RemoveItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemCommandIsNotConstructed)
}

// OwnerID returns the cart owner's opaque identifier.
func (c RemoveItemCommand) OwnerID() string {
	return c.ownerID
}

// LineID returns the cart line to remove.
func (c RemoveItemCommand) LineID() kernel.UUID {
	return c.lineID
}

func (c *RemoveItemCommand) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return ErrOwnerIDIsRequired
	}

	c.ownerID = ownerID
	return nil
}

func (c *RemoveItemCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}
