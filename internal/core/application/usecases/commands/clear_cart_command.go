package commands

import (
	"errors"

	"cafedelivery/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand represents a request to empty the caller's cart in a
// single step. Clearing an already empty or absent cart succeeds.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	ownerID string

	guard guard.ConstructorGuard
}

// NewClearCartCommand creates a command to clear a cart.
func NewClearCartCommand(ownerID string) (ClearCartCommand, error) {
	command := ClearCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOwnerID(ownerID); err != nil {
		return ClearCartCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

// OwnerID returns the cart owner's opaque identifier.
func (c ClearCartCommand) OwnerID() string {
	return c.ownerID
}

func (c *ClearCartCommand) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return ErrOwnerIDIsRequired
	}

	c.ownerID = ownerID
	return nil
}
