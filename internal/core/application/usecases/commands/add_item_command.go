package commands

import (
	"errors"

	"cafedelivery/internal/core/domain/model/kernel"
	"cafedelivery/internal/pkg/errs"
	"cafedelivery/internal/pkg/guard"
)

var (
	ErrAddItemCommandIsNotConstructed = errors.New(
		"AddItemCommand must be created via NewAddItemCommand constructor",
	)
	ErrOwnerIDIsRequired     = errs.NewValueIsRequiredError("ownerID")
	ErrProductNameIsRequired = errs.NewValueIsRequiredError("name")
	ErrQuantityIsInvalid     = errs.NewValueIsInvalidError("quantity")
)

// AddItemCommand represents a request to add a product line to the caller's
// cart. Lines for the same product and size variant are merged by the cart.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromCents(450)
//	cmd, err := NewAddItemCommand(userID, productID, "Latte", price, 2, "medium", "img/latte.png")
//	if err != nil {
//	    return fmt.Errorf("invalid item data: %w", err)
//	}
//
//	handler := NewAddItemCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add item: %w", err)
//	}
type AddItemCommand struct { //nolint:recvcheck //using for validation
	ownerID     string
	productID   kernel.UUID
	name        string
	unitPrice   kernel.Money
	quantity    int
	sizeVariant string
	imageRef    string

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add a product line to a cart.
// Validates that the owner and product name are set, the product id is
// valid, and the quantity is at least 1.
func NewAddItemCommand(
	ownerID string,
	productID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	quantity int,
	sizeVariant string,
	imageRef string,
) (AddItemCommand, error) {
	command := AddItemCommand{
		unitPrice:   unitPrice,
		sizeVariant: sizeVariant,
		imageRef:    imageRef,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOwnerID(ownerID),
		command.setProductID(productID),
		command.setName(name),
		command.setQuantity(quantity),
	); err != nil {
		return AddItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// OwnerID returns the cart owner's opaque identifier.
func (c AddItemCommand) OwnerID() string {
	return c.ownerID
}

// ProductID returns the product being added.
func (c AddItemCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product display name captured for the line.
func (c AddItemCommand) Name() string {
	return c.name
}

// UnitPrice returns the per-unit price captured for the line.
func (c AddItemCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

// Quantity returns how many units to add.
func (c AddItemCommand) Quantity() int {
	return c.quantity
}

// SizeVariant returns the size variant distinguishing the line.
func (c AddItemCommand) SizeVariant() string {
	return c.sizeVariant
}

// ImageRef returns the opaque product image reference.
func (c AddItemCommand) ImageRef() string {
	return c.imageRef
}

func (c *AddItemCommand) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return ErrOwnerIDIsRequired
	}

	c.ownerID = ownerID
	return nil
}

func (c *AddItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddItemCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddItemCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
