package cart

import (
	"errors"
	"fmt"

	"cafedelivery/internal/core/domain/model/kernel"
	"cafedelivery/internal/pkg/errs"
	"cafedelivery/internal/pkg/guard"
)

// Domain errors for cart items.
var (
	// ErrItemNameIsRequired is returned when creating an item without a product name.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrItemQuantityIsInvalid is returned when creating an item with quantity below 1.
	ErrItemQuantityIsInvalid = errs.NewValueIsInvalidError("quantity")
	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")
)

// Item is one line within a cart: a product in a given size variant with a
// quantity. Line identity is the generated line id; merge identity is the
// (productID, sizeVariant) pair.
type Item struct {
	// id is the unique line identifier, generated when the line is first added
	id kernel.UUID
	// productID references the catalog product
	productID kernel.UUID
	// name is the product display name captured at add time
	name string
	// unitPrice is the price per unit captured at add time
	unitPrice kernel.Money
	// quantity is the number of units; New items start at 1 or more, but a
	// later SetQuantity may drive it to zero or below without removing the line
	quantity int
	// sizeVariant distinguishes sizes of the same product ("S", "M", "L");
	// may be empty for products without variants
	sizeVariant string
	// imageRef is an opaque reference to the product image
	imageRef string

	guard guard.ConstructorGuard
}

// NewItem creates a cart line for a product, generating a fresh line id.
// Quantity must be at least 1; name must be non-empty.
func NewItem(
	productID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	quantity int,
	sizeVariant string,
	imageRef string,
) (*Item, error) {
	item := &Item{
		id:          kernel.NewUUID(),
		sizeVariant: sizeVariant,
		imageRef:    imageRef,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	item.unitPrice = unitPrice
	return item, nil
}

// RestoreItem reconstructs a cart line from persistence with its stored
// line id. Unlike NewItem it accepts any quantity, because a persisted line
// may legitimately hold zero or a negative quantity after SetQuantity.
func RestoreItem(
	id kernel.UUID,
	productID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	quantity int,
	sizeVariant string,
	imageRef string,
) (*Item, error) {
	item := &Item{
		quantity:    quantity,
		sizeVariant: sizeVariant,
		imageRef:    imageRef,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setName(name),
	); err != nil {
		return nil, err
	}

	item.unitPrice = unitPrice
	return item, nil
}

// Validate ensures the item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the unique line identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the catalog product identifier.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product display name.
func (i *Item) Name() string {
	return i.name
}

// UnitPrice returns the price per unit.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the number of units on this line.
func (i *Item) Quantity() int {
	return i.quantity
}

// SizeVariant returns the size variant, possibly empty.
func (i *Item) SizeVariant() string {
	return i.sizeVariant
}

// ImageRef returns the opaque product image reference.
func (i *Item) ImageRef() string {
	return i.imageRef
}

// LineTotal returns unitPrice × quantity for this line.
// Non-positive quantities contribute the zero amount.
func (i *Item) LineTotal() kernel.Money {
	return i.unitPrice.MulQuantity(i.quantity)
}

// MergesWith reports whether another line has the same merge identity,
// the (productID, sizeVariant) pair. Line ids are not compared.
func (i *Item) MergesWith(other *Item) bool {
	return other != nil &&
		i.productID.IsEqual(other.productID) &&
		i.sizeVariant == other.sizeVariant
}

// Snapshot returns a by-value copy of the line. Orders keep snapshots so
// later cart mutations cannot reach into a placed order.
func (i *Item) Snapshot() Item {
	return *i
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return fmt.Errorf("productID: %w", err)
	}
	i.productID = productID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return ErrItemQuantityIsInvalid
	}
	i.quantity = quantity
	return nil
}
