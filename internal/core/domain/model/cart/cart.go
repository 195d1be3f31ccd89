package cart

import (
	"errors"
	"time"

	"cafedelivery/internal/core/domain/model/kernel"
	"cafedelivery/internal/pkg/errs"
	"cafedelivery/internal/pkg/guard"
)

// Domain errors for cart operations.
var (
	// ErrOwnerIsRequired is returned when creating a cart without an owner id.
	ErrOwnerIsRequired = errs.NewValueIsRequiredError("ownerID")
	// ErrCartIsNotConstructed is returned when using an improperly initialized Cart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart")
)

// Cart is the aggregate root for a customer's active shopping cart.
// A cart is keyed by its owner: the owner id is also the cart document id,
// which is what guarantees at most one cart per user.
//
// Invariants maintained by every mutation:
//   - at most one line per (productID, sizeVariant) pair
//   - subtotal == Σ(unitPrice × quantity) over all lines
//   - total == subtotal (tax and discount hooks are identity for now)
//
// The aggregate holds no locks; concurrent mutation safety comes from the
// repository executing read-modify-write cycles inside one transaction.
type Cart struct {
	// ownerID is the opaque id of the authenticated owner, and the cart's own id
	ownerID string
	// items are the cart lines; order is preserved but not meaningful
	items []*Item
	// subtotal is the sum of all line totals
	subtotal kernel.Money
	// total is the amount the customer pays; currently equal to subtotal
	total kernel.Money
	// createdAt is when the cart document was first created
	createdAt time.Time
	// updatedAt tracks the last successful mutation
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewCart creates an empty cart for the given owner. Carts are created
// lazily: the first AddItem for a user without a cart constructs one.
func NewCart(ownerID string, now time.Time) (*Cart, error) {
	if ownerID == "" {
		return nil, ErrOwnerIsRequired
	}

	return &Cart{
		ownerID:   ownerID,
		items:     make([]*Item, 0),
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreCart reconstructs a cart from persistence. Totals are recomputed
// from the restored lines rather than trusted from storage, so the totals
// invariant holds even if the stored denormalized values drifted.
func RestoreCart(ownerID string, items []*Item, createdAt, updatedAt time.Time) (*Cart, error) {
	if ownerID == "" {
		return nil, ErrOwnerIsRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	cart := &Cart{
		ownerID:   ownerID,
		items:     items,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}
	cart.recomputeTotals()
	return cart, nil
}

// Validate ensures the cart was created through a constructor.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// ID returns the cart document id, which equals the owner id.
func (c *Cart) ID() string {
	return c.ownerID
}

// OwnerID returns the opaque id of the cart's owner.
func (c *Cart) OwnerID() string {
	return c.ownerID
}

// Items returns the cart lines. The slice is a copy; the lines themselves
// are the aggregate's and must only be mutated through cart methods.
func (c *Cart) Items() []*Item {
	items := make([]*Item, len(c.items))
	copy(items, c.items)
	return items
}

// Subtotal returns the sum of all line totals.
func (c *Cart) Subtotal() kernel.Money {
	return c.subtotal
}

// Total returns the amount the customer pays. Equal to Subtotal until tax
// or discounts are introduced.
func (c *Cart) Total() kernel.Money {
	return c.total
}

// CreatedAt returns when the cart was first created.
func (c *Cart) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns when the cart was last mutated.
func (c *Cart) UpdatedAt() time.Time {
	return c.updatedAt
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// AddItem merges a new line into the cart. If a line with the same
// (productID, sizeVariant) already exists its quantity is incremented by
// the new item's quantity; otherwise the item is appended as a new line
// with the fresh line id it was constructed with. Totals are recomputed.
func (c *Cart) AddItem(item *Item, now time.Time) error {
	if err := item.Validate(); err != nil {
		return err
	}

	for _, existing := range c.items {
		if existing.MergesWith(item) {
			existing.quantity += item.quantity
			c.touch(now)
			return nil
		}
	}

	c.items = append(c.items, item)
	c.touch(now)
	return nil
}

// SetQuantity replaces the quantity of the line with the given id.
// If no line matches, the call is a no-op: it neither fails nor creates a
// line. The quantity may be set to zero or negative without removing the
// line; removal is RemoveItem's job.
func (c *Cart) SetQuantity(lineID kernel.UUID, quantity int, now time.Time) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	for _, item := range c.items {
		if item.id.IsEqual(lineID) {
			item.quantity = quantity
			c.touch(now)
			return nil
		}
	}

	return nil
}

// RemoveItem deletes the line with the given id. A missing line is a
// no-op, not an error.
func (c *Cart) RemoveItem(lineID kernel.UUID, now time.Time) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	for idx, item := range c.items {
		if item.id.IsEqual(lineID) {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
			c.touch(now)
			return nil
		}
	}

	return nil
}

// touch recomputes totals and stamps the mutation time.
func (c *Cart) touch(now time.Time) {
	c.recomputeTotals()
	c.updatedAt = now
}

func (c *Cart) recomputeTotals() {
	subtotal := kernel.Zero()
	for _, item := range c.items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	c.subtotal = subtotal
	c.total = subtotal
}
