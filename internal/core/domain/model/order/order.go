package order

import (
	"errors"
	"time"

	"cafedelivery/internal/core/domain/model/cart"
	"cafedelivery/internal/core/domain/model/courier"
	"cafedelivery/internal/core/domain/model/kernel"
	"cafedelivery/internal/pkg/errs"
	"cafedelivery/internal/pkg/guard"
)

// Delivery time estimates. The initial estimate is set at checkout; the
// tighter one replaces it when a courier accepts the delivery.
const (
	initialDeliveryEstimate = 45 * time.Minute
	enRouteDeliveryEstimate = 30 * time.Minute
)

// Domain errors for order operations.
var (
	// ErrOrderOwnerIsRequired is returned when creating an order without an owner id.
	ErrOrderOwnerIsRequired = errs.NewValueIsRequiredError("ownerID")
	// ErrOrderItemsAreRequired is returned when checking out an empty cart.
	ErrOrderItemsAreRequired = errs.NewValueIsRequiredError("items")
	// ErrOrderIsNotConstructed is returned when using an improperly initialized Order.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root for a placed purchase. Items, subtotal, and
// total are frozen at creation; only the status (and, during the EnRoute
// transition, the courier binding) ever changes, and never after a terminal
// status is reached. Orders are never deleted, only cancelled.
type Order struct {
	// id is the unique order identifier
	id kernel.UUID
	// ownerID is the opaque id of the customer who placed the order
	ownerID string
	// items is the by-value snapshot of the cart lines at checkout
	items []cart.Item
	// subtotal and total are frozen copies of the cart totals
	subtotal kernel.Money
	total    kernel.Money
	// deliveryAddress is where the order is delivered
	deliveryAddress kernel.Address
	// paymentMethod is how the customer pays
	paymentMethod PaymentMethod
	// status is the current lifecycle state
	status Status
	// createdAt is the checkout time
	createdAt time.Time
	// estimatedDeliveryAt is the promised delivery time
	estimatedDeliveryAt time.Time
	// notes is optional free text from the customer
	notes string

	// courier binding, set once during AwaitingCourier -> EnRoute
	courierID         *kernel.UUID
	courierName       string
	courierPhone      string
	courierAssignedAt *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order from a cart snapshot at checkout time.
//
// The item list must be non-empty, the address constructed, and the payment
// method valid; any precondition failure aborts with a validation error and
// no order is created. Items are copied by value so later cart mutations
// cannot reach the order. Totals are recomputed from the snapshot, which by
// the cart invariant equals the cart's own totals.
//
// The order starts in Pending with an estimated delivery time of
// createdAt + 45 minutes.
func NewOrder(
	id kernel.UUID,
	ownerID string,
	items []*cart.Item,
	deliveryAddress kernel.Address,
	paymentMethod PaymentMethod,
	notes string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:              Pending,
		createdAt:           now,
		estimatedDeliveryAt: now.Add(initialDeliveryEstimate),
		notes:               notes,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence, including
// its status and courier binding. The binding must be consistent with the
// status: EnRoute and Delivered require a courier, pre-EnRoute statuses
// forbid one.
func RestoreOrder(
	id kernel.UUID,
	ownerID string,
	items []cart.Item,
	deliveryAddress kernel.Address,
	paymentMethod PaymentMethod,
	status Status,
	createdAt time.Time,
	estimatedDeliveryAt time.Time,
	notes string,
	courierID *kernel.UUID,
	courierName string,
	courierPhone string,
	courierAssignedAt *time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
	}

	o := &Order{
		status:              status,
		createdAt:           createdAt,
		estimatedDeliveryAt: estimatedDeliveryAt,
		notes:               notes,
		courierID:           courierID,
		courierName:         courierName,
		courierPhone:        courierPhone,
		courierAssignedAt:   courierAssignedAt,
		guard:               guard.NewConstructorGuard(),
	}

	itemPtrs := make([]*cart.Item, len(items))
	for idx := range items {
		itemPtrs[idx] = &items[idx]
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setItems(itemPtrs),
		o.setDeliveryAddress(deliveryAddress),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the opaque id of the customer who placed the order.
func (o *Order) OwnerID() string {
	return o.ownerID
}

// Items returns a copy of the frozen item snapshot.
func (o *Order) Items() []cart.Item {
	items := make([]cart.Item, len(o.items))
	copy(items, o.items)
	return items
}

// Subtotal returns the frozen subtotal.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// Total returns the frozen total.
func (o *Order) Total() kernel.Money {
	return o.total
}

// DeliveryAddress returns the delivery destination.
func (o *Order) DeliveryAddress() kernel.Address {
	return o.deliveryAddress
}

// PaymentMethod returns how the customer pays.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the checkout time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// EstimatedDeliveryAt returns the promised delivery time.
func (o *Order) EstimatedDeliveryAt() time.Time {
	return o.estimatedDeliveryAt
}

// Notes returns the optional customer note.
func (o *Order) Notes() string {
	return o.notes
}

// CourierID returns the bound courier's id, or nil before EnRoute.
func (o *Order) CourierID() *kernel.UUID {
	return o.courierID
}

// CourierName returns the bound courier's name, empty before EnRoute.
func (o *Order) CourierName() string {
	return o.courierName
}

// CourierPhone returns the bound courier's phone, empty before EnRoute.
func (o *Order) CourierPhone() string {
	return o.courierPhone
}

// CourierAssignedAt returns when the courier accepted, or nil before EnRoute.
func (o *Order) CourierAssignedAt() *time.Time {
	return o.courierAssignedAt
}

// Confirm moves the order Pending -> Confirmed on behalf of the kitchen.
func (o *Order) Confirm(role Role) error {
	newStatus, err := o.status.Confirm(role)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// StartPreparation moves the order Confirmed -> InPreparation.
func (o *Order) StartPreparation(role Role) error {
	newStatus, err := o.status.StartPreparation(role)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ReadyForCourier moves the order InPreparation -> AwaitingCourier, making
// it eligible for courier assignment.
func (o *Order) ReadyForCourier(role Role) error {
	newStatus, err := o.status.ReadyForCourier(role)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AcceptDelivery moves the order AwaitingCourier -> EnRoute and binds the
// accepting courier's current identity in the same step, so the status
// change and the binding are persisted as one update. The delivery estimate
// tightens to now + 30 minutes.
func (o *Order) AcceptDelivery(c *courier.Courier, now time.Time) error {
	if err := c.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.AcceptDelivery(RoleCourier)
	if err != nil {
		return err
	}

	courierID := c.ID()
	o.status = newStatus
	o.courierID = &courierID
	o.courierName = c.Name()
	o.courierPhone = c.Phone()
	o.courierAssignedAt = &now
	o.estimatedDeliveryAt = now.Add(enRouteDeliveryEstimate)
	return nil
}

// CompleteDelivery moves the order EnRoute -> Delivered. The caller is
// responsible for crediting the bound courier's delivery counter in the
// same transaction.
func (o *Order) CompleteDelivery(role Role) error {
	newStatus, err := o.status.CompleteDelivery(role)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel moves the order from any non-terminal status to Cancelled.
func (o *Order) Cancel(role Role) error {
	newStatus, err := o.status.Cancel(role)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return ErrOrderOwnerIsRequired
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setItems(items []*cart.Item) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	snapshot := make([]cart.Item, 0, len(items))
	subtotal := kernel.Zero()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		snapshot = append(snapshot, item.Snapshot())
		subtotal = subtotal.Add(item.LineTotal())
	}

	o.items = snapshot
	o.subtotal = subtotal
	o.total = subtotal
	return nil
}

func (o *Order) setDeliveryAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}
