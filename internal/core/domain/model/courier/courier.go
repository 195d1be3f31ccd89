package courier

import (
	"errors"

	"cafedelivery/internal/core/domain/model/kernel"
	"cafedelivery/internal/pkg/errs"
	"cafedelivery/internal/pkg/guard"
)

const (
	// ratingMin and ratingMax bound the courier rating scale.
	ratingMin = 0.0
	ratingMax = 5.0
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a courier without a phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery courier in the system.
// It is an aggregate root that manages courier identity, availability, and
// the running count of completed deliveries.
//
// Business rules:
//   - Courier must have a valid UUID, non-empty name, and non-empty phone
//   - Rating stays within the 0..5 scale
//   - The completed-deliveries counter only ever increases, by exactly one
//     per delivered order
//   - Only available couriers are offered new deliveries; availability is
//     toggled explicitly and is not changed by accepting or completing one
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// phone is the courier's contact phone, shown to the customer en route
	phone string
	// photoRef is an optional reference to the courier's photo
	photoRef string
	// available marks whether the courier is taking new deliveries
	available bool
	// rating is the courier's average rating on a 0..5 scale
	rating float64
	// deliveriesCompleted counts orders this courier has delivered
	deliveriesCompleted int
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new Courier with the specified parameters.
// This is the only way to create a fresh Courier instance.
//
// A new courier starts unavailable with zero completed deliveries; an
// operator flips availability once the courier is on shift.
func NewCourier(id kernel.UUID, name string, phone string, photoRef string, rating float64) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setPhone(phone),
		courier.setRating(rating),
	); err != nil {
		return nil, err
	}

	courier.photoRef = photoRef
	return courier, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage,
// including its availability and delivery counter. The restored courier
// behaves identically to one created through normal domain operations.
func RestoreCourier(
	id kernel.UUID,
	name string,
	phone string,
	photoRef string,
	available bool,
	rating float64,
	deliveriesCompleted int,
) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setPhone(phone),
		courier.setRating(rating),
		courier.setDeliveriesCompleted(deliveriesCompleted),
	); err != nil {
		return nil, err
	}

	courier.photoRef = photoRef
	courier.available = available
	return courier, nil
}

// IsEqual compares two couriers for equality based on their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks if the Courier was properly constructed via a constructor.
// The zero value of Courier is invalid and will fail this validation.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the unique identifier of the courier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the human-readable name of the courier.
func (c *Courier) Name() string {
	return c.name
}

// Phone returns the courier's contact phone.
func (c *Courier) Phone() string {
	return c.phone
}

// PhotoRef returns the optional reference to the courier's photo.
func (c *Courier) PhotoRef() string {
	return c.photoRef
}

// IsAvailable reports whether the courier is taking new deliveries.
func (c *Courier) IsAvailable() bool {
	return c.available
}

// Rating returns the courier's average rating on a 0..5 scale.
func (c *Courier) Rating() float64 {
	return c.rating
}

// DeliveriesCompleted returns the number of orders this courier has delivered.
func (c *Courier) DeliveriesCompleted() int {
	return c.deliveriesCompleted
}

// SetAvailability toggles whether the courier is offered new deliveries.
func (c *Courier) SetAvailability(available bool) {
	c.available = available
}

// RecordDelivery increments the completed-deliveries counter by one.
// Called exactly once per delivered order, in the same transaction that
// marks the order delivered.
func (c *Courier) RecordDelivery() {
	c.deliveriesCompleted++
}

// setID sets the courier's unique identifier with validation.
func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

// setName sets the courier's name with validation.
func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

// setPhone sets the courier's contact phone with validation.
func (c *Courier) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

// setRating sets the courier's rating, keeping it on the 0..5 scale.
func (c *Courier) setRating(rating float64) error {
	if rating < ratingMin || rating > ratingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, ratingMin, ratingMax)
	}

	c.rating = rating
	return nil
}

// setDeliveriesCompleted restores the delivery counter from storage.
func (c *Courier) setDeliveriesCompleted(deliveriesCompleted int) error {
	if deliveriesCompleted < 0 {
		return errs.NewValueIsInvalidError("deliveriesCompleted")
	}

	c.deliveriesCompleted = deliveriesCompleted
	return nil
}
