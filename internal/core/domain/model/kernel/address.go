package kernel

import (
	"errors"
	"fmt"

	"cafedelivery/internal/pkg/errs"
	"cafedelivery/internal/pkg/guard"
)

// Validation errors for delivery addresses.
var (
	// ErrStreetIsRequired is returned when the street line is empty.
	ErrStreetIsRequired = errs.NewValueIsRequiredError("street")
	// ErrCityIsRequired is returned when the city is empty.
	ErrCityIsRequired = errs.NewValueIsRequiredError("city")
	// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
	ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")
)

// Address is the delivery destination captured at checkout. It is an
// immutable value object; an order keeps the address it was created with
// even if the customer later edits their saved addresses.
type Address struct {
	street    string
	city      string
	reference string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated delivery address.
// Street and city are required; reference (apartment, floor, "ring twice")
// is optional free text.
func NewAddress(street, city, reference string) (Address, error) {
	address := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setStreet(street),
		address.setCity(city),
	); err != nil {
		return Address{}, err
	}

	address.reference = reference
	return address, nil
}

// Validate ensures the address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// Reference returns the optional delivery reference note.
func (a Address) Reference() string {
	return a.reference
}

// IsEqual reports whether two addresses have identical fields.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street && a.city == other.city && a.reference == other.reference
}

// String returns a single-line rendering for logs and receipts.
func (a Address) String() string {
	if a.reference == "" {
		return fmt.Sprintf("%s, %s", a.street, a.city)
	}
	return fmt.Sprintf("%s, %s (%s)", a.street, a.city, a.reference)
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return ErrStreetIsRequired
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return ErrCityIsRequired
	}
	a.city = city
	return nil
}
