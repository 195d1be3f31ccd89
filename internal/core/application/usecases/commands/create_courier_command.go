package commands

import (
	"errors"

	"cafedelivery/internal/core/domain/model/kernel"
	"cafedelivery/internal/pkg/errs"
	"cafedelivery/internal/pkg/guard"
)

var (
	ErrCreateCourierCommandIsNotConstructed = errors.New(
		"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
	)
	ErrCourierNameIsRequired  = errs.NewValueIsRequiredError("name")
	ErrCourierPhoneIsRequired = errs.NewValueIsRequiredError("phone")
)

// CreateCourierCommand represents a request to register a new courier.
//
// Example:
//
//	cmd, err := NewCreateCourierCommand(kernel.NewUUID(), "Alice", "+54 11 5555-0001", "photos/alice.jpg", 5.0)
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
//
//	handler := NewCreateCourierCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create courier: %w", err)
//	}
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	name      string
	phone     string
	photoRef  string
	rating    float64

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a courier.
// The rating is validated later by the aggregate; name and phone must be set.
func NewCreateCourierCommand(
	courierID kernel.UUID,
	name string,
	phone string,
	photoRef string,
	rating float64,
) (CreateCourierCommand, error) {
	command := CreateCourierCommand{
		photoRef: photoRef,
		rating:   rating,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setName(name),
		command.setPhone(phone),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// CourierID returns the identifier for the new courier.
func (c CreateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Name returns the courier's display name.
func (c CreateCourierCommand) Name() string {
	return c.name
}

// Phone returns the courier's contact phone.
func (c CreateCourierCommand) Phone() string {
	return c.phone
}

// PhotoRef returns the optional photo reference.
func (c CreateCourierCommand) PhotoRef() string {
	return c.photoRef
}

// Rating returns the courier's starting rating.
func (c CreateCourierCommand) Rating() float64 {
	return c.rating
}

func (c *CreateCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *CreateCourierCommand) setName(name string) error {
	if name == "" {
		return ErrCourierNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCourierCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrCourierPhoneIsRequired
	}

	c.phone = phone
	return nil
}
