package commands

import "errors"

var ErrDispatchCourierCommandIsNotConstructed = errors.New(
	"DispatchCourierCommand must be created via NewDispatchCourierCommand constructor",
)

// DispatchCourierCommand represents a request to offer the oldest awaiting
// order to the best available courier. The command carries no data; the
// handler discovers the order and the candidates itself. Used by the
// background dispatch job.
type DispatchCourierCommand struct {
	isSet bool
}

// NewDispatchCourierCommand creates a dispatch command.
func NewDispatchCourierCommand() DispatchCourierCommand {
	return DispatchCourierCommand{isSet: true}
}

// Validate ensures the command was created through the constructor.
func (c DispatchCourierCommand) Validate() error {
	if !c.isSet {
		return ErrDispatchCourierCommandIsNotConstructed
	}
	return nil
}
