package services

import (
	"errors"
	"time"

	"cafedelivery/internal/core/domain/model/courier"
	"cafedelivery/internal/core/domain/model/order"
)

// ErrCourierNotFound is returned when no suitable courier is available for
// an awaiting order. This occurs when either no couriers are provided or
// none of the provided couriers is currently available.
var ErrCourierNotFound = errors.New("courier not found")

// CourierDispatcher is a domain service that picks the courier an awaiting
// order should be offered to and executes the acceptance.
//
// Business rules:
//   - The order must be valid and in the AwaitingCourier status
//   - Only available couriers are considered
//   - Selection prefers the highest rating, breaking ties by the lowest
//     completed-deliveries count to spread work evenly
type CourierDispatcher struct{}

// NewCourierDispatcher creates a new CourierDispatcher instance.
func NewCourierDispatcher() CourierDispatcher {
	return CourierDispatcher{}
}

// Dispatch selects the best available courier for the order and has them
// accept the delivery, binding the courier to the order and moving it to
// EnRoute. Returns ErrCourierNotFound when no courier is available.
//
// Availability is a selection hint, not a hard invariant: the flag is not
// flipped here, and a courier may carry more than one order at a time.
func (d CourierDispatcher) Dispatch(o *order.Order, couriers []*courier.Courier, now time.Time) (*courier.Courier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	bestCourier, err := d.findBestCourier(couriers)
	if err != nil {
		return nil, err
	}

	if err = o.AcceptDelivery(bestCourier, now); err != nil {
		return nil, err
	}

	return bestCourier, nil
}

// findBestCourier scans the candidates for the available courier with the
// highest rating, breaking ties by the fewest completed deliveries. Returns
// the first match in case of a full tie.
func (d CourierDispatcher) findBestCourier(couriers []*courier.Courier) (*courier.Courier, error) {
	var best *courier.Courier

	for _, candidate := range couriers {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		if !candidate.IsAvailable() {
			continue
		}

		if best == nil ||
			candidate.Rating() > best.Rating() ||
			(candidate.Rating() == best.Rating() && candidate.DeliveriesCompleted() < best.DeliveriesCompleted()) {
			best = candidate
		}
	}

	if best == nil {
		return nil, ErrCourierNotFound
	}

	return best, nil
}
