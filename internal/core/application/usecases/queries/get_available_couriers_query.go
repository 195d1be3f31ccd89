package queries

import (
	"errors"

	"cafedelivery/internal/pkg/guard"
)

var ErrGetAvailableCouriersQueryIsNotConstructed = errors.New(
	"GetAvailableCouriersQuery must be created via NewGetAvailableCouriersQuery constructor",
)

// GetAvailableCouriersQuery retrieves all couriers currently on shift.
// This is a parameterless query.
//
// Example:
//
//	query := NewGetAvailableCouriersQuery()
//	handler := NewGetAvailableCouriersQueryHandler(db)
//
//	couriers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get couriers: %w", err)
//	}
//	fmt.Printf("%d couriers on shift\n", len(couriers))
type GetAvailableCouriersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableCouriersQuery creates a query for on-shift couriers.
func NewGetAvailableCouriersQuery() GetAvailableCouriersQuery {
	return GetAvailableCouriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableCouriersQueryIsNotConstructed)
}

// GetAvailableCouriersQueryResponse is the courier read model.
type GetAvailableCouriersQueryResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Phone               string  `json:"phone"`
	PhotoRef            string  `json:"photoRef,omitempty"`
	Rating              float64 `json:"rating"`
	DeliveriesCompleted int     `json:"deliveriesCompleted"`
}
