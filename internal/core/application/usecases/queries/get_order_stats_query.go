package queries

import (
	"errors"

	"cafedelivery/internal/core/domain/model/order"
	"cafedelivery/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery tallies orders per lifecycle status for the admin
// dashboard. This is a parameterless query.
type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates an order statistics query.
func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// GetOrderStatsQueryResponse holds per-status order counts. Counts are
// indexed by status ordinal, so every status is present even at zero; the
// Unknown slot stays zero because invalid statuses are never persisted.
type GetOrderStatsQueryResponse struct {
	Counts [order.StatusCount]int
	Total  int
}

// CountFor returns the number of orders in the given status.
func (r GetOrderStatsQueryResponse) CountFor(status order.Status) int {
	if int(status) < 0 || int(status) >= order.StatusCount {
		return 0
	}
	return r.Counts[status]
}
