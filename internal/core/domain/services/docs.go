// Package services provides domain services that orchestrate business
// operations across multiple aggregates. It implements business workflows
// that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - CourierDispatcher: A domain service for offering an awaiting order to
//     the best available courier
package services
