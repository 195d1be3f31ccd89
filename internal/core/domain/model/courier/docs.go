// Package courier contains the Courier aggregate.
//
// A courier is the person who carries an order from the cafe to the
// customer. The aggregate tracks identity and contact details, an
// availability flag the dispatcher consults when offering deliveries, a
// rating on a 0..5 scale, and a monotonic counter of completed deliveries
// credited once per delivered order.
package courier
