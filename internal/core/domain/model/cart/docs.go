// Package cart implements the shopping cart aggregate.
//
// A customer has exactly one cart at a time, keyed by owner id. Lines are
// merged by (product, size variant): adding the same product and size twice
// produces one line with the summed quantity, never two lines. After every
// mutation the cart recomputes its totals, so subtotal and total are always
// consistent with the item list.
//
// Setting a line quantity to zero or below does not remove the line; removal
// is a distinct explicit operation. Lines with non-positive quantity simply
// contribute nothing to the totals.
package cart
