// Package kernel contains shared value objects used across the domain model:
// UUID identifiers, monetary amounts, and delivery addresses.
//
// All kernel types are immutable value objects. Zero values are invalid and
// must be created through the provided constructor functions; Validate
// detects instances that bypassed them.
package kernel
