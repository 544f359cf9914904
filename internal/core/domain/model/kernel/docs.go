// Package kernel provides shared domain primitives used across aggregates.
//
// The package includes:
//   - UUID: a validated wrapper around github.com/google/uuid used as
//     aggregate identity
//   - Money: an exact-decimal, non-negative monetary amount built on
//     github.com/shopspring/decimal
//
// Both types are immutable value objects: the zero value is invalid and
// instances must be created through the provided constructor functions.
package kernel
