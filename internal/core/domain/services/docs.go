// Package services provides domain services for order placement that don't
// naturally belong to a single aggregate root.
//
// The package includes:
//   - PricingCalculator: computes the order pricing breakdown from items and
//     a pluggable FeePolicy
//   - FixedFeePolicy: a flat-fee FeePolicy configured at startup
//   - OrderNumberGenerator: produces date-prefixed, monotonic human-facing
//     order numbers
package services
