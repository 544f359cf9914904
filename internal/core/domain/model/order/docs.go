// Package order provides the domain model for food-delivery orders.
// It implements the Order aggregate root together with the value objects that
// make up an order.
//
// The package includes:
//   - Order: the aggregate root combining identity, items, delivery details,
//     status, and pricing
//   - Item: an immutable dish line with quantity and captured unit price
//   - DeliveryInfo: recipient name, validated mobile number, and address
//   - Pricing: the monetary breakdown with its sum invariant
//   - Status: the order lifecycle state (only Created is produced here)
//
// Key business rules:
//   - Orders must contain at least one item; every item quantity is >= 1
//   - finalAmount always equals itemsTotal + packagingFee + deliveryFee,
//     with exact decimal arithmetic
//   - Ownership (userID) is fixed at creation and never reassigned
//   - Orders are constructed exactly once and never mutated afterwards
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order
