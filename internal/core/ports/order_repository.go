package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The implementation is an external collaborator (postgres in production).
type OrderRepository interface {
	// Add persists a newly created order aggregate.
	// This service never updates an existing order, so Add must be called
	// exactly once per aggregate; inserting a duplicate identity is a
	// storage failure, not an upsert.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an error wrapping errs.ErrObjectNotFound when no order with
	// the given id exists; absence is an expected outcome the caller must
	// handle, not a storage failure.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
