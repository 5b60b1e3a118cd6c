package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current status and assignment.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order, newest first. Visibility is a domain
	// concern applied on top of this snapshot, so no per-actor filtering
	// happens here.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllInPendingStatus retrieves the unassigned pool, newest first.
	GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error)

	// AssignPending writes the aggregate's Pending -> Assigned claim as a
	// compare-and-swap: the row is updated only if it is still pending in
	// storage. Returns order.ErrAlreadyAssigned when a concurrent claim won
	// the race. This is the single serialization point for claims; callers
	// must not assume the local snapshot they validated is still current.
	AssignPending(ctx context.Context, aggregate *order.Order) error
}
