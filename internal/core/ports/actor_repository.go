// Package ports defines repository interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/actor"
	"dispatch/internal/core/domain/model/kernel"
)

// ActorRepository defines the persistence contract for actor aggregates.
// Provides methods for storing, retrieving, and querying actor entities
// with their role, commission rate, and category affiliation.
type ActorRepository interface {
	// Add persists a new actor aggregate to storage.
	// The actor must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *actor.Actor) error

	// Update persists changes to an existing actor aggregate.
	// The actor must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *actor.Actor) error

	// Get retrieves an actor aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error)

	// GetAllActiveMasters retrieves every active master-tier actor. Dispatch
	// staff use the result to pick a target for manual assignment; dismissed
	// masters are excluded.
	GetAllActiveMasters(ctx context.Context) ([]*actor.Actor, error)
}
