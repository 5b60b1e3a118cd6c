package actor

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrActorIsNotConstructed is returned when an Actor instance was not created
	// through the NewActor or RestoreActor factory methods.
	ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor or RestoreActor constructor")
)

// Actor represents a user of the dispatch system: dispatch staff or a
// technician ("master"). It is the aggregate root that owns the actor's role
// and commission rate.
//
// Actor follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty full name
//   - Role must be one of the defined roles
//   - Commission rate is validated at construction (profile load time)
//   - Can only be created through NewActor or RestoreActor
//
// The commission rate lives on the actor record, not on orders: it is the
// single source of truth for payout derivation at completion.
type Actor struct {
	// id is the unique identifier for the actor
	id kernel.UUID

	// fullName is the actor's display name
	fullName string

	// phone is the actor's contact number (free text)
	phone string

	// role determines the actor's dispatch capabilities
	role Role

	// commissionRate is the platform share withheld from completed orders
	commissionRate CommissionRate

	// categoryID is the problem category the master is qualified for (nil for staff)
	categoryID *kernel.UUID

	// isActive is false for dismissed actors; inactive masters cannot receive work
	isActive bool

	// isConstructed ensures the actor was created via a constructor
	isConstructed bool
}

// NewActor creates a new active Actor with validation. This is the only way,
// besides RestoreActor, to obtain a valid Actor.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - fullName: display name (must be non-empty)
//   - phone: contact number (free text, may be empty)
//   - role: one of the defined roles
//   - commissionRate: platform share, already range-checked by NewCommissionRate
//
// Returns the created actor, or a validation error if any parameter is invalid.
func NewActor(
	id kernel.UUID,
	fullName string,
	phone string,
	role Role,
	commissionRate CommissionRate,
) (*Actor, error) {
	actor := &Actor{
		phone:          phone,
		commissionRate: commissionRate,
		isActive:       true,
		isConstructed:  true,
	}

	if err := errors.Join(
		actor.setID(id),
		actor.setFullName(fullName),
		actor.setRole(role),
	); err != nil {
		return nil, err
	}

	return actor, nil
}

// RestoreActor reconstructs an Actor from persistence, including state that
// NewActor does not accept: category affiliation and the active flag.
func RestoreActor(
	id kernel.UUID,
	fullName string,
	phone string,
	role Role,
	commissionRate CommissionRate,
	categoryID *kernel.UUID,
	isActive bool,
) (*Actor, error) {
	actor, err := NewActor(id, fullName, phone, role, commissionRate)
	if err != nil {
		return nil, err
	}

	if categoryID != nil {
		if err := categoryID.Validate(); err != nil {
			return nil, err
		}
		actor.categoryID = categoryID
	}
	actor.isActive = isActive

	return actor, nil
}

// Validate ensures the Actor instance was properly constructed.
// Returns ErrActorIsNotConstructed otherwise.
func (a *Actor) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrActorIsNotConstructed
	}

	return nil
}

// IsEqual compares two actors by their unique identifiers.
func (a *Actor) IsEqual(other *Actor) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the actor's unique identifier.
func (a *Actor) ID() kernel.UUID {
	return a.id
}

// FullName returns the actor's display name.
func (a *Actor) FullName() string {
	return a.fullName
}

// Phone returns the actor's contact number.
func (a *Actor) Phone() string {
	return a.phone
}

// Role returns the actor's role.
func (a *Actor) Role() Role {
	return a.role
}

// CommissionRate returns the actor's commission rate.
func (a *Actor) CommissionRate() CommissionRate {
	return a.commissionRate
}

// CategoryID returns the master's category affiliation.
// Returns nil for actors without one.
func (a *Actor) CategoryID() *kernel.UUID {
	return a.categoryID
}

// IsActive reports whether the actor may participate in dispatch.
// Dismissed masters stay on record but cannot be assigned work.
func (a *Actor) IsActive() bool {
	return a.isActive
}

// setID validates and sets the actor's unique identifier.
func (a *Actor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

// setFullName validates and sets the actor's display name.
func (a *Actor) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	a.fullName = fullName
	return nil
}

// setRole validates and sets the actor's role.
func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
