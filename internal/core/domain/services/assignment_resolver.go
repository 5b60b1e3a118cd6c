package services

import (
	"fmt"

	"dispatch/internal/core/domain/model/actor"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// AssignmentResolver is a domain service that decides the effective semantics
// of an assign operation and who becomes the order's worker.
//
// Two modes:
//   - Manual assignment: dispatch staff name an explicit target worker. The
//     target must hold a master-tier role and be active; the staff member's
//     own claiming eligibility is irrelevant.
//   - Self-claim: a master-tier actor claims a pending order for themself.
//     Senior masters claim from the whole pool, premium masters only from
//     orders flagged premium, base masters not at all.
//
// The resolver validates against the order snapshot it is given. The snapshot
// may be stale: the authoritative serialization point for concurrent claims
// is the repository, and callers must be prepared for the subsequent write to
// fail with order.ErrAlreadyAssigned even after Resolve succeeded.
type AssignmentResolver struct{}

// NewAssignmentResolver creates a new AssignmentResolver instance.
func NewAssignmentResolver() AssignmentResolver {
	return AssignmentResolver{}
}

// Resolve determines the worker to attach to the order.
//
// Parameters:
//   - act: the acting actor
//   - ord: the order being assigned
//   - target: the explicit target worker for manual assignment, or nil for a
//     self-claim by the acting actor
//
// Returns the resolved worker ID, or:
//   - ErrForbidden if the actor may not perform this kind of assignment, or
//     the target is not an active master
//   - order.ErrAlreadyAssigned if the order already carries a worker
//   - order.ErrInvalidTransition if the order is not claimable at all
func (r AssignmentResolver) Resolve(act *actor.Actor, ord *order.Order, target *actor.Actor) (kernel.UUID, error) {
	if err := act.Validate(); err != nil {
		return kernel.UUID{}, err
	}
	if err := ord.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	if _, err := ord.Status().Assign(); err != nil {
		return kernel.UUID{}, err
	}

	if target != nil {
		return r.resolveManual(act, target)
	}

	return r.resolveSelfClaim(act, ord)
}

// resolveManual handles an explicit assignment by dispatch staff.
func (r AssignmentResolver) resolveManual(act *actor.Actor, target *actor.Actor) (kernel.UUID, error) {
	if !act.Role().CanManage() {
		return kernel.UUID{}, fmt.Errorf(
			"%w: role %s may not assign a worker manually", ErrForbidden, act.Role())
	}

	if err := target.Validate(); err != nil {
		return kernel.UUID{}, err
	}
	if !target.Role().IsMasterTier() {
		return kernel.UUID{}, fmt.Errorf(
			"%w: %s holds role %s and cannot be a worker", ErrForbidden, target.FullName(), target.Role())
	}
	if !target.IsActive() {
		return kernel.UUID{}, fmt.Errorf(
			"%w: %s is not an active master", ErrForbidden, target.FullName())
	}

	return target.ID(), nil
}

// resolveSelfClaim handles a master claiming the order for themself.
func (r AssignmentResolver) resolveSelfClaim(act *actor.Actor, ord *order.Order) (kernel.UUID, error) {
	if !act.Role().CanSelfClaim() {
		return kernel.UUID{}, fmt.Errorf(
			"%w: role %s may not claim orders from the pool", ErrForbidden, act.Role())
	}
	if !act.IsActive() {
		return kernel.UUID{}, fmt.Errorf(
			"%w: %s is not an active master", ErrForbidden, act.FullName())
	}
	if act.Role() == actor.PremiumMaster && !ord.IsPremium() {
		return kernel.UUID{}, fmt.Errorf(
			"%w: role %s may only claim premium orders", ErrForbidden, act.Role())
	}

	return act.ID(), nil
}
