package services

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/actor"
	"dispatch/internal/core/domain/model/order"
)

// ErrForbidden is returned when an actor's role or identity does not satisfy
// the gate for the attempted operation. Like order.ErrInvalidTransition it
// signals a caller bug and must be surfaced, never retried.
var ErrForbidden = errors.New("actor is not permitted to perform this operation")

// TransitionPolicy is a domain service that gates status transitions on the
// acting actor. The order aggregate owns the lifecycle table and payload
// rules; this service owns the question of who may walk each edge.
//
// Gates per target status:
//   - Assigned: dispatch staff, or a self-claiming tier (eligibility details
//     are the AssignmentResolver's concern)
//   - InProgress, Completed, Modernization, Rejected: the assigned worker only
//   - Cancelled: dispatch staff only
//
// Checks run in a fixed priority: edge validity first, then the role and
// identity gate. An illegal edge therefore reports order.ErrInvalidTransition
// (or order.ErrAlreadyAssigned for a lost claim race) even when the actor
// would also have failed the gate.
type TransitionPolicy struct{}

// NewTransitionPolicy creates a new TransitionPolicy instance.
func NewTransitionPolicy() TransitionPolicy {
	return TransitionPolicy{}
}

// Authorize checks whether the actor may move the order to the given status.
//
// Returns:
//   - order.ErrInvalidTransition if the edge is not in the lifecycle table
//   - order.ErrAlreadyAssigned if the order is no longer claimable
//   - ErrForbidden if the edge exists but the actor fails its gate
//   - nil when the transition may proceed
func (p TransitionPolicy) Authorize(act *actor.Actor, ord *order.Order, to order.Status) error {
	if err := act.Validate(); err != nil {
		return err
	}
	if err := ord.Validate(); err != nil {
		return err
	}

	if err := p.validateEdge(ord.Status(), to); err != nil {
		return err
	}

	switch to {
	case order.Assigned:
		if act.Role().CanManage() || act.Role().CanSelfClaim() {
			return nil
		}
		return fmt.Errorf("%w: role %s may not assign orders", ErrForbidden, act.Role())
	case order.InProgress, order.Completed, order.Modernization, order.Rejected:
		return p.requireAssignedWorker(act, ord, to)
	case order.Cancelled:
		if act.Role().CanManage() {
			return nil
		}
		return fmt.Errorf("%w: role %s may not cancel orders", ErrForbidden, act.Role())
	case order.Pending, order.Unknown:
		return fmt.Errorf("%w: %s -> %s", order.ErrInvalidTransition, ord.Status(), to)
	}

	return fmt.Errorf("%w: %s -> %s", order.ErrInvalidTransition, ord.Status(), to)
}

// validateEdge replays the target transition against the current status,
// discarding the result. This keeps the lifecycle table in exactly one place.
func (p TransitionPolicy) validateEdge(from order.Status, to order.Status) error {
	switch to {
	case order.Assigned:
		_, err := from.Assign()
		return err
	case order.InProgress:
		// InProgress is reachable through two edges: starting work and
		// resuming after modernization.
		if _, err := from.Start(); err == nil {
			return nil
		}
		_, err := from.Resume()
		return err
	case order.Completed:
		_, err := from.Complete()
		return err
	case order.Modernization:
		_, err := from.Modernize()
		return err
	case order.Rejected:
		_, err := from.Reject()
		return err
	case order.Cancelled:
		_, err := from.Cancel()
		return err
	case order.Pending, order.Unknown:
		return fmt.Errorf("%w: %s -> %s", order.ErrInvalidTransition, from, to)
	}

	return fmt.Errorf("%w: %s -> %s", order.ErrInvalidTransition, from, to)
}

// requireAssignedWorker enforces the identity gate on worker-only edges.
func (p TransitionPolicy) requireAssignedWorker(act *actor.Actor, ord *order.Order, to order.Status) error {
	worker := ord.Worker()
	if worker == nil || !worker.IsEqual(act.ID()) {
		return fmt.Errorf("%w: only the assigned worker may move an order to %s", ErrForbidden, to)
	}

	return nil
}
