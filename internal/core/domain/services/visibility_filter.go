package services

import (
	"dispatch/internal/core/domain/model/actor"
	"dispatch/internal/core/domain/model/order"
)

// VisibilityFilter is a domain service that computes, for a given actor, the
// subset of orders that actor is allowed to observe.
//
// Visibility rules by role:
//   - Admin, Support: every order, unconditionally
//   - SeniorMaster: the pending pool plus their own assignments
//   - PremiumMaster: their own assignments plus pending orders flagged premium
//   - Master: only their own assignments
//   - Anything else: nothing (fail-closed)
//
// The filter is a pure projection over current order state and actor
// identity. It keeps no membership lists, so the result is re-derivable at
// any time; search and status-tab filtering are caller concerns layered on
// top of it.
type VisibilityFilter struct{}

// NewVisibilityFilter creates a new VisibilityFilter instance.
func NewVisibilityFilter() VisibilityFilter {
	return VisibilityFilter{}
}

// FilterVisible returns the orders the actor may see, preserving the input
// order. An invalid or unconstructed actor sees nothing.
func (f VisibilityFilter) FilterVisible(act *actor.Actor, orders []*order.Order) []*order.Order {
	if err := act.Validate(); err != nil {
		return nil
	}

	visible := make([]*order.Order, 0, len(orders))
	for _, ord := range orders {
		if ord == nil {
			continue
		}
		if f.canSee(act, ord) {
			visible = append(visible, ord)
		}
	}

	return visible
}

// canSee applies the per-role visibility rule to a single order.
func (f VisibilityFilter) canSee(act *actor.Actor, ord *order.Order) bool {
	switch act.Role() {
	case actor.Admin, actor.Support:
		return true
	case actor.SeniorMaster:
		return ord.Status() == order.Pending || f.isAssignedTo(ord, act)
	case actor.PremiumMaster:
		return f.isAssignedTo(ord, act) || (ord.Status() == order.Pending && ord.IsPremium())
	case actor.Master:
		return f.isAssignedTo(ord, act)
	case actor.Unknown:
		return false
	}

	return false
}

// isAssignedTo reports whether the order's worker is the given actor.
func (f VisibilityFilter) isAssignedTo(ord *order.Order, act *actor.Actor) bool {
	worker := ord.Worker()
	return worker != nil && worker.IsEqual(act.ID())
}
