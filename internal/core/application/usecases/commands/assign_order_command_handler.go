package commands

import (
	"context"

	"dispatch/internal/core/domain/model/actor"
	"dispatch/internal/core/domain/services"
)

// AssignOrderCommandHandler orchestrates order assignment: manual assignment
// by dispatch staff and self-claims by the senior and premium tiers.
//
// The handler validates against the order snapshot it loads, then writes the
// claim through the repository's compare-and-swap. A concurrent claim that
// wins the race surfaces as order.ErrAlreadyAssigned even though local
// validation passed; callers are expected to refresh the pool and move on.
//
// Example:
//
//	handler := NewAssignOrderCommandHandler(uowFactory)
//	cmd, _ := NewAssignOrderCommand(orderID, masterID, nil)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrAlreadyAssigned):
//	    log.Println("Someone else claimed it first")
//	case errors.Is(err, services.ErrForbidden):
//	    log.Println("Not eligible to claim this order")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
	resolver   services.AssignmentResolver
}

// NewAssignOrderCommandHandler creates a handler for assignment operations.
// Requires a UoWFactory for coordinating transactional updates.
func NewAssignOrderCommandHandler(uowFactory UoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		resolver:   services.NewAssignmentResolver(),
	}
}

// Handle processes the assignment command.
// Loads the acting actor, the order, and the optional target worker, resolves
// the effective worker through the AssignmentResolver, and persists the claim
// via the repository compare-and-swap.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, command AssignOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actorRepo := uow.ActorRepository()
	orderRepo := uow.OrderRepository()

	act, err := actorRepo.Get(ctx, command.ActingActorID())
	if err != nil {
		return err
	}

	ord, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	var target *actor.Actor
	if targetID := command.TargetWorkerID(); targetID != nil {
		target, err = actorRepo.Get(ctx, *targetID)
		if err != nil {
			return err
		}
	}

	workerID, err := h.resolver.Resolve(act, ord, target)
	if err != nil {
		return err
	}

	if err = ord.Assign(workerID); err != nil {
		return err
	}

	if err = orderRepo.AssignPending(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
