package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// CancelOrderCommandHandler withdraws an assigned or in-progress order. Only
// dispatch staff pass the gate; the assigned master is released in the same
// transition.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	policy     services.TransitionPolicy
}

// NewCancelOrderCommandHandler creates a handler for the cancellation
// transition. Requires a UoWFactory for transactional persistence.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewTransitionPolicy(),
	}
}

// Handle processes the cancellation command.
// Loads the acting actor and the order, authorizes the edge, applies the
// transition with its optional reason, and persists the updated order.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
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

	act, err := uow.ActorRepository().Get(ctx, command.ActingActorID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = h.policy.Authorize(act, ord, order.Cancelled); err != nil {
		return err
	}

	if err = ord.Cancel(command.Reason()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
