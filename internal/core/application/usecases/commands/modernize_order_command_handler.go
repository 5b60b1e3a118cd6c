package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// ModernizeOrderCommandHandler moves an in-progress order into Modernization.
// Only the assigned worker passes the gate; the order later re-enters
// InProgress through the resume transition.
type ModernizeOrderCommandHandler struct {
	uowFactory UoWFactory
	policy     services.TransitionPolicy
}

// NewModernizeOrderCommandHandler creates a handler for the modernization
// transition. Requires a UoWFactory for transactional persistence.
func NewModernizeOrderCommandHandler(uowFactory UoWFactory) ModernizeOrderCommandHandler {
	return ModernizeOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewTransitionPolicy(),
	}
}

// Handle processes the modernization command.
// Loads the acting actor and the order, authorizes the edge, applies the
// transition with its reason, and persists the updated order.
func (h ModernizeOrderCommandHandler) Handle(ctx context.Context, command ModernizeOrderCommand) error {
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

	if err = h.policy.Authorize(act, ord, order.Modernization); err != nil {
		return err
	}

	if err = ord.Modernize(command.Reason()); err != nil {
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
