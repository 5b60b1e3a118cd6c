package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// StartWorkCommandHandler moves an assigned order into InProgress when the
// assigned master arrives on site. Only the assigned worker passes the gate.
type StartWorkCommandHandler struct {
	uowFactory UoWFactory
	policy     services.TransitionPolicy
}

// NewStartWorkCommandHandler creates a handler for the start-work transition.
// Requires a UoWFactory for transactional persistence.
func NewStartWorkCommandHandler(uowFactory UoWFactory) StartWorkCommandHandler {
	return StartWorkCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewTransitionPolicy(),
	}
}

// Handle processes the start-work command.
// Loads the acting actor and the order, authorizes the edge, applies the
// transition, and persists the updated order.
func (h StartWorkCommandHandler) Handle(ctx context.Context, command StartWorkCommand) error {
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

	if err = h.policy.Authorize(act, ord, order.InProgress); err != nil {
		return err
	}

	if err = ord.Start(); err != nil {
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
