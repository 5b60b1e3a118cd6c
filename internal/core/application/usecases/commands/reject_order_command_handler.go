package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// RejectOrderCommandHandler declines an in-progress order on site. The order
// ends up Rejected with the call-out fee as its payable amount. Only the
// assigned worker passes the gate.
type RejectOrderCommandHandler struct {
	uowFactory UoWFactory
	policy     services.TransitionPolicy
}

// NewRejectOrderCommandHandler creates a handler for the rejection
// transition. Requires a UoWFactory for transactional persistence.
func NewRejectOrderCommandHandler(uowFactory UoWFactory) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewTransitionPolicy(),
	}
}

// Handle processes the rejection command.
// Loads the acting actor and the order, authorizes the edge, applies the
// transition with its reason and call-out fee, and persists the updated
// order.
func (h RejectOrderCommandHandler) Handle(ctx context.Context, command RejectOrderCommand) error {
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

	if err = h.policy.Authorize(act, ord, order.Rejected); err != nil {
		return err
	}

	if err = ord.Reject(command.Reason(), command.CalloutFee()); err != nil {
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
