package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// CompleteOrderCommandHandler finishes an in-progress order and derives the
// master's payout from the final price and the acting actor's commission
// rate. Only the assigned worker passes the gate.
//
// Example:
//
//	handler := NewCompleteOrderCommandHandler(uowFactory)
//	cmd, _ := NewCompleteOrderCommand(orderID, masterID, &finalPrice, "spare fan from my own stock")
//	breakdown, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("payout: %s, platform keeps: %s", breakdown.Payout, breakdown.Commission)
type CompleteOrderCommandHandler struct {
	uowFactory UoWFactory
	policy     services.TransitionPolicy
	calculator services.CommissionCalculator
}

// NewCompleteOrderCommandHandler creates a handler for the completion
// transition. Requires a UoWFactory for transactional persistence.
func NewCompleteOrderCommandHandler(uowFactory UoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewTransitionPolicy(),
		calculator: services.NewCommissionCalculator(),
	}
}

// Handle processes the completion command and returns the commission
// breakdown for the finalized price.
//
// The private note on the command is deliberately not persisted: it belongs
// to the master's own records, not to the order.
func (h CompleteOrderCommandHandler) Handle(
	ctx context.Context,
	command CompleteOrderCommand,
) (services.CommissionBreakdown, error) {
	if err := command.Validate(); err != nil {
		return services.CommissionBreakdown{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.CommissionBreakdown{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	act, err := uow.ActorRepository().Get(ctx, command.ActingActorID())
	if err != nil {
		return services.CommissionBreakdown{}, err
	}

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return services.CommissionBreakdown{}, err
	}

	if err = h.policy.Authorize(act, ord, order.Completed); err != nil {
		return services.CommissionBreakdown{}, err
	}

	if err = ord.Complete(command.FinalPrice()); err != nil {
		return services.CommissionBreakdown{}, err
	}

	// The gate guarantees the acting actor is the assigned worker, so the
	// commission rate to apply is theirs.
	breakdown, err := h.calculator.Calculate(ord.Price(), act.CommissionRate())
	if err != nil {
		return services.CommissionBreakdown{}, err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return services.CommissionBreakdown{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.CommissionBreakdown{}, err
	}

	return breakdown, nil
}
