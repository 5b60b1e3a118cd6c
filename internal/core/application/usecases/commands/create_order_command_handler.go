package commands

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order intake.
// Creates new orders in Pending status with no worker attached; only
// dispatch staff may perform intake.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(orderID, staffID, name, phone, address, problem, nil, price, false)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now pending and visible to the claiming tiers
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order intake operations.
// Requires a UoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Loads the acting actor, checks the management gate, and persists the new
// order in Pending status. Uses a transaction to ensure the order is properly
// persisted or rolled back on error.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	act, err := uow.ActorRepository().Get(ctx, cmd.ActingActorID())
	if err != nil {
		return err
	}
	if !act.Role().CanManage() {
		return fmt.Errorf("%w: role %s may not create orders", services.ErrForbidden, act.Role())
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.ClientName(),
		cmd.ClientPhone(),
		cmd.Address(),
		cmd.Problem(),
		cmd.CategoryID(),
		cmd.Price(),
		cmd.IsPremium(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
