package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrModernizeOrderCommandIsNotConstructed = errors.New(
	"ModernizeOrderCommand must be created via NewModernizeOrderCommand constructor",
)

// ModernizeOrderCommand represents the assigned master sending the order
// back to the client for rework approval. The reason is mandatory; the
// aggregate rejects an empty one with order.ErrInvalidPayload.
type ModernizeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	actingActorID kernel.UUID
	reason        string

	guard guard.ConstructorGuard
}

// NewModernizeOrderCommand creates a command to move an order into
// modernization. Returns an error if any identifier is invalid.
func NewModernizeOrderCommand(
	orderID kernel.UUID,
	actingActorID kernel.UUID,
	reason string,
) (ModernizeOrderCommand, error) {
	modernizeCommand := ModernizeOrderCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		modernizeCommand.setOrderID(orderID),
		modernizeCommand.setActingActorID(actingActorID),
	); err != nil {
		return ModernizeOrderCommand{}, err
	}

	return modernizeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrModernizeOrderCommandIsNotConstructed if validation fails.
func (c ModernizeOrderCommand) Validate() error {
	return c.guard.Validate(ErrModernizeOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c ModernizeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActingActorID returns the identifier of the actor issuing the command.
func (c ModernizeOrderCommand) ActingActorID() kernel.UUID {
	return c.actingActorID
}

// Reason returns the modernization reason text.
func (c ModernizeOrderCommand) Reason() string {
	return c.reason
}

func (c *ModernizeOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ModernizeOrderCommand) setActingActorID(actingActorID kernel.UUID) error {
	if err := actingActorID.Validate(); err != nil {
		return err
	}

	c.actingActorID = actingActorID
	return nil
}
