package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents the assigned master finishing the work.
//
// finalPrice, when set, overrides the quoted price and becomes the amount the
// commission is derived from. privateNote is kept for the caller only: it is
// never persisted or transmitted anywhere by the handler.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	actingActorID kernel.UUID
	finalPrice    *kernel.Money
	privateNote   string

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete an order.
// finalPrice is nil to keep the quoted price. Returns an error if any
// identifier is invalid.
func NewCompleteOrderCommand(
	orderID kernel.UUID,
	actingActorID kernel.UUID,
	finalPrice *kernel.Money,
	privateNote string,
) (CompleteOrderCommand, error) {
	completeCommand := CompleteOrderCommand{
		finalPrice:  finalPrice,
		privateNote: privateNote,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		completeCommand.setOrderID(orderID),
		completeCommand.setActingActorID(actingActorID),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteOrderCommandIsNotConstructed if validation fails.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActingActorID returns the identifier of the actor issuing the command.
func (c CompleteOrderCommand) ActingActorID() kernel.UUID {
	return c.actingActorID
}

// FinalPrice returns the price override, or nil to keep the quoted price.
func (c CompleteOrderCommand) FinalPrice() *kernel.Money {
	return c.finalPrice
}

// PrivateNote returns the master's note. It stays with the caller and is
// never written to storage.
func (c CompleteOrderCommand) PrivateNote() string {
	return c.privateNote
}

func (c *CompleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setActingActorID(actingActorID kernel.UUID) error {
	if err := actingActorID.Validate(); err != nil {
		return err
	}

	c.actingActorID = actingActorID
	return nil
}
