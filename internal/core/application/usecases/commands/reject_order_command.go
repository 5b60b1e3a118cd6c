package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand represents the assigned master declining the job on
// site. The reason is mandatory and the call-out fee becomes the payable
// amount of the order.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	actingActorID kernel.UUID
	reason        string
	calloutFee    kernel.Money

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a command to reject an in-progress order.
// Returns an error if any identifier is invalid.
func NewRejectOrderCommand(
	orderID kernel.UUID,
	actingActorID kernel.UUID,
	reason string,
	calloutFee kernel.Money,
) (RejectOrderCommand, error) {
	rejectCommand := RejectOrderCommand{
		reason:     reason,
		calloutFee: calloutFee,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rejectCommand.setOrderID(orderID),
		rejectCommand.setActingActorID(actingActorID),
	); err != nil {
		return RejectOrderCommand{}, err
	}

	return rejectCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRejectOrderCommandIsNotConstructed if validation fails.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c RejectOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActingActorID returns the identifier of the actor issuing the command.
func (c RejectOrderCommand) ActingActorID() kernel.UUID {
	return c.actingActorID
}

// Reason returns the rejection reason text.
func (c RejectOrderCommand) Reason() string {
	return c.reason
}

// CalloutFee returns the amount payable for the wasted visit.
func (c RejectOrderCommand) CalloutFee() kernel.Money {
	return c.calloutFee
}

func (c *RejectOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RejectOrderCommand) setActingActorID(actingActorID kernel.UUID) error {
	if err := actingActorID.Validate(); err != nil {
		return err
	}

	c.actingActorID = actingActorID
	return nil
}
