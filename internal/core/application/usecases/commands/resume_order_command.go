package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrResumeOrderCommandIsNotConstructed = errors.New(
	"ResumeOrderCommand must be created via NewResumeOrderCommand constructor",
)

// ResumeOrderCommand represents the assigned master bringing a modernization
// order back into InProgress after the client approved the rework.
type ResumeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	actingActorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResumeOrderCommand creates a command to resume a modernization order.
// Returns an error if any identifier is invalid.
func NewResumeOrderCommand(orderID kernel.UUID, actingActorID kernel.UUID) (ResumeOrderCommand, error) {
	resumeCommand := ResumeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		resumeCommand.setOrderID(orderID),
		resumeCommand.setActingActorID(actingActorID),
	); err != nil {
		return ResumeOrderCommand{}, err
	}

	return resumeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrResumeOrderCommandIsNotConstructed if validation fails.
func (c ResumeOrderCommand) Validate() error {
	return c.guard.Validate(ErrResumeOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c ResumeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActingActorID returns the identifier of the actor issuing the command.
func (c ResumeOrderCommand) ActingActorID() kernel.UUID {
	return c.actingActorID
}

func (c *ResumeOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ResumeOrderCommand) setActingActorID(actingActorID kernel.UUID) error {
	if err := actingActorID.Validate(); err != nil {
		return err
	}

	c.actingActorID = actingActorID
	return nil
}
