package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrStartWorkCommandIsNotConstructed = errors.New(
	"StartWorkCommand must be created via NewStartWorkCommand constructor",
)

// StartWorkCommand represents the assigned master arriving on site and
// starting work. No payload beyond the identities: the on-site marker is
// implicit in the transition.
type StartWorkCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	actingActorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartWorkCommand creates a command to start work on an assigned order.
// Returns an error if any identifier is invalid.
func NewStartWorkCommand(orderID kernel.UUID, actingActorID kernel.UUID) (StartWorkCommand, error) {
	startCommand := StartWorkCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		startCommand.setOrderID(orderID),
		startCommand.setActingActorID(actingActorID),
	); err != nil {
		return StartWorkCommand{}, err
	}

	return startCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStartWorkCommandIsNotConstructed if validation fails.
func (c StartWorkCommand) Validate() error {
	return c.guard.Validate(ErrStartWorkCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c StartWorkCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActingActorID returns the identifier of the actor issuing the command.
func (c StartWorkCommand) ActingActorID() kernel.UUID {
	return c.actingActorID
}

func (c *StartWorkCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartWorkCommand) setActingActorID(actingActorID kernel.UUID) error {
	if err := actingActorID.Validate(); err != nil {
		return err
	}

	c.actingActorID = actingActorID
	return nil
}
