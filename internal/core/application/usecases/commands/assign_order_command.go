package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand represents a request to attach a worker to a pending
// order. With a target worker ID it is a manual assignment by dispatch staff;
// without one it is a self-claim by the acting actor.
//
// Example:
//
//	// Self-claim by a senior master:
//	cmd, err := NewAssignOrderCommand(orderID, masterID, nil)
//
//	// Manual assignment by support staff:
//	cmd, err := NewAssignOrderCommand(orderID, staffID, &workerID)
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	actingActorID  kernel.UUID
	targetWorkerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to assign or claim an order.
// targetWorkerID is nil for a self-claim. Returns an error if any identifier
// is invalid.
func NewAssignOrderCommand(
	orderID kernel.UUID,
	actingActorID kernel.UUID,
	targetWorkerID *kernel.UUID,
) (AssignOrderCommand, error) {
	assignCommand := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setOrderID(orderID),
		assignCommand.setActingActorID(actingActorID),
		assignCommand.setTargetWorkerID(targetWorkerID),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignOrderCommandIsNotConstructed if validation fails.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActingActorID returns the identifier of the actor issuing the command.
func (c AssignOrderCommand) ActingActorID() kernel.UUID {
	return c.actingActorID
}

// TargetWorkerID returns the explicit target worker for manual assignment.
// Returns nil for a self-claim.
func (c AssignOrderCommand) TargetWorkerID() *kernel.UUID {
	return c.targetWorkerID
}

func (c *AssignOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignOrderCommand) setActingActorID(actingActorID kernel.UUID) error {
	if err := actingActorID.Validate(); err != nil {
		return err
	}

	c.actingActorID = actingActorID
	return nil
}

func (c *AssignOrderCommand) setTargetWorkerID(targetWorkerID *kernel.UUID) error {
	if targetWorkerID == nil {
		return nil
	}
	if err := targetWorkerID.Validate(); err != nil {
		return err
	}

	c.targetWorkerID = targetWorkerID
	return nil
}
