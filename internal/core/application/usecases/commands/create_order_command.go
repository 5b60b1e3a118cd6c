package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new work order.
// Encapsulates the client contact details, the problem description, and the
// quoted price. The acting actor must hold a dispatch-staff role; intake by
// masters is not permitted.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(
//	    orderID, staffID, "Ivan Petrov", "+7 999 123-45-67", "Tverskaya st. 12",
//	    "laptop does not power on", nil, price, false)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created and waiting in the pool", orderID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	actingActorID kernel.UUID
	clientName    string
	clientPhone   string
	address       string
	problem       string
	categoryID    *kernel.UUID
	price         kernel.Money
	isPremium     bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new work order.
// Validates identifiers and the required client fields. Returns an error if
// any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	actingActorID kernel.UUID,
	clientName string,
	clientPhone string,
	address string,
	problem string,
	categoryID *kernel.UUID,
	price kernel.Money,
	isPremium bool,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		problem:   problem,
		price:     price,
		isPremium: isPremium,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setActingActorID(actingActorID),
		orderCommand.setClientInfo(clientName, clientPhone, address),
		orderCommand.setCategoryID(categoryID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActingActorID returns the identifier of the actor issuing the command.
func (c CreateOrderCommand) ActingActorID() kernel.UUID {
	return c.actingActorID
}

// ClientName returns the client's full name.
func (c CreateOrderCommand) ClientName() string {
	return c.clientName
}

// ClientPhone returns the client's phone number.
func (c CreateOrderCommand) ClientPhone() string {
	return c.clientPhone
}

// Address returns the client's address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// Problem returns the free-text problem description.
func (c CreateOrderCommand) Problem() string {
	return c.problem
}

// CategoryID returns the optional problem category reference.
func (c CreateOrderCommand) CategoryID() *kernel.UUID {
	return c.categoryID
}

// Price returns the quoted amount.
func (c CreateOrderCommand) Price() kernel.Money {
	return c.price
}

// IsPremium returns the premium-pool eligibility flag.
func (c CreateOrderCommand) IsPremium() bool {
	return c.isPremium
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setActingActorID(actingActorID kernel.UUID) error {
	if err := actingActorID.Validate(); err != nil {
		return err
	}

	c.actingActorID = actingActorID
	return nil
}

func (c *CreateOrderCommand) setClientInfo(clientName, clientPhone, address string) error {
	if clientName == "" {
		return errs.NewValueIsRequiredError("clientName")
	}
	if clientPhone == "" {
		return errs.NewValueIsRequiredError("clientPhone")
	}
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.clientName = clientName
	c.clientPhone = clientPhone
	c.address = address
	return nil
}

func (c *CreateOrderCommand) setCategoryID(categoryID *kernel.UUID) error {
	if categoryID == nil {
		return nil
	}
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}
