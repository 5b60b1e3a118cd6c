package order

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a field-service work order. It is the aggregate root that
// manages the order lifecycle from intake through assignment to completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Client name, phone, and address must be non-empty
//   - Price is non-negative at all times (enforced by kernel.Money)
//   - Status transitions follow the table in Status
//   - A worker is set exactly for the statuses Status.ValidateCanHaveWorker allows
//   - Can only be created through NewOrder or RestoreOrder
//
// All mutation goes through the transition methods below; each one validates
// the edge, the actor-independent payload rules, and only then touches state.
// A failed call leaves the aggregate untouched.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// clientName, clientPhone, address describe the client (free text)
	clientName  string
	clientPhone string
	address     string

	// problem is the free-text problem description
	problem string

	// categoryID references the externally owned problem taxonomy
	categoryID *kernel.UUID

	// price is the quoted amount, mutable until the order is finalized
	price kernel.Money

	// status is the current state in the order lifecycle
	status Status

	// reason is the free-text annotation of the current status
	reason string

	// workerID is the assigned master's ID (nil if unassigned)
	workerID *kernel.UUID

	// isPremium marks the order claimable by premium-tier masters
	isPremium bool

	// onSite is set when the assigned master starts work
	onSite bool

	// createdAt is the intake timestamp
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with no worker.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - clientName, clientPhone, address: client info (must be non-empty)
//   - problem: free-text problem description (may be empty)
//   - categoryID: optional problem category reference
//   - price: quoted amount
//   - isPremium: premium-pool eligibility
//   - createdAt: intake timestamp
//
// Returns the created order, or a validation error if any parameter is invalid.
func NewOrder(
	id kernel.UUID,
	clientName string,
	clientPhone string,
	address string,
	problem string,
	categoryID *kernel.UUID,
	price kernel.Money,
	isPremium bool,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		problem:       problem,
		price:         price,
		status:        Pending,
		isPremium:     isPremium,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClientInfo(clientName, clientPhone, address),
		order.setCategoryID(categoryID),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, including lifecycle
// state that NewOrder does not accept. The status/worker consistency rule is
// re-checked so corrupt rows cannot produce an invalid aggregate.
func RestoreOrder(
	id kernel.UUID,
	clientName string,
	clientPhone string,
	address string,
	problem string,
	categoryID *kernel.UUID,
	price kernel.Money,
	status Status,
	reason string,
	workerID *kernel.UUID,
	isPremium bool,
	onSite bool,
	createdAt time.Time,
) (*Order, error) {
	order, err := NewOrder(id, clientName, clientPhone, address, problem, categoryID, price, isPremium, createdAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveWorker(workerID != nil); err != nil {
		return nil, err
	}
	if workerID != nil {
		if err := workerID.Validate(); err != nil {
			return nil, err
		}
	}

	order.status = status
	order.reason = reason
	order.workerID = workerID
	order.onSite = onSite

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientName returns the client's full name.
func (o *Order) ClientName() string {
	return o.clientName
}

// ClientPhone returns the client's phone number.
func (o *Order) ClientPhone() string {
	return o.clientPhone
}

// Address returns the client's address.
func (o *Order) Address() string {
	return o.address
}

// Problem returns the free-text problem description.
func (o *Order) Problem() string {
	return o.problem
}

// CategoryID returns the problem category reference, or nil.
func (o *Order) CategoryID() *kernel.UUID {
	return o.categoryID
}

// Price returns the current payable amount.
func (o *Order) Price() kernel.Money {
	return o.price
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Reason returns the free-text annotation of the current status.
func (o *Order) Reason() string {
	return o.reason
}

// Worker returns the assigned master's ID.
// Returns nil if no master is assigned.
func (o *Order) Worker() *kernel.UUID {
	return o.workerID
}

// IsPremium reports whether the order is claimable by premium-tier masters.
func (o *Order) IsPremium() bool {
	return o.isPremium
}

// OnSite reports whether the assigned master has started work.
func (o *Order) OnSite() bool {
	return o.onSite
}

// CreatedAt returns the intake timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Assign attaches a master to the order and moves it to Assigned.
//
// Business rules:
//   - The worker ID must be valid
//   - The order must be Pending; an order that already carries a worker
//     yields ErrAlreadyAssigned
//
// Whether the acting actor may perform this assignment (manual assignment vs
// self-claim) is decided by the assignment resolver, not here.
func (o *Order) Assign(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.workerID = &workerID
	return nil
}

// Start marks the assigned master as arrived on site and moves the order to
// InProgress. No payload is required; the on-site marker is implicit in the
// edge.
func (o *Order) Start() error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.onSite = true
	return nil
}

// Complete finishes the work and moves the order to Completed.
//
// finalPrice, when non-nil, overrides the quoted price and becomes the
// amount commission is derived from. When nil the quoted price stands.
//
// Completed is terminal; the price is frozen afterwards.
func (o *Order) Complete(finalPrice *kernel.Money) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	if finalPrice != nil {
		o.price = *finalPrice
	}
	o.reason = ""
	return nil
}

// Modernize sends the order back to the client for rework approval.
//
// Business rules:
//   - The order must be InProgress
//   - reason must be non-empty (ErrInvalidPayload otherwise)
func (o *Order) Modernize(reason string) error {
	if reason == "" {
		return fmt.Errorf("%w: modernization requires a reason", ErrInvalidPayload)
	}

	newStatus, err := o.status.Modernize()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.reason = reason
	return nil
}

// Resume brings a modernization order back into InProgress.
// The modernization annotation is cleared; the work continues toward
// completion through the normal edges.
func (o *Order) Resume() error {
	newStatus, err := o.status.Resume()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.reason = ""
	return nil
}

// Reject declines the job on site and moves the order to Rejected.
//
// Business rules:
//   - The order must be InProgress
//   - reason must be non-empty (ErrInvalidPayload otherwise)
//   - calloutFee becomes the payable amount (its non-negativity is
//     guaranteed by kernel.Money)
func (o *Order) Reject(reason string, calloutFee kernel.Money) error {
	if reason == "" {
		return fmt.Errorf("%w: rejection requires a reason", ErrInvalidPayload)
	}

	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.reason = reason
	o.price = calloutFee
	return nil
}

// Cancel withdraws the order and moves it to Cancelled.
//
// The reason is optional. Cancellation releases the assigned master: the
// worker reference and the on-site marker are cleared, keeping the
// status/worker consistency rule closed.
func (o *Order) Cancel(reason string) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.reason = reason
	o.workerID = nil
	o.onSite = false
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setClientInfo validates and sets the client contact fields.
func (o *Order) setClientInfo(clientName, clientPhone, address string) error {
	if clientName == "" {
		return errs.NewValueIsRequiredError("clientName")
	}
	if clientPhone == "" {
		return errs.NewValueIsRequiredError("clientPhone")
	}
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	o.clientName = clientName
	o.clientPhone = clientPhone
	o.address = address
	return nil
}

// setCategoryID validates and sets the optional category reference.
func (o *Order) setCategoryID(categoryID *kernel.UUID) error {
	if categoryID == nil {
		return nil
	}
	if err := categoryID.Validate(); err != nil {
		return err
	}
	o.categoryID = categoryID
	return nil
}
