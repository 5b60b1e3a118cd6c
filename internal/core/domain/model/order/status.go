package order

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is returned when a requested status change is not
	// an edge of the lifecycle table. It signals a caller bug, not a runtime
	// condition, and must never be silently swallowed.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidPayload is returned when the side data a transition requires
	// is missing or malformed: an empty reason, a negative amount.
	ErrInvalidPayload = errors.New("invalid transition payload")

	// ErrAlreadyAssigned is returned when an assignment attempt finds the
	// order no longer waiting in the pool, typically because a concurrent
	// claim won the race. Callers are expected to refresh and retry on a
	// different order.
	ErrAlreadyAssigned = errors.New("order is already assigned")
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the dispatch workflow.
//
// State transitions:
//
//	Pending ──> Assigned ──> InProgress ──┬──> Completed
//	                │             │  ▲    ├──> Rejected
//	                │             │  │    └──> Modernization ──┐
//	                │             │  └─────────(resume)────────┘
//	                └─────────────┴──> Cancelled
//
// Completed, Cancelled, and Rejected are terminal. Modernization is a
// re-entrant annotation state: the order went back to the client and resumes
// into InProgress through an explicit edge.
//
// The numeric values are the wire codes of the status and are stable.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order waits in the unassigned pool.
	Pending

	// Assigned indicates a master has been attached to the order.
	Assigned

	// InProgress indicates the assigned master is on site and working.
	InProgress

	// Completed indicates the work is done and the payable amount is final.
	// Terminal.
	Completed

	// Modernization indicates the order went back to the client for rework
	// approval. Re-enters InProgress through Resume.
	Modernization

	// Cancelled indicates dispatch staff withdrew the order. Terminal.
	Cancelled

	// Rejected indicates the assigned master declined the job on site,
	// leaving only the call-out fee payable. Terminal.
	Rejected
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "unknown",
		Pending:       "pending",
		Assigned:      "assigned",
		InProgress:    "in_progress",
		Completed:     "completed",
		Modernization: "modernization",
		Cancelled:     "cancelled",
		Rejected:      "rejected",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:       "pending",
		Assigned:      "assigned",
		InProgress:    "in_progress",
		Completed:     "completed",
		Modernization: "modernization",
		Cancelled:     "cancelled",
		Rejected:      "rejected",
	}
}

// Validate checks if the Status value is one of the defined codes.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid status", ErrInvalidTransition, s)
	}
	return nil
}

// String returns the wire name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled || s == Rejected
}

// ValidateCanHaveWorker validates the consistency between order status and
// worker assignment.
//
// Business rules:
//   - Pending and Cancelled orders must not have a worker
//   - All other valid statuses must have a worker
func (s Status) ValidateCanHaveWorker(worker bool) error {
	workerStatuses := map[Status]bool{
		Assigned:      true,
		InProgress:    true,
		Completed:     true,
		Modernization: true,
		Rejected:      true,
	}

	if worker && !workerStatuses[s] {
		return fmt.Errorf("%w: %s must not have a worker", ErrInvalidTransition, s)
	}
	if !worker && workerStatuses[s] {
		return fmt.Errorf("%w: %s must have a worker", ErrInvalidTransition, s)
	}
	return nil
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Pending -> Assigned
//
// Any status that already carries (or carried) a worker yields
// ErrAlreadyAssigned so claim races surface as the expected runtime
// condition; Cancelled yields ErrInvalidTransition.
func (s Status) Assign() (Status, error) {
	switch s {
	case Pending:
		return Assigned, nil
	case Assigned, InProgress, Completed, Modernization, Rejected:
		return 0, fmt.Errorf("%w: status is %s", ErrAlreadyAssigned, s)
	case Cancelled, Unknown:
		return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, Assigned)
	}
	return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, Assigned)
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Assigned -> InProgress (master arrived on site)
func (s Status) Start() (Status, error) {
	if s != Assigned {
		return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, InProgress)
	}
	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed
//
// Completing an already-completed order is rejected like any other invalid
// edge; terminal transitions are never idempotent.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, Completed)
	}
	return Completed, nil
}

// Modernize transitions the status to Modernization.
//
// Valid transitions:
//   - InProgress -> Modernization
func (s Status) Modernize() (Status, error) {
	if s != InProgress {
		return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, Modernization)
	}
	return Modernization, nil
}

// Resume transitions the status back to InProgress after modernization.
//
// Valid transitions:
//   - Modernization -> InProgress
func (s Status) Resume() (Status, error) {
	if s != Modernization {
		return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, InProgress)
	}
	return InProgress, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - InProgress -> Rejected
func (s Status) Reject() (Status, error) {
	if s != InProgress {
		return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, Rejected)
	}
	return Rejected, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Assigned -> Cancelled
//   - InProgress -> Cancelled
func (s Status) Cancel() (Status, error) {
	if s != Assigned && s != InProgress {
		return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, Cancelled)
	}
	return Cancelled, nil
}
