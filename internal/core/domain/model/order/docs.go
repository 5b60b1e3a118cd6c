// Package order provides domain entities and business logic for field-service
// work orders. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, client data, price, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders are created Pending with no worker and a non-negative price
//   - The lifecycle is Pending -> Assigned -> InProgress -> {Completed, Modernization, Rejected},
//     with Cancelled reachable from Assigned and InProgress
//   - Modernization re-enters InProgress through an explicit Resume edge
//   - Transitions that require side data (reason, call-out fee, final price)
//     validate it before any state is touched
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
