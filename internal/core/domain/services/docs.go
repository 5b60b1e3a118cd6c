// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the dispatch system. It implements the
// cross-aggregate rules that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - VisibilityFilter: Computes the per-actor subset of observable orders
//   - TransitionPolicy: Gates status transitions on actor role and identity
//   - AssignmentResolver: Decides manual-assignment vs self-claim semantics
//   - CommissionCalculator: Derives the master's payout from price and rate
//
// All services are stateless and side-effect free: each call is a pure
// function of the actor and order state passed in. Persistence and the
// serialization of concurrent claims belong to the application layer and the
// repository beneath it.
package services
