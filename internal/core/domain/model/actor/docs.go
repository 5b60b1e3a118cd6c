// Package actor provides domain entities for the users of the dispatch
// system: dispatch staff and the tiered pool of technicians ("masters").
//
// The package includes:
//   - Actor: The aggregate root holding identity, role, and commission rate
//   - Role: A closed enum with exhaustive capability queries
//   - CommissionRate: A percentage validated at profile load time
//
// Key business rules:
//   - Admin and Support manage orders; master tiers perform the work
//   - Self-claim rights grow with the tier: base masters cannot claim,
//     premium masters claim premium orders, senior masters claim any
//   - The actor's commission rate is the single source of truth for payout
//     derivation; it is never recomputed elsewhere
package actor
