// Package services contains stateless domain services for the travel order
// workflow. Domain services hold business logic that spans aggregates or,
// as with authorization, applies to every operation on an aggregate.
//
// The package includes:
//   - AccessPolicy: pure authorization predicates gating per-order operations
//   - FanoutPlanner: expansion of one order event into per-recipient notifications
//
// Both services are pure: no IO, no state, deterministic results. Callers
// supply everything they need per invocation, which keeps them trivially
// safe under concurrency.
package services
