// Package travelorder provides domain entities and business logic for travel
// request management. It implements the TravelOrder aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - TravelOrder: The aggregate root that manages order identity, trip details, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - TripDates: A value object pairing departure and return dates
//
// Key business rules:
//   - Orders must have a valid identifier, owner, destination, and date pair
//   - Order status follows a defined workflow: pending -> approved | rejected | cancelled
//   - Approved, rejected, and cancelled are terminal states
//   - Trip details may only change while the order is pending
//   - A reject or cancel may record a reason of at most 1000 characters
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package travelorder
