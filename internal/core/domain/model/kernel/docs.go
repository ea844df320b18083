// Package kernel provides core domain primitives shared across the travel
// order domain model. It implements fundamental building blocks following
// Domain-Driven Design principles.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Actor: A value object identifying the authenticated caller of an operation and its role
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
