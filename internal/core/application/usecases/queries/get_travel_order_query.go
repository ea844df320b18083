// Package queries contains read operations for the CQRS architecture.
// Query handlers read the database directly and return plain response
// structures; they never load or mutate aggregates.
package queries

import (
	"errors"
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/guard"
)

var ErrGetTravelOrderQueryIsNotConstructed = errors.New(
	"GetTravelOrderQuery must be created via NewGetTravelOrderQuery constructor",
)

// GetTravelOrderQuery retrieves a single travel order by identifier.
// The actor must be the order's owner or an administrator.
//
// Example:
//
//	query, err := NewGetTravelOrderQuery(orderID, actor)
//	if err != nil {
//	    return err
//	}
//
//	order, err := NewGetTravelOrderQueryHandler(db).Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get travel order: %w", err)
//	}
//	fmt.Printf("Order %s is %s\n", order.ID, order.Status)
type GetTravelOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewGetTravelOrderQuery creates a query for one travel order.
func NewGetTravelOrderQuery(orderID kernel.UUID, actor kernel.Actor) (GetTravelOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return GetTravelOrderQuery{}, err
	}

	return GetTravelOrderQuery{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTravelOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetTravelOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetTravelOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Actor returns the requesting user.
func (q GetTravelOrderQuery) Actor() kernel.Actor {
	return q.actor
}

// TravelOrderResponse represents one travel order on the read side.
type TravelOrderResponse struct {
	ID            kernel.UUID
	OwnerID       kernel.UUID
	Destination   string
	DepartureDate time.Time
	ReturnDate    time.Time
	Status        string
	Reason        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
