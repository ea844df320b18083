package commands

import (
	"errors"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/travelorder"
	"travelorders/internal/pkg/guard"
)

var (
	ErrCreateTravelOrderCommandIsNotConstructed = errors.New(
		"CreateTravelOrderCommand must be created via NewCreateTravelOrderCommand constructor",
	)
	ErrDestinationIsRequired = errors.New("destination is required")
)

// CreateTravelOrderCommand represents a request to open a new travel order.
// The acting user becomes the order's owner; the order starts in pending
// status awaiting an administrator's decision.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	dates, _ := travelorder.NewTripDates(departure, returning)
//	cmd, err := NewCreateTravelOrderCommand(orderID, actor, "Lisbon", dates)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateTravelOrderCommandHandler(uowFactory, dispatcher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create travel order: %w", err)
//	}
type CreateTravelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	actor       kernel.Actor
	destination string
	dates       travelorder.TripDates

	guard guard.ConstructorGuard
}

// NewCreateTravelOrderCommand creates a command to register a new travel order.
// Validates that the order ID, actor, and trip dates are constructed and the
// destination is not empty. Returns an error if any validation fails.
func NewCreateTravelOrderCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	destination string,
	dates travelorder.TripDates,
) (CreateTravelOrderCommand, error) {
	orderCommand := CreateTravelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setActor(actor),
		orderCommand.setDestination(destination),
		orderCommand.setDates(dates),
	); err != nil {
		return CreateTravelOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateTravelOrderCommandIsNotConstructed if validation fails.
func (c CreateTravelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateTravelOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateTravelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting user, who becomes the order's owner.
func (c CreateTravelOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// Destination returns the trip destination.
func (c CreateTravelOrderCommand) Destination() string {
	return c.destination
}

// Dates returns the trip date range.
func (c CreateTravelOrderCommand) Dates() travelorder.TripDates {
	return c.dates
}

func (c *CreateTravelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateTravelOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateTravelOrderCommand) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}

	c.destination = destination
	return nil
}

func (c *CreateTravelOrderCommand) setDates(dates travelorder.TripDates) error {
	if err := dates.Validate(); err != nil {
		return err
	}

	c.dates = dates
	return nil
}
