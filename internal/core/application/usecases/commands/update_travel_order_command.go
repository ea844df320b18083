package commands

import (
	"errors"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/travelorder"
	"travelorders/internal/pkg/guard"
)

var ErrUpdateTravelOrderCommandIsNotConstructed = errors.New(
	"UpdateTravelOrderCommand must be created via NewUpdateTravelOrderCommand constructor",
)

// UpdateTravelOrderCommand represents a request to change the destination
// and trip dates of an existing travel order. Only pending orders accept
// detail changes; once an administrator has decided, the order is frozen.
type UpdateTravelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	actor       kernel.Actor
	destination string
	dates       travelorder.TripDates

	guard guard.ConstructorGuard
}

// NewUpdateTravelOrderCommand creates a command to edit a travel order's details.
// Validates that the order ID, actor, and trip dates are constructed and the
// destination is not empty.
func NewUpdateTravelOrderCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	destination string,
	dates travelorder.TripDates,
) (UpdateTravelOrderCommand, error) {
	updateCommand := UpdateTravelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setOrderID(orderID),
		updateCommand.setActor(actor),
		updateCommand.setDestination(destination),
		updateCommand.setDates(dates),
	); err != nil {
		return UpdateTravelOrderCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTravelOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTravelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c UpdateTravelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting user.
func (c UpdateTravelOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// Destination returns the new trip destination.
func (c UpdateTravelOrderCommand) Destination() string {
	return c.destination
}

// Dates returns the new trip date range.
func (c UpdateTravelOrderCommand) Dates() travelorder.TripDates {
	return c.dates
}

func (c *UpdateTravelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateTravelOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateTravelOrderCommand) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}

	c.destination = destination
	return nil
}

func (c *UpdateTravelOrderCommand) setDates(dates travelorder.TripDates) error {
	if err := dates.Validate(); err != nil {
		return err
	}

	c.dates = dates
	return nil
}
