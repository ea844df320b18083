package commands

import (
	"errors"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/guard"
)

var ErrCancelTravelOrderCommandIsNotConstructed = errors.New(
	"CancelTravelOrderCommand must be created via NewCancelTravelOrderCommand constructor",
)

// CancelTravelOrderCommand represents the withdrawal of a pending travel
// order, optionally with a reason.
type CancelTravelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor
	reason  string

	guard guard.ConstructorGuard
}

// NewCancelTravelOrderCommand creates a command to cancel a travel order.
func NewCancelTravelOrderCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	reason string,
) (CancelTravelOrderCommand, error) {
	cancelCommand := CancelTravelOrderCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cancelCommand.setOrderID(orderID),
		cancelCommand.setActor(actor),
	); err != nil {
		return CancelTravelOrderCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelTravelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelTravelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to cancel.
func (c CancelTravelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting user.
func (c CancelTravelOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// Reason returns the optional cancellation reason.
func (c CancelTravelOrderCommand) Reason() string {
	return c.reason
}

func (c *CancelTravelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelTravelOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
