package commands

import (
	"errors"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/guard"
)

var ErrDeleteTravelOrderCommandIsNotConstructed = errors.New(
	"DeleteTravelOrderCommand must be created via NewDeleteTravelOrderCommand constructor",
)

// DeleteTravelOrderCommand represents a request to remove a travel order.
// Owners may remove their own order only while it is still pending;
// administrators may remove any order. Removal is a soft delete: the row is
// retained for audit but disappears from every read path.
type DeleteTravelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewDeleteTravelOrderCommand creates a command to delete a travel order.
func NewDeleteTravelOrderCommand(orderID kernel.UUID, actor kernel.Actor) (DeleteTravelOrderCommand, error) {
	deleteCommand := DeleteTravelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deleteCommand.setOrderID(orderID),
		deleteCommand.setActor(actor),
	); err != nil {
		return DeleteTravelOrderCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteTravelOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTravelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to delete.
func (c DeleteTravelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting user.
func (c DeleteTravelOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *DeleteTravelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DeleteTravelOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
