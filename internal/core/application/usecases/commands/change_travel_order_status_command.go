package commands

import (
	"errors"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/travelorder"
	"travelorders/internal/pkg/guard"
)

var ErrChangeTravelOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeTravelOrderStatusCommand must be created via NewChangeTravelOrderStatusCommand constructor",
)

// ChangeTravelOrderStatusCommand represents an administrator's decision on a
// pending travel order: approve it or reject it, optionally with a reason.
//
// Example:
//
//	cmd, err := NewChangeTravelOrderStatusCommand(orderID, admin, travelorder.Rejected, "budget freeze")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewChangeTravelOrderStatusCommandHandler(uowFactory, dispatcher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("decision failed: %w", err)
//	}
type ChangeTravelOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor
	target  travelorder.Status
	reason  string

	guard guard.ConstructorGuard
}

// NewChangeTravelOrderStatusCommand creates a command carrying a status decision.
// The target status must be approved or rejected; every other status is not
// a decision an administrator can issue directly.
func NewChangeTravelOrderStatusCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	target travelorder.Status,
	reason string,
) (ChangeTravelOrderStatusCommand, error) {
	statusCommand := ChangeTravelOrderStatusCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setActor(actor),
		statusCommand.setTarget(target),
	); err != nil {
		return ChangeTravelOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeTravelOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeTravelOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being decided.
func (c ChangeTravelOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the deciding administrator.
func (c ChangeTravelOrderStatusCommand) Actor() kernel.Actor {
	return c.actor
}

// Target returns the decided status, approved or rejected.
func (c ChangeTravelOrderStatusCommand) Target() travelorder.Status {
	return c.target
}

// Reason returns the optional decision reason.
func (c ChangeTravelOrderStatusCommand) Reason() string {
	return c.reason
}

func (c *ChangeTravelOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeTravelOrderStatusCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ChangeTravelOrderStatusCommand) setTarget(target travelorder.Status) error {
	if err := target.ValidateDecision(); err != nil {
		return err
	}

	c.target = target
	return nil
}
