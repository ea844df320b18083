package commands

import (
	"context"

	"travelorders/internal/core/domain/model/notification"
	"travelorders/internal/core/domain/model/travelorder"
)

// CreateTravelOrderCommandHandler handles the business logic for opening
// travel orders. Persists the new pending order and fans out an
// order-created notification to every administrator within the same
// transaction.
//
// Example:
//
//	handler := NewCreateTravelOrderCommandHandler(uowFactory, dispatcher)
//	cmd, _ := NewCreateTravelOrderCommand(kernel.NewUUID(), actor, "Porto", dates)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("travel order creation failed: %w", err)
//	}
//	// Order is now pending and admins have been notified
type CreateTravelOrderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher Dispatcher
}

// NewCreateTravelOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory for transactional persistence and a Dispatcher for fan-out.
func NewCreateTravelOrderCommandHandler(
	uowFactory UoWFactory,
	dispatcher Dispatcher,
) CreateTravelOrderCommandHandler {
	return CreateTravelOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the order creation command.
// Creates the order in pending status, plans the admin fan-out inside the
// transaction, and hands the planned notifications to the asynchronous
// delivery channels only after the commit succeeds.
func (h CreateTravelOrderCommandHandler) Handle(ctx context.Context, cmd CreateTravelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	order, err := travelorder.NewTravelOrder(
		cmd.OrderID(),
		cmd.Actor().ID(),
		cmd.Destination(),
		cmd.Dates(),
	)
	if err != nil {
		return err
	}

	if err = uow.TravelOrderRepository().Add(ctx, order); err != nil {
		return err
	}

	event, err := newOrderEvent(
		notification.OrderCreated, order, cmd.Actor(), cmd.Actor(), travelorder.Unknown)
	if err != nil {
		return err
	}

	planned, err := h.dispatcher.Dispatch(ctx, uow, event)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.DeliverAsync(event, planned)
	return nil
}
