package commands

import (
	"context"

	"travelorders/internal/core/domain/model/notification"
	"travelorders/internal/core/domain/model/travelorder"
	"travelorders/internal/core/domain/services"
)

// DeleteTravelOrderCommandHandler handles travel order removal.
// The order-deleted notification is addressed by who acted: when an admin
// removes a user's order the owner is told, and when an owner removes their
// own order the administrators are told.
type DeleteTravelOrderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher Dispatcher
	policy     services.AccessPolicy
}

// NewDeleteTravelOrderCommandHandler creates a handler for order removal operations.
func NewDeleteTravelOrderCommandHandler(
	uowFactory UoWFactory,
	dispatcher Dispatcher,
) DeleteTravelOrderCommandHandler {
	return DeleteTravelOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the order removal command.
// Loads the order, authorizes the actor, enforces the pending-only rule for
// owners, soft-deletes the row, and fans out an order-deleted notification
// in the same transaction.
func (h DeleteTravelOrderCommandHandler) Handle(ctx context.Context, cmd DeleteTravelOrderCommand) error {
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

	orderRepo := uow.TravelOrderRepository()
	order, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.policy.CanAccess(cmd.Actor(), order, "delete travel order"); err != nil {
		return err
	}

	if err = order.ValidateDeletableBy(cmd.Actor()); err != nil {
		return err
	}

	if err = orderRepo.SoftDelete(ctx, order); err != nil {
		return err
	}

	owner := cmd.Actor()
	if !h.policy.IsOwner(cmd.Actor(), order) {
		if owner, err = uow.UserRepository().Get(ctx, order.OwnerID()); err != nil {
			return err
		}
	}

	event, err := newOrderEvent(
		notification.OrderDeleted, order, owner, cmd.Actor(), travelorder.Unknown)
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
