package commands

import (
	"context"

	"travelorders/internal/core/domain/model/notification"
	"travelorders/internal/core/domain/services"
)

// CancelTravelOrderCommandHandler handles the withdrawal of a pending
// travel order by its owner or by an administrator.
type CancelTravelOrderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher Dispatcher
	policy     services.AccessPolicy
}

// NewCancelTravelOrderCommandHandler creates a handler for cancellation operations.
func NewCancelTravelOrderCommandHandler(
	uowFactory UoWFactory,
	dispatcher Dispatcher,
) CancelTravelOrderCommandHandler {
	return CancelTravelOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the cancellation command.
// Loads the order, verifies the actor is its owner or an admin, applies the
// transition (legal only from pending), and fans out a status-changed
// notification to the order's owner.
func (h CancelTravelOrderCommandHandler) Handle(ctx context.Context, cmd CancelTravelOrderCommand) error {
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

	if err = h.policy.CanAccess(cmd.Actor(), order, "cancel travel order"); err != nil {
		return err
	}

	previous := order.Status()
	if err = order.Cancel(cmd.Reason()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	owner := cmd.Actor()
	if !h.policy.IsOwner(cmd.Actor(), order) {
		owner, err = uow.UserRepository().Get(ctx, order.OwnerID())
		if err != nil {
			return err
		}
	}

	event, err := newOrderEvent(
		notification.StatusChanged, order, owner, cmd.Actor(), previous)
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
