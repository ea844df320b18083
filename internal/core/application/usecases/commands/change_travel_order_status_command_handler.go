package commands

import (
	"context"

	"travelorders/internal/core/domain/model/notification"
	"travelorders/internal/core/domain/model/travelorder"
	"travelorders/internal/core/domain/services"
)

// ChangeTravelOrderStatusCommandHandler applies an administrator's decision
// to a travel order. The repository guards the write with the order's
// pre-transition status, so of two concurrent decisions on the same order
// exactly one wins and the loser surfaces an invalid-state error.
type ChangeTravelOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	dispatcher Dispatcher
	policy     services.AccessPolicy
}

// NewChangeTravelOrderStatusCommandHandler creates a handler for status decisions.
// Requires a UoWFactory for transactional persistence and a Dispatcher for fan-out.
func NewChangeTravelOrderStatusCommandHandler(
	uowFactory UoWFactory,
	dispatcher Dispatcher,
) ChangeTravelOrderStatusCommandHandler {
	return ChangeTravelOrderStatusCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the status decision command.
// Loads the order, authorizes the actor as an administrator, applies the
// transition (legal only from pending), and fans out a status-changed
// notification to the order's owner in the same transaction. Delivery to
// the push and mail channels happens only after the commit succeeds.
func (h ChangeTravelOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeTravelOrderStatusCommand,
) error {
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

	if err = h.policy.CanChangeStatus(cmd.Actor()); err != nil {
		return err
	}

	previous := order.Status()
	switch cmd.Target() {
	case travelorder.Approved:
		err = order.Approve()
	case travelorder.Rejected:
		err = order.Reject(cmd.Reason())
	default:
		err = cmd.Target().ValidateDecision()
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	owner, err := uow.UserRepository().Get(ctx, order.OwnerID())
	if err != nil {
		return err
	}

	event, err := newOrderEvent(notification.StatusChanged, order, owner, cmd.Actor(), previous)
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
