package commands

import (
	"context"

	"travelorders/internal/core/domain/services"
)

// UpdateTravelOrderCommandHandler handles edits to a travel order's details.
// Detail changes never notify anyone, so the handler works against the
// order-only unit of work.
type UpdateTravelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateTravelOrderCommandHandler creates a handler for order edit operations.
func NewUpdateTravelOrderCommandHandler(uowFactory OrderUoWFactory) UpdateTravelOrderCommandHandler {
	return UpdateTravelOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the order edit command.
// Loads the order, authorizes the actor as owner or admin, applies the new
// details (rejected by the aggregate unless the order is still pending),
// and persists the change transactionally.
func (h UpdateTravelOrderCommandHandler) Handle(ctx context.Context, cmd UpdateTravelOrderCommand) error {
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

	if err = h.policy.CanAccess(cmd.Actor(), order, "update travel order"); err != nil {
		return err
	}

	if err = order.ChangeDetails(cmd.Destination(), cmd.Dates()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
