package commands

import (
	"context"
	"time"
)

// PurgeDeletedTravelOrdersCommandHandler permanently removes travel orders
// whose soft-delete timestamp fell out of the audit retention window.
type PurgeDeletedTravelOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPurgeDeletedTravelOrdersCommandHandler creates a handler for retention sweeps.
func NewPurgeDeletedTravelOrdersCommandHandler(
	uowFactory OrderUoWFactory,
) PurgeDeletedTravelOrdersCommandHandler {
	return PurgeDeletedTravelOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the retention sweep command.
// Returns the number of orders permanently removed.
func (h PurgeDeletedTravelOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd PurgeDeletedTravelOrdersCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.Retention())
	purged, err := uow.TravelOrderRepository().PurgeDeletedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
