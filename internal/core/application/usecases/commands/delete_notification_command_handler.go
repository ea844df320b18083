package commands

import (
	"context"
)

// DeleteNotificationCommandHandler removes one notification from the
// recipient's inbox.
type DeleteNotificationCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewDeleteNotificationCommandHandler creates a handler for inbox deletion operations.
func NewDeleteNotificationCommandHandler(uowFactory NotificationUoWFactory) DeleteNotificationCommandHandler {
	return DeleteNotificationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the inbox deletion command.
// A foreign or absent notification yields a not-found error.
func (h DeleteNotificationCommandHandler) Handle(ctx context.Context, cmd DeleteNotificationCommand) error {
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

	if err := uow.NotificationRepository().DeleteForRecipient(
		ctx, cmd.RecipientID(), cmd.NotificationID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
