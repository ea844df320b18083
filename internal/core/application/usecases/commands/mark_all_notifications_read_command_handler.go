package commands

import (
	"context"
	"time"
)

// MarkAllNotificationsReadCommandHandler stamps every unread notification in
// the recipient's inbox with a single read timestamp. An empty unread set is
// not an error.
type MarkAllNotificationsReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkAllNotificationsReadCommandHandler creates a handler for mark-all-read operations.
func NewMarkAllNotificationsReadCommandHandler(
	uowFactory NotificationUoWFactory,
) MarkAllNotificationsReadCommandHandler {
	return MarkAllNotificationsReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark-all-read command.
func (h MarkAllNotificationsReadCommandHandler) Handle(
	ctx context.Context,
	cmd MarkAllNotificationsReadCommand,
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

	readAt := time.Now().UTC()
	if err := uow.NotificationRepository().MarkAllReadForRecipient(ctx, cmd.RecipientID(), readAt); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
