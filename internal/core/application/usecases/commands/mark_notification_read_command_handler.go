package commands

import (
	"context"
	"time"
)

// MarkNotificationReadCommandHandler marks a single inbox notification as
// read. Marking an already-read notification is a no-op and keeps the
// original read timestamp.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkNotificationReadCommandHandler creates a handler for mark-read operations.
func NewMarkNotificationReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark-read command.
// Loads the notification scoped to the recipient, stamps it, and persists
// the change. A foreign or absent notification yields a not-found error.
func (h MarkNotificationReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationReadCommand) error {
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

	notificationRepo := uow.NotificationRepository()
	entry, err := notificationRepo.GetForRecipient(ctx, cmd.RecipientID(), cmd.NotificationID())
	if err != nil {
		return err
	}

	entry.MarkRead(time.Now().UTC())

	if err = notificationRepo.Update(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
