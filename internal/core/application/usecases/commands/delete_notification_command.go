package commands

import (
	"errors"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/guard"
)

var ErrDeleteNotificationCommandIsNotConstructed = errors.New(
	"DeleteNotificationCommand must be created via NewDeleteNotificationCommand constructor",
)

// DeleteNotificationCommand represents a request to remove one notification
// from the recipient's inbox. Like every inbox operation it is scoped to
// the recipient, so foreign notifications surface as not found.
type DeleteNotificationCommand struct { //nolint:recvcheck //using for validation
	notificationID kernel.UUID
	recipientID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteNotificationCommand creates a command to delete an inbox notification.
func NewDeleteNotificationCommand(
	notificationID kernel.UUID,
	recipientID kernel.UUID,
) (DeleteNotificationCommand, error) {
	deleteCommand := DeleteNotificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deleteCommand.setNotificationID(notificationID),
		deleteCommand.setRecipientID(recipientID),
	); err != nil {
		return DeleteNotificationCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteNotificationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteNotificationCommandIsNotConstructed)
}

// NotificationID returns the identifier of the notification to delete.
func (c DeleteNotificationCommand) NotificationID() kernel.UUID {
	return c.notificationID
}

// RecipientID returns the identifier of the inbox owner.
func (c DeleteNotificationCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

func (c *DeleteNotificationCommand) setNotificationID(notificationID kernel.UUID) error {
	if err := notificationID.Validate(); err != nil {
		return err
	}

	c.notificationID = notificationID
	return nil
}

func (c *DeleteNotificationCommand) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}

	c.recipientID = recipientID
	return nil
}
