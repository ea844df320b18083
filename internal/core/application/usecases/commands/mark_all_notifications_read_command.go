package commands

import (
	"errors"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/guard"
)

var ErrMarkAllNotificationsReadCommandIsNotConstructed = errors.New(
	"MarkAllNotificationsReadCommand must be created via NewMarkAllNotificationsReadCommand constructor",
)

// MarkAllNotificationsReadCommand represents a request to mark every unread
// notification in the recipient's inbox as read.
type MarkAllNotificationsReadCommand struct { //nolint:recvcheck //using for validation
	recipientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkAllNotificationsReadCommand creates a command to clear the unread set.
func NewMarkAllNotificationsReadCommand(recipientID kernel.UUID) (MarkAllNotificationsReadCommand, error) {
	readCommand := MarkAllNotificationsReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := readCommand.setRecipientID(recipientID); err != nil {
		return MarkAllNotificationsReadCommand{}, err
	}

	return readCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAllNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkAllNotificationsReadCommandIsNotConstructed)
}

// RecipientID returns the identifier of the inbox owner.
func (c MarkAllNotificationsReadCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

func (c *MarkAllNotificationsReadCommand) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}

	c.recipientID = recipientID
	return nil
}
