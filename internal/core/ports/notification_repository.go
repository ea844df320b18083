package ports

import (
	"context"
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for inbox
// notifications. Every read and mutation is scoped to a recipient: a
// notification that exists but belongs to someone else behaves exactly like
// one that does not exist, so ownership is never leaked.
type NotificationRepository interface {
	// Add persists a new notification. Inserting an identifier that is
	// already present is a no-op: notification identity is deterministic
	// per (recipient, order, transition), so a replayed dispatch must not
	// produce a second inbox row.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists changes to an existing notification.
	Update(ctx context.Context, aggregate *notification.Notification) error

	// GetForRecipient retrieves one notification owned by the recipient.
	// Returns ObjectNotFoundError when it is absent or owned by another
	// recipient.
	GetForRecipient(ctx context.Context, recipientID kernel.UUID, id kernel.UUID) (*notification.Notification, error)

	// GetAllForRecipient retrieves the recipient's notifications, unread
	// first, most recent first within each group, capped at limit.
	GetAllForRecipient(ctx context.Context, recipientID kernel.UUID, limit int) ([]*notification.Notification, error)

	// MarkAllReadForRecipient stamps every unread notification of the
	// recipient with the given time.
	MarkAllReadForRecipient(ctx context.Context, recipientID kernel.UUID, readAt time.Time) error

	// DeleteForRecipient removes one notification owned by the recipient.
	// Returns ObjectNotFoundError when it is absent or owned by another
	// recipient.
	DeleteForRecipient(ctx context.Context, recipientID kernel.UUID, id kernel.UUID) error
}
