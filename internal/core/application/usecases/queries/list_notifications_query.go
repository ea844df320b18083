package queries

import (
	"errors"
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/guard"
)

var ErrListNotificationsQueryIsNotConstructed = errors.New(
	"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
)

// defaultNotificationLimit caps the inbox page when the caller gives none.
const defaultNotificationLimit = 10

// ListNotificationsQuery retrieves the recipient's inbox: unread entries
// first, most recent first within each group. The unread-only variant
// restricts the page to entries that have not been read yet.
type ListNotificationsQuery struct { //nolint:recvcheck //using for validation
	recipientID kernel.UUID
	limit       int
	unreadOnly  bool

	guard guard.ConstructorGuard
}

// NewListNotificationsQuery creates an inbox query. A non-positive limit
// falls back to the default of 10.
func NewListNotificationsQuery(recipientID kernel.UUID, limit int) (ListNotificationsQuery, error) {
	if err := recipientID.Validate(); err != nil {
		return ListNotificationsQuery{}, err
	}

	if limit <= 0 {
		limit = defaultNotificationLimit
	}

	return ListNotificationsQuery{
		recipientID: recipientID,
		limit:       limit,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// NewUnreadNotificationsQuery creates an inbox query restricted to unread
// entries.
func NewUnreadNotificationsQuery(recipientID kernel.UUID, limit int) (ListNotificationsQuery, error) {
	query, err := NewListNotificationsQuery(recipientID, limit)
	if err != nil {
		return ListNotificationsQuery{}, err
	}

	query.unreadOnly = true
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

// RecipientID returns the identifier of the inbox owner.
func (q ListNotificationsQuery) RecipientID() kernel.UUID {
	return q.recipientID
}

// Limit returns the maximum number of entries to return.
func (q ListNotificationsQuery) Limit() int {
	return q.limit
}

// UnreadOnly reports whether read entries are excluded.
func (q ListNotificationsQuery) UnreadOnly() bool {
	return q.unreadOnly
}

// NotificationResponse represents one inbox entry on the read side.
type NotificationResponse struct {
	ID             kernel.UUID
	Kind           string
	Message        string
	OrderID        kernel.UUID
	Destination    string
	Status         string
	PreviousStatus string
	DepartureDate  time.Time
	ReturnDate     time.Time
	ActorName      string
	ReadAt         *time.Time
	CreatedAt      time.Time
}

// ListNotificationsResponse is the inbox envelope. UnreadCount covers the
// whole inbox, not just the returned page.
type ListNotificationsResponse struct {
	Items       []NotificationResponse
	UnreadCount int64
}
