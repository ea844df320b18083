package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"travelorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListNotificationsQueryHandler reads the recipient's inbox from the
// database, unread entries first.
type ListNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewListNotificationsQueryHandler creates a handler for inbox queries.
// Requires a GORM database connection for query execution.
func NewListNotificationsQueryHandler(db *gorm.DB) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db}
}

// notificationPayloadRow mirrors the persisted payload document.
type notificationPayloadRow struct {
	OrderID        string    `json:"order_id"`
	Destination    string    `json:"destination"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status"`
	DepartureDate  time.Time `json:"departure_date"`
	ReturnDate     time.Time `json:"return_date"`
	ActorName      string    `json:"actor_name"`
}

// Handle executes the inbox query.
// Returns up to Limit entries ordered unread first, newest first within
// each group, plus the total unread count across the whole inbox.
func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) (ListNotificationsResponse, error) {
	if err := query.Validate(); err != nil {
		return ListNotificationsResponse{}, err
	}

	var unread int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT count(*)
		FROM notifications
		WHERE recipient_id = ? AND read_at IS NULL
	`, query.RecipientID().String()).Scan(&unread).Error
	if err != nil {
		return ListNotificationsResponse{}, err
	}

	readFilter := ""
	if query.UnreadOnly() {
		readFilter = "AND read_at IS NULL"
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kind,
			message,
			payload,
			read_at,
			created_at
		FROM notifications
		WHERE recipient_id = ? `+readFilter+`
		ORDER BY (read_at IS NULL) DESC, created_at DESC, id
		LIMIT ?
	`, query.RecipientID().String(), query.Limit()).Rows()
	if err != nil {
		return ListNotificationsResponse{}, err
	}
	defer rows.Close()

	items := make([]NotificationResponse, 0, query.Limit())
	for rows.Next() {
		var item NotificationResponse
		var id uuid.UUID
		var payload []byte
		var readAt sql.NullTime

		if err = rows.Scan(&id, &item.Kind, &item.Message, &payload, &readAt, &item.CreatedAt); err != nil {
			return ListNotificationsResponse{}, err
		}

		notificationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListNotificationsResponse{}, idErr
		}
		item.ID = notificationID

		var doc notificationPayloadRow
		if err = json.Unmarshal(payload, &doc); err != nil {
			return ListNotificationsResponse{}, err
		}

		orderID, idErr := kernel.UUIDFromString(doc.OrderID)
		if idErr != nil {
			return ListNotificationsResponse{}, idErr
		}
		item.OrderID = orderID
		item.Destination = doc.Destination
		item.Status = doc.Status
		item.PreviousStatus = doc.PreviousStatus
		item.DepartureDate = doc.DepartureDate
		item.ReturnDate = doc.ReturnDate
		item.ActorName = doc.ActorName

		if readAt.Valid {
			t := readAt.Time
			item.ReadAt = &t
		}

		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return ListNotificationsResponse{}, err
	}

	return ListNotificationsResponse{Items: items, UnreadCount: unread}, nil
}
