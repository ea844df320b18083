// Package notificationrepo provides data transfer objects and mapping
// functions for inbox notification persistence. The order snapshot each
// notification carries is stored as a JSON document so the inbox survives
// the later deletion of the order it describes.
package notificationrepo

import (
	"encoding/json"
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting inbox
// notifications. The primary key is the deterministic notification
// identity, which is what makes the conflict-ignoring insert a dedup.
type NotificationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipientID uuid.UUID `gorm:"type:uuid;index"`
	Kind        string    `gorm:"type:varchar(32)"`
	Payload     []byte    `gorm:"type:jsonb"`
	Message     string    `gorm:"type:text"`
	ReadAt      *time.Time
	CreatedAt   time.Time
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// payloadDoc is the persisted JSON shape of a notification payload.
type payloadDoc struct {
	OrderID        string    `json:"order_id"`
	Destination    string    `json:"destination"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status"`
	DepartureDate  time.Time `json:"departure_date"`
	ReturnDate     time.Time `json:"return_date"`
	ActorName      string    `json:"actor_name"`
}

// fromDomain converts a notification aggregate to its database representation.
func fromDomain(aggregate *notification.Notification) (NotificationDTO, error) {
	payload := aggregate.Payload()
	raw, err := json.Marshal(payloadDoc{
		OrderID:        payload.OrderID.String(),
		Destination:    payload.Destination,
		Status:         payload.Status,
		PreviousStatus: payload.PreviousStatus,
		DepartureDate:  payload.DepartureDate,
		ReturnDate:     payload.ReturnDate,
		ActorName:      payload.ActorName,
	})
	if err != nil {
		return NotificationDTO{}, err
	}

	return NotificationDTO{
		ID:          aggregate.ID().Bytes(),
		RecipientID: aggregate.RecipientID().Bytes(),
		Kind:        aggregate.Kind().String(),
		Payload:     raw,
		Message:     aggregate.Message(),
		ReadAt:      aggregate.ReadAt(),
		CreatedAt:   aggregate.CreatedAt(),
	}, nil
}

// toDomain converts a database DTO to a notification aggregate using
// RestoreNotification.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	kind, err := notification.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	var doc payloadDoc
	if err = json.Unmarshal(dto.Payload, &doc); err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromString(doc.OrderID)
	if err != nil {
		return nil, err
	}

	payload := notification.Payload{
		OrderID:        orderID,
		Destination:    doc.Destination,
		Status:         doc.Status,
		PreviousStatus: doc.PreviousStatus,
		DepartureDate:  doc.DepartureDate,
		ReturnDate:     doc.ReturnDate,
		ActorName:      doc.ActorName,
	}

	return notification.RestoreNotification(
		id, recipientID, kind, payload, dto.Message, dto.ReadAt, dto.CreatedAt)
}
