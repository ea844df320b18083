package ports

import (
	"context"
	"fmt"
	"time"

	"travelorders/internal/core/domain/model/kernel"
)

// AdminChannel is the shared real-time channel carrying created/deleted
// events addressed to the administrator group.
const AdminChannel = "admin-notifications"

// OwnerChannel returns the private per-user channel carrying events
// addressed to one order owner.
func OwnerChannel(ownerID kernel.UUID) string {
	return fmt.Sprintf("notifications.%s", ownerID)
}

// PushActor identifies the actor inside a push message payload.
type PushActor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PushMessage is the wire payload published on a real-time channel for one
// order event.
type PushMessage struct {
	OrderID        string    `json:"order_id"`
	Destination    string    `json:"destination"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	DepartureDate  string    `json:"departure_date"`
	ReturnDate     string    `json:"return_date"`
	Actor          PushActor `json:"actor"`
	Message        string    `json:"message"`
	Timestamp      time.Time `json:"timestamp"`
}

// Broadcaster delivers real-time push messages. Delivery is best-effort:
// implementations report errors for logging but the caller never rolls back
// state on a failed publish.
type Broadcaster interface {
	Publish(ctx context.Context, channel string, message PushMessage) error
}

// Email is an outbound mail rendered from an order event.
type Email struct {
	To      string
	Subject string
	Lines   []string
}

// Mailer delivers outbound email. Best-effort, same contract as Broadcaster:
// failures are logged by the caller, never surfaced to the triggering
// operation.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}
