package notification

import (
	"errors"
	"time"

	"travelorders/internal/core/domain/model/kernel"
)

// ErrNotificationIsNotConstructed is returned when a Notification instance
// was not created through the NewNotification or RestoreNotification
// factory methods.
var ErrNotificationIsNotConstructed = errors.New(
	"Notification must be created via NewNotification or RestoreNotification constructor",
)

// idNamespace is the UUIDv5 namespace under which notification identifiers
// are derived. A notification's identity is a pure function of its
// recipient and the (order, kind, previous status) transition that produced
// it, so a replayed dispatch yields the same identifier and the persistence
// layer can discard the duplicate.
var idNamespace = kernel.MustUUID("7f3de317-3f68-46ae-9f1a-67ce7a36ef2b")

// Payload carries the order snapshot fields persisted alongside a
// notification for client-side rendering.
type Payload struct {
	OrderID        kernel.UUID
	Destination    string
	Status         string
	PreviousStatus string
	DepartureDate  time.Time
	ReturnDate     time.Time
	ActorName      string
}

// Notification is a persisted inbox entry for one recipient. It is created
// by the notification fan-out as a side effect of a state transition and
// afterwards mutated only by its recipient through mark-as-read.
//
// Notification follows these invariants:
//   - Identity is deterministic per (recipient, order, kind, previous status)
//   - The recipient never changes
//   - read_at is nil while unread and set at most once per MarkRead call
type Notification struct {
	id          kernel.UUID
	recipientID kernel.UUID
	kind        Kind
	payload     Payload
	message     string

	readAt    *time.Time
	createdAt time.Time

	isConstructed bool
}

// NewNotification creates the inbox entry the given event produces for one
// recipient. The identifier is derived deterministically so repeated
// dispatch of the same transition cannot mint a second identity, and the
// message is rendered from the event for the recipient's perspective.
func NewNotification(recipientID kernel.UUID, event Event) (*Notification, error) {
	if err := recipientID.Validate(); err != nil {
		return nil, err
	}
	if err := event.Validate(); err != nil {
		return nil, err
	}

	id := kernel.DeterministicUUID(
		idNamespace,
		recipientID.String(),
		event.Order.OrderID.String(),
		event.Kind.String(),
		event.PreviousStatus,
	)

	return &Notification{
		id:          id,
		recipientID: recipientID,
		kind:        event.Kind,
		payload: Payload{
			OrderID:        event.Order.OrderID,
			Destination:    event.Order.Destination,
			Status:         event.Order.Status,
			PreviousStatus: event.PreviousStatus,
			DepartureDate:  event.Order.DepartureDate,
			ReturnDate:     event.Order.ReturnDate,
			ActorName:      event.Actor.Name,
		},
		message:       RenderMessage(event, recipientID),
		createdAt:     event.OccurredAt,
		isConstructed: true,
	}, nil
}

// RestoreNotification reconstructs a Notification from persistence.
func RestoreNotification(
	id kernel.UUID,
	recipientID kernel.UUID,
	kind Kind,
	payload Payload,
	message string,
	readAt *time.Time,
	createdAt time.Time,
) (*Notification, error) {
	if err := errors.Join(id.Validate(), recipientID.Validate(), kind.Validate()); err != nil {
		return nil, err
	}

	return &Notification{
		id:            id,
		recipientID:   recipientID,
		kind:          kind,
		payload:       payload,
		message:       message,
		readAt:        readAt,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Notification instance was properly constructed.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// RecipientID returns the identifier of the inbox owner.
func (n *Notification) RecipientID() kernel.UUID {
	return n.recipientID
}

// Kind returns the notification kind.
func (n *Notification) Kind() Kind {
	return n.kind
}

// Payload returns the persisted order snapshot.
func (n *Notification) Payload() Payload {
	return n.payload
}

// Message returns the rendered human-readable message.
func (n *Notification) Message() string {
	return n.message
}

// ReadAt returns the read timestamp, or nil while unread.
func (n *Notification) ReadAt() *time.Time {
	return n.readAt
}

// IsRead reports whether the notification has been read.
func (n *Notification) IsRead() bool {
	return n.readAt != nil
}

// CreatedAt returns the creation timestamp.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// MarkRead records the read timestamp. Marking an already-read
// notification is a no-op; the original timestamp is kept.
func (n *Notification) MarkRead(now time.Time) {
	if n.readAt != nil {
		return
	}
	readAt := now.UTC()
	n.readAt = &readAt
}
