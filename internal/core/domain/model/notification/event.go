package notification

import (
	"errors"
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/errs"
)

// OrderSnapshot carries the travel order fields a notification needs for
// rendering and delivery. The dispatcher never reaches back into the order
// aggregate; the snapshot is taken at transition time so the notification
// reflects the order exactly as the transition left it.
type OrderSnapshot struct {
	OrderID       kernel.UUID
	OwnerID       kernel.UUID
	OwnerName     string
	OwnerEmail    string
	Destination   string
	DepartureDate time.Time
	ReturnDate    time.Time
	Status        string
}

// EventActor identifies the actor whose operation produced the event,
// reduced to the fields notification messages interpolate.
type EventActor struct {
	ID   kernel.UUID
	Name string
}

// Event is the input of the notification fan-out. One event is emitted per
// notify-worthy state transition and expanded into one notification per
// affected recipient.
type Event struct {
	Kind           Kind
	Order          OrderSnapshot
	PreviousStatus string
	Actor          EventActor
	OccurredAt     time.Time
}

// NewEvent assembles an Event for the given kind, snapshot, and actor.
// PreviousStatus may be empty for kinds that carry no transition, such as
// OrderCreated and OrderDeleted.
func NewEvent(kind Kind, order OrderSnapshot, previousStatus string, actor EventActor) (Event, error) {
	event := Event{
		Kind:           kind,
		Order:          order,
		PreviousStatus: previousStatus,
		Actor:          actor,
		OccurredAt:     time.Now().UTC(),
	}

	if err := event.Validate(); err != nil {
		return Event{}, err
	}
	return event, nil
}

// Validate checks the event invariants: a known kind, a constructed order
// and owner identifier, and a named actor.
func (e Event) Validate() error {
	if err := errors.Join(
		e.Kind.Validate(),
		e.Order.OrderID.Validate(),
		e.Order.OwnerID.Validate(),
		e.Actor.ID.Validate(),
	); err != nil {
		return err
	}

	if e.Actor.Name == "" {
		return errs.NewValueIsRequiredError("actor name")
	}
	if e.Order.Destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	return nil
}
