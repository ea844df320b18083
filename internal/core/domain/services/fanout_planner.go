package services

import (
	"errors"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/notification"
)

// ErrNoRecipients is returned when an event resolves to an empty recipient
// set, for example an admin-targeted event while the admin roster is empty.
// Callers treat this as a no-op rather than a failure.
var ErrNoRecipients = errors.New("no recipients resolved for event")

// FanoutPlanner is a domain service that expands one order event into the
// set of inbox notifications it produces, one per affected recipient.
//
// Recipient rules:
//   - OrderCreated: every administrator
//   - StatusChanged: the order's owner
//   - OrderDeleted: the owner when an administrator deleted the order,
//     every administrator when the owner deleted it
//
// The planner is pure: it performs no IO and resolves nothing itself. The
// caller supplies the current admin roster per call, so roster changes
// between events are always honored.
type FanoutPlanner struct{}

// NewFanoutPlanner creates a new FanoutPlanner instance.
func NewFanoutPlanner() FanoutPlanner {
	return FanoutPlanner{}
}

// Plan expands the event into notifications for its recipient set.
// Returns ErrNoRecipients when the set is empty. Duplicate roster entries
// collapse to one notification per recipient.
func (p FanoutPlanner) Plan(
	event notification.Event,
	admins []kernel.Actor,
) ([]*notification.Notification, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}

	recipients, err := p.resolveRecipients(event, admins)
	if err != nil {
		return nil, err
	}

	notifications := make([]*notification.Notification, 0, len(recipients))
	for _, recipientID := range recipients {
		entry, err := notification.NewNotification(recipientID, event)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, entry)
	}

	return notifications, nil
}

func (p FanoutPlanner) resolveRecipients(
	event notification.Event,
	admins []kernel.Actor,
) ([]kernel.UUID, error) {
	var recipients []kernel.UUID

	switch event.Kind {
	case notification.StatusChanged:
		recipients = []kernel.UUID{event.Order.OwnerID}

	case notification.OrderCreated:
		recipients = adminIDs(admins)

	case notification.OrderDeleted:
		if event.Actor.ID.IsEqual(event.Order.OwnerID) {
			recipients = adminIDs(admins)
		} else {
			recipients = []kernel.UUID{event.Order.OwnerID}
		}
	}

	if len(recipients) == 0 {
		return nil, ErrNoRecipients
	}
	return recipients, nil
}

func adminIDs(admins []kernel.Actor) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(admins))
	ids := make([]kernel.UUID, 0, len(admins))
	for _, admin := range admins {
		if _, ok := seen[admin.ID()]; ok {
			continue
		}
		seen[admin.ID()] = struct{}{}
		ids = append(ids, admin.ID())
	}
	return ids
}
