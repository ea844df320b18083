package notification

import (
	"fmt"

	"travelorders/internal/core/domain/model/kernel"
)

// Messages are rendered in English at dispatch time and stored verbatim.

// RenderMessage produces the human-readable message the given event carries
// for the given recipient. OrderDeleted events read differently depending on
// which side of the deletion the recipient is on.
func RenderMessage(event Event, recipientID kernel.UUID) string {
	switch event.Kind {
	case OrderCreated:
		return fmt.Sprintf("%s created a new travel order to %s.",
			event.Actor.Name, event.Order.Destination)

	case StatusChanged:
		return fmt.Sprintf("The status of your travel order to %s changed from %s to %s.",
			event.Order.Destination, event.PreviousStatus, event.Order.Status)

	case OrderDeleted:
		if recipientID.IsEqual(event.Order.OwnerID) {
			return fmt.Sprintf("Your travel order to %s was deleted by %s.",
				event.Order.Destination, event.Actor.Name)
		}
		return fmt.Sprintf("%s deleted their travel order to %s.",
			event.Actor.Name, event.Order.Destination)

	default:
		return ""
	}
}

// RenderSubject produces the email subject line for the given event.
func RenderSubject(event Event) string {
	switch event.Kind {
	case OrderCreated:
		return "New travel order"
	case StatusChanged:
		return fmt.Sprintf("Travel order %s", event.Order.Status)
	case OrderDeleted:
		return "Travel order deleted"
	default:
		return ""
	}
}
