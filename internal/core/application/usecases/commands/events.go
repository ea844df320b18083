package commands

import (
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/notification"
	"travelorders/internal/core/domain/model/travelorder"
)

// newOrderEvent snapshots the order as the transition left it and pairs it
// with the acting user. The owner actor supplies the name and email the
// delivery channels interpolate; it may differ from the acting user when an
// admin operates on someone else's order.
func newOrderEvent(
	kind notification.Kind,
	order *travelorder.TravelOrder,
	owner kernel.Actor,
	actor kernel.Actor,
	previousStatus travelorder.Status,
) (notification.Event, error) {
	prev := ""
	if previousStatus != travelorder.Unknown {
		prev = previousStatus.String()
	}

	return notification.NewEvent(
		kind,
		notification.OrderSnapshot{
			OrderID:       order.ID(),
			OwnerID:       order.OwnerID(),
			OwnerName:     owner.Name(),
			OwnerEmail:    owner.Email(),
			Destination:   order.Destination(),
			DepartureDate: order.Dates().Departure(),
			ReturnDate:    order.Dates().Return(),
			Status:        order.Status().String(),
		},
		prev,
		notification.EventActor{
			ID:   actor.ID(),
			Name: actor.Name(),
		},
	)
}
