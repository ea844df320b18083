package http

import (
	"time"

	"travelorders/internal/core/application/usecases/queries"
)

// TravelOrder is the wire representation of one travel order.
type TravelOrder struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id"`
	Destination   string    `json:"destination"`
	DepartureDate string    `json:"departure_date"`
	ReturnDate    string    `json:"return_date"`
	Status        string    `json:"status"`
	Reason        string    `json:"reason,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TravelOrderList is the paginated list envelope.
type TravelOrderList struct {
	Items    []TravelOrder `json:"items"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PerPage  int           `json:"per_page"`
	LastPage int           `json:"last_page"`
}

// Notification is the wire representation of one inbox entry.
type Notification struct {
	ID             string     `json:"id"`
	Kind           string     `json:"kind"`
	Message        string     `json:"message"`
	OrderID        string     `json:"order_id"`
	Destination    string     `json:"destination"`
	Status         string     `json:"status"`
	PreviousStatus string     `json:"previous_status,omitempty"`
	DepartureDate  string     `json:"departure_date"`
	ReturnDate     string     `json:"return_date"`
	ActorName      string     `json:"actor_name"`
	ReadAt         *time.Time `json:"read_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

// NotificationList is the inbox envelope.
type NotificationList struct {
	Items       []Notification `json:"items"`
	UnreadCount int64          `json:"unread_count"`
}

func toTravelOrder(order queries.TravelOrderResponse) TravelOrder {
	return TravelOrder{
		ID:            order.ID.String(),
		OwnerID:       order.OwnerID.String(),
		Destination:   order.Destination,
		DepartureDate: order.DepartureDate.Format(time.DateOnly),
		ReturnDate:    order.ReturnDate.Format(time.DateOnly),
		Status:        order.Status,
		Reason:        order.Reason,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}

func toTravelOrderList(list queries.ListTravelOrdersResponse) TravelOrderList {
	items := make([]TravelOrder, len(list.Items))
	for i, order := range list.Items {
		items[i] = toTravelOrder(order)
	}
	return TravelOrderList{
		Items:    items,
		Total:    list.Total,
		Page:     list.Page,
		PerPage:  list.PerPage,
		LastPage: list.LastPage,
	}
}

func toNotificationList(list queries.ListNotificationsResponse) NotificationList {
	items := make([]Notification, len(list.Items))
	for i, entry := range list.Items {
		items[i] = Notification{
			ID:             entry.ID.String(),
			Kind:           entry.Kind,
			Message:        entry.Message,
			OrderID:        entry.OrderID.String(),
			Destination:    entry.Destination,
			Status:         entry.Status,
			PreviousStatus: entry.PreviousStatus,
			DepartureDate:  entry.DepartureDate.Format(time.DateOnly),
			ReturnDate:     entry.ReturnDate.Format(time.DateOnly),
			ActorName:      entry.ActorName,
			ReadAt:         entry.ReadAt,
			CreatedAt:      entry.CreatedAt,
		}
	}
	return NotificationList{Items: items, UnreadCount: list.UnreadCount}
}
