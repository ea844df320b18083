package notification

import (
	"travelorders/internal/pkg/errs"
)

// Kind classifies a notification by the order event that produced it.
// The kind determines the recipient set of the fan-out and the message
// template used for rendering.
type Kind int

const (
	// UnknownKind represents an invalid or undefined kind.
	UnknownKind Kind = iota

	// OrderCreated notifies administrators that a new travel order awaits
	// their decision.
	OrderCreated

	// StatusChanged notifies the order's owner that an administrator
	// decided on the order, or that it was cancelled.
	StatusChanged

	// OrderDeleted notifies the counterparty that a travel order was
	// removed: the owner when an administrator deleted it, the
	// administrators when the owner did.
	OrderDeleted
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind:   "unknown",
		OrderCreated:  "order_created",
		StatusChanged: "status_changed",
		OrderDeleted:  "order_deleted",
	}
}

// Validate checks if the Kind value is valid.
func (k Kind) Validate() error {
	if k != OrderCreated && k != StatusChanged && k != OrderDeleted {
		return errs.NewValueIsInvalidError("notification kind")
	}
	return nil
}

// String returns the wire name of the kind. Implements fmt.Stringer.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// KindFromString parses a Kind from its wire representation.
func KindFromString(s string) (Kind, error) {
	for kind, str := range getKindStrings() {
		if str == s && kind != UnknownKind {
			return kind, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidError("notification kind")
}
