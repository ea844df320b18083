package travelorder

import (
	"errors"
	"time"
	"unicode/utf8"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/errs"
)

const (
	maxDestinationLength = 255
	maxReasonLength      = 1000
)

// ErrTravelOrderIsNotConstructed is returned when a TravelOrder instance was
// not created through the NewTravelOrder or RestoreTravelOrder factory
// methods. This ensures all orders are properly validated.
var ErrTravelOrderIsNotConstructed = errors.New(
	"TravelOrder must be created via NewTravelOrder or RestoreTravelOrder constructor",
)

// TravelOrder represents a travel request in the system. It is the aggregate
// root that manages the order lifecycle from submission through the
// administrator's decision.
//
// TravelOrder follows these invariants:
//   - Must have a valid unique identifier and owner
//   - Destination must be non-empty and at most 255 characters
//   - Return date must not precede the departure date
//   - Status transitions follow the rules defined on Status: pending is the
//     only state from which approve, reject, and cancel are legal
//   - Reason is set only on reject or cancel, at most 1000 characters
//   - Can only be created through its factory functions
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. A transition records the previous
// status, which the persistence layer uses as a compare-and-swap guard so
// that two concurrent transitions on the same order cannot both succeed.
type TravelOrder struct {
	id      kernel.UUID
	ownerID kernel.UUID

	destination string
	dates       TripDates

	status Status
	reason string

	// previousStatus holds the pre-transition status after Approve,
	// Reject, or Cancel. Unknown until a transition happens; never
	// persisted.
	previousStatus Status

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewTravelOrder creates a new TravelOrder in Pending status with validation.
// This is the only way to create a valid new order; persistence
// reconstruction goes through RestoreTravelOrder.
//
// Returns a ValidationError listing per-field problems when the destination
// or dates are invalid.
func NewTravelOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	destination string,
	dates TripDates,
) (*TravelOrder, error) {
	if err := errors.Join(id.Validate(), ownerID.Validate()); err != nil {
		return nil, err
	}

	order := &TravelOrder{
		id:            id,
		ownerID:       ownerID,
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}
	order.updatedAt = order.createdAt

	if err := order.setDetails(destination, dates); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreTravelOrder reconstructs a TravelOrder from persistence.
// Unlike NewTravelOrder it accepts any valid status and existing timestamps.
func RestoreTravelOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	destination string,
	dates TripDates,
	status Status,
	reason string,
	createdAt time.Time,
	updatedAt time.Time,
) (*TravelOrder, error) {
	if err := errors.Join(id.Validate(), ownerID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	order := &TravelOrder{
		id:            id,
		ownerID:       ownerID,
		status:        status,
		reason:        reason,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := order.setDetails(destination, dates); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the TravelOrder instance was properly constructed.
// Returns ErrTravelOrderIsNotConstructed otherwise.
func (o *TravelOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrTravelOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *TravelOrder) IsEqual(other *TravelOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *TravelOrder) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the identifier of the requesting user.
func (o *TravelOrder) OwnerID() kernel.UUID {
	return o.ownerID
}

// Destination returns the travel destination.
func (o *TravelOrder) Destination() string {
	return o.destination
}

// Dates returns the departure/return date pair.
func (o *TravelOrder) Dates() TripDates {
	return o.dates
}

// Status returns the current status of the order.
func (o *TravelOrder) Status() Status {
	return o.status
}

// PreviousStatus returns the status the order held before the last
// transition applied to this instance, or Unknown if no transition
// happened since it was constructed.
func (o *TravelOrder) PreviousStatus() Status {
	return o.previousStatus
}

// Reason returns the reason recorded on reject or cancel, possibly empty.
func (o *TravelOrder) Reason() string {
	return o.reason
}

// CreatedAt returns the creation timestamp.
func (o *TravelOrder) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (o *TravelOrder) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeDetails replaces the destination and dates of a pending order.
// Returns InvalidStateError when the order is not pending, or a
// ValidationError when the new values are invalid. No notification is
// associated with this operation.
func (o *TravelOrder) ChangeDetails(destination string, dates TripDates) error {
	if o.status != Pending {
		return errs.NewInvalidStateError("update travel order", o.status.String())
	}

	if err := o.setDetails(destination, dates); err != nil {
		return err
	}

	o.touch()
	return nil
}

// Approve transitions the order to Approved.
// Legal only while pending; records the previous status for the
// compare-and-swap persistence guard and notification payloads.
func (o *TravelOrder) Approve() error {
	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	o.transitionTo(newStatus)
	return nil
}

// Reject transitions the order to Rejected, recording an optional reason.
// Legal only while pending.
func (o *TravelOrder) Reject(reason string) error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	if err = o.setReason(reason); err != nil {
		return err
	}

	o.transitionTo(newStatus)
	return nil
}

// Cancel transitions the order to Cancelled, recording an optional reason.
// Legal only while pending.
func (o *TravelOrder) Cancel(reason string) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	if err = o.setReason(reason); err != nil {
		return err
	}

	o.transitionTo(newStatus)
	return nil
}

// ValidateDeletableBy checks the state rule gating deletion.
// Admins may delete at any status; the owner may delete only while the
// order is pending, i.e. before an administrator has interacted with it.
// Authorization (ownership) is checked separately by the access policy.
func (o *TravelOrder) ValidateDeletableBy(actor kernel.Actor) error {
	if actor.IsAdmin() {
		return nil
	}
	if o.status != Pending {
		return errs.NewInvalidStateError("delete travel order", o.status.String())
	}
	return nil
}

func (o *TravelOrder) transitionTo(newStatus Status) {
	o.previousStatus = o.status
	o.status = newStatus
	o.touch()
}

func (o *TravelOrder) setDetails(destination string, dates TripDates) error {
	fields := make(map[string]string)

	if destination == "" {
		fields["destination"] = "must not be empty"
	} else if utf8.RuneCountInString(destination) > maxDestinationLength {
		fields["destination"] = "must be at most 255 characters"
	}

	if err := dates.Validate(); err != nil {
		var validationErr *errs.ValidationError
		if errors.As(err, &validationErr) {
			for field, message := range validationErr.Fields {
				fields[field] = message
			}
		} else {
			return err
		}
	}

	if len(fields) > 0 {
		return errs.NewValidationError(fields)
	}

	o.destination = destination
	o.dates = dates
	return nil
}

func (o *TravelOrder) setReason(reason string) error {
	if utf8.RuneCountInString(reason) > maxReasonLength {
		return errs.NewSingleFieldValidationError("reason", "must be at most 1000 characters")
	}
	o.reason = reason
	return nil
}

func (o *TravelOrder) touch() {
	o.updatedAt = time.Now().UTC()
}
