package travelorder

import (
	"travelorders/internal/pkg/errs"
)

// Status represents the lifecycle state of a travel order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct approval workflow.
//
// State transitions:
//
//	Pending ──┬──> Approved
//	          ├──> Rejected
//	          └──> Cancelled
//
// Approved, Rejected, and Cancelled are terminal: no transition is legal
// out of them. Pending is the only state from which approve, reject, and
// cancel may be called.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a travel order is first created.
	// Orders in this status await an administrator's decision.
	Pending

	// Approved indicates an administrator approved the order. Terminal.
	Approved

	// Rejected indicates an administrator rejected the order. Terminal.
	Rejected

	// Cancelled indicates the order was cancelled while pending. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Approved:  "approved",
		Rejected:  "rejected",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Approved:  "approved",
		Rejected:  "rejected",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses a Status from its wire representation.
// Returns a ValidationError when the string names no known status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewSingleFieldValidationError("status", "unknown status "+s)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Approved, Rejected, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the lowercase wire name of the status.
// Returns "unknown" for invalid status values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Approved || s == Rejected || s == Cancelled
}

// ValidateDecision checks that a status is a legal admin decision.
// Only Approved and Rejected may be set through the change-status
// operation; cancellation has its own operation.
func (s Status) ValidateDecision() error {
	if s != Approved && s != Rejected {
		return errs.NewSingleFieldValidationError("status", "must be approved or rejected")
	}
	return nil
}

// Approve transitions the status to Approved.
//
// Valid transitions:
//   - Pending -> Approved
//
// Returns (0, InvalidStateError) from any other status.
func (s Status) Approve() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("approve travel order", s.String())
	}
	return Approved, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - Pending -> Rejected
//
// Returns (0, InvalidStateError) from any other status.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("reject travel order", s.String())
	}
	return Rejected, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//
// Returns (0, InvalidStateError) from any other status.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("cancel travel order", s.String())
	}
	return Cancelled, nil
}
