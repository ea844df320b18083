package travelorder

import (
	"time"

	"travelorders/internal/pkg/errs"
)

// TripDates is a value object holding the departure and return calendar
// dates of a travel order. It enforces the invariant that the return date
// never precedes the departure date.
//
// TripDates is immutable. The zero value is invalid and must be constructed
// via NewTripDates. Time-of-day components are discarded; only the calendar
// date in UTC is kept.
type TripDates struct {
	departure time.Time
	returning time.Time

	isConstructed bool
}

// NewTripDates creates a TripDates pair with validation.
// Both dates are required and the return date must be on or after the
// departure date. On violation it returns a ValidationError listing the
// offending fields.
func NewTripDates(departure time.Time, returning time.Time) (TripDates, error) {
	fields := make(map[string]string)
	if departure.IsZero() {
		fields["departure_date"] = "is required"
	}
	if returning.IsZero() {
		fields["return_date"] = "is required"
	}

	departure = truncateToDate(departure)
	returning = truncateToDate(returning)

	if len(fields) == 0 && returning.Before(departure) {
		fields["return_date"] = "must not precede departure date"
	}

	if len(fields) > 0 {
		return TripDates{}, errs.NewValidationError(fields)
	}

	return TripDates{
		departure:     departure,
		returning:     returning,
		isConstructed: true,
	}, nil
}

// Validate checks that the TripDates was created via NewTripDates.
func (d TripDates) Validate() error {
	if !d.isConstructed {
		return errs.NewValidationError(map[string]string{
			"departure_date": "is required",
			"return_date":    "is required",
		})
	}
	return nil
}

// Departure returns the departure date (UTC, midnight).
func (d TripDates) Departure() time.Time {
	return d.departure
}

// Return returns the return date (UTC, midnight).
func (d TripDates) Return() time.Time {
	return d.returning
}

// IsEqual compares two TripDates values.
func (d TripDates) IsEqual(other TripDates) bool {
	return d.departure.Equal(other.departure) && d.returning.Equal(other.returning)
}

func truncateToDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
