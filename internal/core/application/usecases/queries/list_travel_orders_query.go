package queries

import (
	"errors"
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/travelorder"
	"travelorders/internal/pkg/errs"
	"travelorders/internal/pkg/guard"
)

var ErrListTravelOrdersQueryIsNotConstructed = errors.New(
	"ListTravelOrdersQuery must be created via NewListTravelOrdersQuery constructor",
)

// Sort columns accepted by the list query. Anything else is rejected at
// construction time so column names never flow into SQL unchecked.
const (
	SortByCreatedAt     = "created_at"
	SortByDepartureDate = "departure_date"
	SortByReturnDate    = "return_date"
	SortByDestination   = "destination"
	SortByStatus        = "status"
)

var listSortColumns = map[string]struct{}{
	SortByCreatedAt:     {},
	SortByDepartureDate: {},
	SortByReturnDate:    {},
	SortByDestination:   {},
	SortByStatus:        {},
}

// ListTravelOrdersFilters carries the optional filtering, sorting, and
// pagination inputs of the list query. The zero value means no filters,
// default sort (created_at, newest first), and no pagination.
type ListTravelOrdersFilters struct {
	// Statuses restricts results to the given statuses.
	Statuses []travelorder.Status

	// Destination restricts results to destinations containing the
	// given fragment, case-insensitively.
	Destination string

	// OwnerID restricts results to one owner's orders. Only honored for
	// admin callers; regular users are always scoped to themselves.
	OwnerID kernel.UUID

	// Date range bounds, inclusive. Nil means unbounded.
	DepartureFrom *time.Time
	DepartureTo   *time.Time
	ReturnFrom    *time.Time
	ReturnTo      *time.Time
	CreatedFrom   *time.Time
	CreatedTo     *time.Time

	// SortBy is one of the SortBy* columns; empty means created_at.
	SortBy string

	// SortAscending orders results oldest/lowest first. The default is
	// descending, newest first.
	SortAscending bool

	// Page and PerPage select an offset page. PerPage zero disables
	// pagination and returns the full result set.
	Page    int
	PerPage int
}

// ListTravelOrdersQuery retrieves a filtered, sorted page of travel orders.
// Regular users only ever see their own orders; administrators see all and
// may additionally filter by owner.
//
// Example:
//
//	filters := ListTravelOrdersFilters{
//	    Statuses: []travelorder.Status{travelorder.Pending},
//	    SortBy:   SortByDepartureDate,
//	    Page:     1,
//	    PerPage:  20,
//	}
//	query, err := NewListTravelOrdersQuery(actor, filters)
//	if err != nil {
//	    return err
//	}
//
//	page, err := NewListTravelOrdersQueryHandler(db).Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d of %d orders\n", len(page.Items), page.Total)
type ListTravelOrdersQuery struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	filters ListTravelOrdersFilters

	guard guard.ConstructorGuard
}

// NewListTravelOrdersQuery creates a list query with validation.
// Rejects unknown statuses, unknown sort columns, and non-positive page
// numbers when pagination is requested.
func NewListTravelOrdersQuery(
	actor kernel.Actor,
	filters ListTravelOrdersFilters,
) (ListTravelOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListTravelOrdersQuery{}, err
	}

	for _, status := range filters.Statuses {
		if err := status.Validate(); err != nil {
			return ListTravelOrdersQuery{}, err
		}
	}

	if filters.SortBy == "" {
		filters.SortBy = SortByCreatedAt
	}
	if _, ok := listSortColumns[filters.SortBy]; !ok {
		return ListTravelOrdersQuery{}, errs.NewSingleFieldValidationError(
			"sort_by", "must be one of created_at, departure_date, return_date, destination, status")
	}

	if filters.PerPage < 0 {
		return ListTravelOrdersQuery{}, errs.NewSingleFieldValidationError(
			"per_page", "must be greater than 0")
	}
	if filters.PerPage > 0 && filters.Page <= 0 {
		filters.Page = 1
	}

	return ListTravelOrdersQuery{
		actor:   actor,
		filters: filters,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListTravelOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListTravelOrdersQueryIsNotConstructed)
}

// Actor returns the requesting user.
func (q ListTravelOrdersQuery) Actor() kernel.Actor {
	return q.actor
}

// Filters returns the normalized filter set.
func (q ListTravelOrdersQuery) Filters() ListTravelOrdersFilters {
	return q.filters
}

// ListTravelOrdersResponse is the paginated list envelope.
// Without pagination, Page and LastPage are 1 and PerPage equals Total.
type ListTravelOrdersResponse struct {
	Items    []TravelOrderResponse
	Total    int64
	Page     int
	PerPage  int
	LastPage int
}
