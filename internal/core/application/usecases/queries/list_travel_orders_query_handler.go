package queries

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ListTravelOrdersQueryHandler reads pages of travel orders from the
// database. Filtering and sorting happen in SQL; soft-deleted rows are
// always excluded.
type ListTravelOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListTravelOrdersQueryHandler creates a handler for list queries.
// Requires a GORM database connection for query execution.
func NewListTravelOrdersQueryHandler(db *gorm.DB) ListTravelOrdersQueryHandler {
	return ListTravelOrdersQueryHandler{db: db}
}

// Handle executes the list query and returns the paginated envelope.
// Total always reflects the full filtered set, not the returned page.
func (h ListTravelOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListTravelOrdersQuery,
) (ListTravelOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return ListTravelOrdersResponse{}, err
	}

	where, args := buildListFilter(query)

	var total int64
	countSQL := "SELECT count(*) FROM travel_orders WHERE " + where
	if err := h.db.WithContext(ctx).Raw(countSQL, args...).Scan(&total).Error; err != nil {
		return ListTravelOrdersResponse{}, err
	}

	filters := query.Filters()
	direction := "DESC"
	if filters.SortAscending {
		direction = "ASC"
	}

	// SortBy passed the whitelist at construction time.
	selectSQL := fmt.Sprintf(`
		SELECT
			id,
			owner_id,
			destination,
			departure_date,
			return_date,
			status,
			reason,
			created_at,
			updated_at
		FROM travel_orders
		WHERE %s
		ORDER BY %s %s, id
	`, where, filters.SortBy, direction)

	page, perPage, lastPage := 1, int(total), 1
	if filters.PerPage > 0 {
		page, perPage = filters.Page, filters.PerPage
		lastPage = int((total + int64(perPage) - 1) / int64(perPage))
		if lastPage < 1 {
			lastPage = 1
		}
		selectSQL += " LIMIT ? OFFSET ?"
		args = append(args, perPage, (page-1)*perPage)
	}

	rows, err := h.db.WithContext(ctx).Raw(selectSQL, args...).Rows()
	if err != nil {
		return ListTravelOrdersResponse{}, err
	}
	defer rows.Close()

	items := make([]TravelOrderResponse, 0)
	for rows.Next() {
		item, scanErr := scanTravelOrderRow(rows)
		if scanErr != nil {
			return ListTravelOrdersResponse{}, scanErr
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return ListTravelOrdersResponse{}, err
	}

	return ListTravelOrdersResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PerPage:  perPage,
		LastPage: lastPage,
	}, nil
}

func buildListFilter(query ListTravelOrdersQuery) (string, []any) {
	conditions := []string{"deleted_at IS NULL"}
	args := make([]any, 0)

	filters := query.Filters()

	// Regular users only see their own orders regardless of filters.
	if !query.Actor().IsAdmin() {
		conditions = append(conditions, "owner_id = ?")
		args = append(args, query.Actor().ID().String())
	} else if filters.OwnerID.Validate() == nil {
		conditions = append(conditions, "owner_id = ?")
		args = append(args, filters.OwnerID.String())
	}

	if len(filters.Statuses) > 0 {
		statuses := make([]string, 0, len(filters.Statuses))
		for _, status := range filters.Statuses {
			statuses = append(statuses, status.String())
		}
		conditions = append(conditions, "status IN ?")
		args = append(args, statuses)
	}

	if filters.Destination != "" {
		conditions = append(conditions, "destination ILIKE ?")
		args = append(args, "%"+filters.Destination+"%")
	}

	ranges := []struct {
		column string
		op     string
		value  any
	}{
		{"departure_date", ">=", timeArg(filters.DepartureFrom)},
		{"departure_date", "<=", timeArg(filters.DepartureTo)},
		{"return_date", ">=", timeArg(filters.ReturnFrom)},
		{"return_date", "<=", timeArg(filters.ReturnTo)},
		{"created_at", ">=", timeArg(filters.CreatedFrom)},
		{"created_at", "<=", timeArg(filters.CreatedTo)},
	}
	for _, r := range ranges {
		if r.value == nil {
			continue
		}
		conditions = append(conditions, fmt.Sprintf("%s %s ?", r.column, r.op))
		args = append(args, r.value)
	}

	return strings.Join(conditions, " AND "), args
}

func timeArg(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
