package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTravelOrderQueryHandler reads a single travel order from the database.
// Soft-deleted orders are invisible and surface as not found.
type GetTravelOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetTravelOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetTravelOrderQueryHandler(db *gorm.DB) GetTravelOrderQueryHandler {
	return GetTravelOrderQueryHandler{db: db}
}

// Handle executes the query for one travel order.
// Returns ObjectNotFoundError for absent or soft-deleted orders and
// ForbiddenError when the actor is neither the owner nor an admin.
func (h GetTravelOrderQueryHandler) Handle(
	ctx context.Context,
	query GetTravelOrderQuery,
) (TravelOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return TravelOrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE id = ? AND deleted_at IS NULL
	`, query.OrderID().String()).Row()

	order, err := scanTravelOrderRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return TravelOrderResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return TravelOrderResponse{}, err
	}

	if !query.Actor().IsAdmin() && !query.Actor().ID().IsEqual(order.OwnerID) {
		return TravelOrderResponse{}, errs.NewForbiddenErrorWithCause("get travel order",
			fmt.Errorf("actor %s is neither the owner nor an admin", query.Actor().ID()))
	}

	return order, nil
}

// rowScanner covers both sql.Row and sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTravelOrderRow(row rowScanner) (TravelOrderResponse, error) {
	var resp TravelOrderResponse
	var id, ownerID uuid.UUID
	var reason sql.NullString

	if err := row.Scan(
		&id,
		&ownerID,
		&resp.Destination,
		&resp.DepartureDate,
		&resp.ReturnDate,
		&resp.Status,
		&reason,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	); err != nil {
		return TravelOrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return TravelOrderResponse{}, err
	}
	owner, err := kernel.UUIDFromBytes(ownerID[:])
	if err != nil {
		return TravelOrderResponse{}, err
	}

	resp.ID = orderID
	resp.OwnerID = owner
	resp.Reason = reason.String
	return resp, nil
}
