// Package ports defines the contracts between the application core and
// infrastructure adapters: repositories, the unit of work, and the outbound
// notification channels. These interfaces establish dependency inversion
// and keep the core testable.
package ports

import (
	"context"
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/travelorder"
)

// TravelOrderRepository defines the persistence contract for travel order
// aggregates. Soft-deleted orders are invisible to every method except
// PurgeDeletedBefore; they are retained in storage for audit.
type TravelOrderRepository interface {
	// Add persists a new travel order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *travelorder.TravelOrder) error

	// Update persists changes to an existing travel order aggregate.
	//
	// The update is guarded by the status the aggregate held when it was
	// loaded: when a transition was applied, the write only succeeds if
	// the stored row still carries the pre-transition status. Of two
	// concurrent transitions on the same order, exactly one wins; the
	// loser receives an InvalidStateError.
	Update(ctx context.Context, aggregate *travelorder.TravelOrder) error

	// Get retrieves a travel order aggregate by its unique identifier.
	// Returns ObjectNotFoundError when the order is absent or soft-deleted.
	Get(ctx context.Context, id kernel.UUID) (*travelorder.TravelOrder, error)

	// SoftDelete marks the order deleted, excluding it from all queries
	// while retaining the row for audit. The write is guarded by the
	// status the aggregate was loaded in and returns InvalidStateError
	// when a concurrent transition landed first.
	SoftDelete(ctx context.Context, aggregate *travelorder.TravelOrder) error

	// PurgeDeletedBefore permanently removes orders soft-deleted before
	// the cutoff. Returns the number of rows removed. Used by the
	// retention sweep job.
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
