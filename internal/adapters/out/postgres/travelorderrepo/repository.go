package travelorderrepo

import (
	"context"
	"errors"
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/travelorder"
	"travelorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTravelOrderRepository implements TravelOrderRepository using GORM.
type GormTravelOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTravelOrderRepository creates a new GORM travel order repository.
func NewGormTravelOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormTravelOrderRepository {
	return &GormTravelOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new travel order to the database.
func (r *GormTravelOrderRepository) Add(ctx context.Context, aggregate *travelorder.TravelOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing travel order to the database.
//
// The write is guarded by the status the aggregate held before its last
// transition, so it only lands if no concurrent operation has moved the
// order since it was loaded. A lost race surfaces as InvalidStateError.
func (r *GormTravelOrderRepository) Update(ctx context.Context, aggregate *travelorder.TravelOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	expected := aggregate.Status()
	if prev := aggregate.PreviousStatus(); prev != travelorder.Unknown {
		expected = prev
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TravelOrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, expected.String()).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewInvalidStateErrorWithCause(
			"update travel order", expected.String(), gorm.ErrRecordNotFound)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a travel order by ID. Soft-deleted orders are excluded by
// GORM's DeletedAt handling and surface as not found.
func (r *GormTravelOrderRepository) Get(ctx context.Context, id kernel.UUID) (*travelorder.TravelOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TravelOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("travel order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// SoftDelete marks the order deleted while retaining the row for audit.
//
// The delete only lands while the order still holds the status it was
// loaded in, so a concurrent approve, reject, or cancel that commits first
// wins and this caller observes InvalidStateError.
func (r *GormTravelOrderRepository) SoftDelete(ctx context.Context, aggregate *travelorder.TravelOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), aggregate.Status().String()).
		Delete(&TravelOrderDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewInvalidStateErrorWithCause(
			"delete travel order", aggregate.Status().String(), gorm.ErrRecordNotFound)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// PurgeDeletedBefore permanently removes orders soft-deleted before the
// cutoff and returns the number of rows removed.
func (r *GormTravelOrderRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&TravelOrderDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
