package notificationrepo

import (
	"context"
	"errors"
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/notification"
	"travelorders/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormNotificationRepository implements NotificationRepository using GORM.
type GormNotificationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormNotificationRepository creates a new GORM notification repository.
func NewGormNotificationRepository(db *gorm.DB, tracker aggregateTracker) *GormNotificationRepository {
	return &GormNotificationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new notification to the database. An insert that collides
// with an existing identifier is silently discarded: identity is
// deterministic per (recipient, order, transition), so the collision means
// the same fan-out already landed.
func (r *GormNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists the notification's read state, the only field that
// changes after creation.
func (r *GormNotificationRepository) Update(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id = ? AND recipient_id = ?",
			aggregate.ID().Bytes(), aggregate.RecipientID().Bytes()).
		Update("read_at", aggregate.ReadAt())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetForRecipient retrieves one notification owned by the recipient.
// A notification owned by someone else is indistinguishable from a missing
// one.
func (r *GormNotificationRepository) GetForRecipient(
	ctx context.Context,
	recipientID kernel.UUID,
	id kernel.UUID,
) (*notification.Notification, error) {
	if err := errors.Join(recipientID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto NotificationDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND recipient_id = ?", id.Bytes(), recipientID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("notification", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForRecipient retrieves the recipient's notifications, unread first,
// most recent first within each group, capped at limit.
func (r *GormNotificationRepository) GetAllForRecipient(
	ctx context.Context,
	recipientID kernel.UUID,
	limit int,
) ([]*notification.Notification, error) {
	if err := recipientID.Validate(); err != nil {
		return nil, err
	}

	var dtos []NotificationDTO
	err := r.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID.Bytes()).
		Order("(read_at IS NULL) DESC, created_at DESC, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	notifications := make([]*notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		notifications = append(notifications, aggregate)
	}

	return notifications, nil
}

// MarkAllReadForRecipient stamps every unread notification of the recipient
// with the given time.
func (r *GormNotificationRepository) MarkAllReadForRecipient(
	ctx context.Context,
	recipientID kernel.UUID,
	readAt time.Time,
) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("recipient_id = ? AND read_at IS NULL", recipientID.Bytes()).
		Update("read_at", readAt).Error
}

// DeleteForRecipient removes one notification owned by the recipient.
func (r *GormNotificationRepository) DeleteForRecipient(
	ctx context.Context,
	recipientID kernel.UUID,
	id kernel.UUID,
) error {
	if err := errors.Join(recipientID.Validate(), id.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Delete(&NotificationDTO{}, "id = ? AND recipient_id = ?", id.Bytes(), recipientID.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", id.String())
	}

	return nil
}
