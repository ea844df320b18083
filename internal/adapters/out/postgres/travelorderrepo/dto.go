// Package travelorderrepo provides data transfer objects and mapping functions
// for travel order persistence. This package implements the repository pattern
// for the travel order aggregate, handling the conversion between domain
// entities and database representations.
package travelorderrepo

import (
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/travelorder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TravelOrderDTO represents the database structure for persisting travel
// order aggregates. The status column is indexed because every list filter
// and the concurrency guard hit it, and DeletedAt gives GORM-native soft
// deletion so removed orders stay queryable for the audit retention sweep.
type TravelOrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID `gorm:"type:uuid;index"`
	Destination   string    `gorm:"type:varchar(255)"`
	DepartureDate time.Time
	ReturnDate    time.Time
	Status        string `gorm:"type:varchar(16);index"`
	Reason        string `gorm:"type:varchar(1000)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for travel order entities.
func (TravelOrderDTO) TableName() string {
	return "travel_orders"
}

// fromDomain converts a travel order aggregate to its database representation.
func fromDomain(order *travelorder.TravelOrder) TravelOrderDTO {
	return TravelOrderDTO{
		ID:            order.ID().Bytes(),
		OwnerID:       order.OwnerID().Bytes(),
		Destination:   order.Destination(),
		DepartureDate: order.Dates().Departure(),
		ReturnDate:    order.Dates().Return(),
		Status:        order.Status().String(),
		Reason:        order.Reason(),
		CreatedAt:     order.CreatedAt(),
		UpdatedAt:     order.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a travel order aggregate using
// RestoreTravelOrder.
func toDomain(dto TravelOrderDTO) (*travelorder.TravelOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	status, err := travelorder.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	dates, err := travelorder.NewTripDates(dto.DepartureDate, dto.ReturnDate)
	if err != nil {
		return nil, err
	}

	return travelorder.RestoreTravelOrder(
		id, ownerID, dto.Destination, dates, status, dto.Reason, dto.CreatedAt, dto.UpdatedAt)
}
