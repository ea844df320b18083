// Package userrepo provides read access to the user directory table. Users
// are provisioned by the identity gateway upstream; this adapter only reads
// them to resolve actors and the administrator roster.
package userrepo

import (
	"travelorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the database structure of a directory user.
type UserDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255)"`
	Email string    `gorm:"type:varchar(255)"`
	Role  string    `gorm:"type:varchar(16);index"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// toActor converts a database DTO to an actor value.
func toActor(dto UserDTO) (kernel.Actor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return kernel.Actor{}, err
	}

	return kernel.NewActor(id, dto.Name, dto.Email, kernel.Role(dto.Role))
}
