package userrepo

import (
	"context"
	"errors"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Get retrieves one user as an actor value.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (kernel.Actor, error) {
	if err := id.Validate(); err != nil {
		return kernel.Actor{}, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.Actor{}, errs.NewObjectNotFoundError("user", id.String())
		}
		return kernel.Actor{}, err
	}

	return toActor(dto)
}

// GetAllAdmins retrieves every user holding the admin role. The roster is
// read per call so membership changes take effect immediately.
func (r *GormUserRepository) GetAllAdmins(ctx context.Context) ([]kernel.Actor, error) {
	var dtos []UserDTO
	err := r.db.WithContext(ctx).
		Where("role = ?", kernel.RoleAdmin.String()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	admins := make([]kernel.Actor, 0, len(dtos))
	for _, dto := range dtos {
		admin, mapErr := toActor(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		admins = append(admins, admin)
	}

	return admins, nil
}
