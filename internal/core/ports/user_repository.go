package ports

import (
	"context"

	"travelorders/internal/core/domain/model/kernel"
)

// UserRepository provides read access to the user directory. The core uses
// it to resolve the administrator roster for notification fan-out and to
// look up owner identities for delivery.
//
// The roster is re-queried per dispatch rather than cached, so admins added
// or removed between events are always honored.
type UserRepository interface {
	// Get retrieves one user as an actor value.
	// Returns ObjectNotFoundError when no such user exists.
	Get(ctx context.Context, id kernel.UUID) (kernel.Actor, error)

	// GetAllAdmins retrieves every user holding the admin role.
	GetAllAdmins(ctx context.Context) ([]kernel.Actor, error)
}
