// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"travelorders/internal/core/domain/model/notification"
	"travelorders/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// TravelOrderRepoFactory provides access to the travel order repository within a transaction.
	TravelOrderRepoFactory interface {
		TravelOrderRepository() ports.TravelOrderRepository
	}

	// NotificationRepoFactory provides access to the notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// UserRepoFactory provides access to the user directory within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands modify travel orders without emitting notifications.
	OrderUoW interface {
		TxManager
		TravelOrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// NotificationUoW manages transactions for inbox-only operations.
	// Used by the mark-read and delete-notification commands.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	// UoW manages transactions spanning travel orders, the inbox, and the
	// user directory. Used for commands whose transitions fan out
	// notifications: the inbox rows must land in the same transaction as
	// the order mutation they describe.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.TravelOrderRepository()
	//   notificationRepo := uow.NotificationRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		TravelOrderRepoFactory
		NotificationRepoFactory
		UserRepoFactory
	}

	// UoWFactory creates new unit of work instances for fan-out operations.
	UoWFactory interface {
		Create() UoW
	}
)

// FanoutStores exposes the transactional repositories the dispatcher reads
// and writes while planning a fan-out: the admin roster and the inbox.
type FanoutStores interface {
	NotificationRepoFactory
	UserRepoFactory
}

// Dispatcher is the notification pipeline as seen by command handlers.
//
// Dispatch runs inside the caller's transaction: it resolves the recipient
// set, persists the inbox rows through the provided stores, and returns the
// planned notifications. DeliverAsync is called strictly after commit and
// hands the same notifications to the push and mail channels without
// blocking; delivery failures never affect the committed operation.
type Dispatcher interface {
	Dispatch(
		ctx context.Context,
		stores FanoutStores,
		event notification.Event,
	) ([]*notification.Notification, error)
	DeliverAsync(event notification.Event, notifications []*notification.Notification)
}
