package commands

import (
	"errors"
	"time"

	"travelorders/internal/pkg/guard"
)

var (
	ErrPurgeDeletedTravelOrdersCommandIsNotConstructed = errors.New(
		"PurgeDeletedTravelOrdersCommand must be created via NewPurgeDeletedTravelOrdersCommand constructor",
	)
	ErrRetentionPeriodIsInvalid = errors.New("retention period must be greater than 0")
)

// PurgeDeletedTravelOrdersCommand represents a request to permanently remove
// travel orders that were soft-deleted longer ago than the retention period.
// Issued by the scheduled retention sweep, not by end users.
type PurgeDeletedTravelOrdersCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeDeletedTravelOrdersCommand creates a command carrying the audit
// retention period. Rows soft-deleted before now minus retention are purged.
func NewPurgeDeletedTravelOrdersCommand(retention time.Duration) (PurgeDeletedTravelOrdersCommand, error) {
	purgeCommand := PurgeDeletedTravelOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := purgeCommand.setRetention(retention); err != nil {
		return PurgeDeletedTravelOrdersCommand{}, err
	}

	return purgeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeDeletedTravelOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeDeletedTravelOrdersCommandIsNotConstructed)
}

// Retention returns the audit retention period.
func (c PurgeDeletedTravelOrdersCommand) Retention() time.Duration {
	return c.retention
}

func (c *PurgeDeletedTravelOrdersCommand) setRetention(retention time.Duration) error {
	if retention <= 0 {
		return ErrRetentionPeriodIsInvalid
	}

	c.retention = retention
	return nil
}
