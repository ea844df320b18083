package services_test

import (
	"testing"
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/travelorder"
	"travelorders/internal/core/domain/services"
	"travelorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), "Test Actor", "actor@example.com", role)
	require.NoError(t, err)
	return actor
}

func newOrderOwnedBy(t *testing.T, ownerID kernel.UUID) *travelorder.TravelOrder {
	t.Helper()
	dates, err := travelorder.NewTripDates(
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 22, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	order, err := travelorder.NewTravelOrder(kernel.NewUUID(), ownerID, "Paris", dates)
	require.NoError(t, err)
	return order
}

func TestAccessPolicy_CanAccess(t *testing.T) {
	policy := services.NewAccessPolicy()

	t.Run("admin can access any order", func(t *testing.T) {
		admin := newActor(t, kernel.RoleAdmin)
		order := newOrderOwnedBy(t, kernel.NewUUID())

		require.NoError(t, policy.CanAccess(admin, order, "view travel order"))
	})

	t.Run("owner can access own order", func(t *testing.T) {
		owner := newActor(t, kernel.RoleUser)
		order := newOrderOwnedBy(t, owner.ID())

		require.NoError(t, policy.CanAccess(owner, order, "view travel order"))
		assert.True(t, policy.IsOwner(owner, order))
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		stranger := newActor(t, kernel.RoleUser)
		order := newOrderOwnedBy(t, kernel.NewUUID())

		err := policy.CanAccess(stranger, order, "view travel order")

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("unconstructed actor fails", func(t *testing.T) {
		var actor kernel.Actor
		order := newOrderOwnedBy(t, kernel.NewUUID())

		require.Error(t, policy.CanAccess(actor, order, "view travel order"))
	})
}

func TestAccessPolicy_CanChangeStatus(t *testing.T) {
	policy := services.NewAccessPolicy()

	t.Run("admin may change status", func(t *testing.T) {
		require.NoError(t, policy.CanChangeStatus(newActor(t, kernel.RoleAdmin)))
	})

	t.Run("owner may not change status", func(t *testing.T) {
		err := policy.CanChangeStatus(newActor(t, kernel.RoleUser))

		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}
