package kernel_test

import (
	"testing"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	t.Run("creates valid user actor", func(t *testing.T) {
		id := kernel.NewUUID()

		actor, err := kernel.NewActor(id, "Maria Silva", "maria@example.com", kernel.RoleUser)

		require.NoError(t, err)
		assert.NoError(t, actor.Validate())
		assert.True(t, actor.ID().IsEqual(id))
		assert.Equal(t, "Maria Silva", actor.Name())
		assert.Equal(t, "maria@example.com", actor.Email())
		assert.Equal(t, kernel.RoleUser, actor.Role())
		assert.False(t, actor.IsAdmin())
	})

	t.Run("creates valid admin actor", func(t *testing.T) {
		actor, err := kernel.NewActor(kernel.NewUUID(), "Admin", "", kernel.RoleAdmin)

		require.NoError(t, err)
		assert.True(t, actor.IsAdmin())
	})

	t.Run("rejects zero UUID", func(t *testing.T) {
		var id kernel.UUID

		_, err := kernel.NewActor(id, "Maria", "", kernel.RoleUser)

		require.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.NewUUID(), "", "", kernel.RoleUser)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.NewUUID(), "Maria", "", kernel.Role("superuser"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestActor_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var actor kernel.Actor

		require.ErrorIs(t, actor.Validate(), kernel.ErrActorIsNotConstructed)
	})
}
