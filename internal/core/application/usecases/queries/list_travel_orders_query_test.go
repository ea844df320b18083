package queries_test

import (
	"testing"

	"travelorders/internal/core/application/usecases/queries"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/travelorder"
	"travelorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), "Dana Cruz", "dana@example.com", role)
	require.NoError(t, err)
	return actor
}

func TestNewListTravelOrdersQuery_Defaults(t *testing.T) {
	query, err := queries.NewListTravelOrdersQuery(
		testActor(t, kernel.RoleUser), queries.ListTravelOrdersFilters{})
	require.NoError(t, err)
	assert.Equal(t, queries.SortByCreatedAt, query.Filters().SortBy)
	assert.False(t, query.Filters().SortAscending)
	assert.Zero(t, query.Filters().PerPage)
}

func TestNewListTravelOrdersQuery_PageDefaultsToFirst(t *testing.T) {
	query, err := queries.NewListTravelOrdersQuery(
		testActor(t, kernel.RoleUser), queries.ListTravelOrdersFilters{PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, query.Filters().Page)
	assert.Equal(t, 10, query.Filters().PerPage)
}

func TestNewListTravelOrdersQuery_UnknownSortColumn(t *testing.T) {
	_, err := queries.NewListTravelOrdersQuery(
		testActor(t, kernel.RoleUser), queries.ListTravelOrdersFilters{SortBy: "owner_id; DROP TABLE"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestNewListTravelOrdersQuery_InvalidStatus(t *testing.T) {
	_, err := queries.NewListTravelOrdersQuery(
		testActor(t, kernel.RoleUser),
		queries.ListTravelOrdersFilters{Statuses: []travelorder.Status{travelorder.Unknown}})
	require.Error(t, err)
}

func TestNewListTravelOrdersQuery_NegativePerPage(t *testing.T) {
	_, err := queries.NewListTravelOrdersQuery(
		testActor(t, kernel.RoleUser), queries.ListTravelOrdersFilters{PerPage: -1})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestListTravelOrdersQuery_Validate_Unconstructed(t *testing.T) {
	query := queries.ListTravelOrdersQuery{}
	require.ErrorIs(t, query.Validate(), queries.ErrListTravelOrdersQueryIsNotConstructed)
}

func TestNewGetTravelOrderQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetTravelOrderQuery(kernel.UUID{}, testActor(t, kernel.RoleUser))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewListNotificationsQuery_DefaultLimit(t *testing.T) {
	query, err := queries.NewListNotificationsQuery(kernel.NewUUID(), 0)
	require.NoError(t, err)
	assert.Equal(t, 10, query.Limit())

	query, err = queries.NewListNotificationsQuery(kernel.NewUUID(), 25)
	require.NoError(t, err)
	assert.Equal(t, 25, query.Limit())
}
