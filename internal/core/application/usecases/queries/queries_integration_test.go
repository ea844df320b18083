package queries_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"travelorders/internal/adapters/out/postgres/notificationrepo"
	"travelorders/internal/adapters/out/postgres/travelorderrepo"
	"travelorders/internal/core/application/usecases/queries"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/travelorder"
	"travelorders/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QueriesIntegrationTestSuite exercises the read-side handlers against a
// real PostgreSQL instance seeded through the write-side table layouts.
type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&travelorderrepo.TravelOrderDTO{},
		&notificationrepo.NotificationDTO{},
	))
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE travel_orders, notifications").Error)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) newActor(role kernel.Role) kernel.Actor {
	actor, err := kernel.NewActor(kernel.NewUUID(), "Dana Cruz", "dana@example.com", role)
	suite.Require().NoError(err)
	return actor
}

func (suite *QueriesIntegrationTestSuite) seedOrder(ownerID kernel.UUID, destination string, status string, departure time.Time) travelorderrepo.TravelOrderDTO {
	id, err := uuid.Parse(kernel.NewUUID().String())
	suite.Require().NoError(err)
	owner, err := uuid.Parse(ownerID.String())
	suite.Require().NoError(err)

	dto := travelorderrepo.TravelOrderDTO{
		ID:            id,
		OwnerID:       owner,
		Destination:   destination,
		DepartureDate: departure,
		ReturnDate:    departure.AddDate(0, 0, 4),
		Status:        status,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto
}

func (suite *QueriesIntegrationTestSuite) seedNotification(recipientID kernel.UUID, message string, readAt *time.Time, createdAt time.Time) {
	id, err := uuid.Parse(kernel.NewUUID().String())
	suite.Require().NoError(err)
	recipient, err := uuid.Parse(recipientID.String())
	suite.Require().NoError(err)

	payload, err := json.Marshal(map[string]any{
		"order_id":       kernel.NewUUID().String(),
		"destination":    "Lisbon",
		"status":         "pending",
		"departure_date": time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
		"return_date":    time.Date(2026, 11, 6, 0, 0, 0, 0, time.UTC),
		"actor_name":     "Dana Cruz",
	})
	suite.Require().NoError(err)

	dto := notificationrepo.NotificationDTO{
		ID:          id,
		RecipientID: recipient,
		Kind:        "order_created",
		Payload:     payload,
		Message:     message,
		ReadAt:      readAt,
		CreatedAt:   createdAt,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func (suite *QueriesIntegrationTestSuite) TestGetTravelOrder_OwnerReadsOwnOrder() {
	ctx := context.Background()
	owner := suite.newActor(kernel.RoleUser)
	seeded := suite.seedOrder(owner.ID(), "Lisbon", "pending",
		time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC))

	orderID, err := kernel.UUIDFromString(seeded.ID.String())
	suite.Require().NoError(err)

	query, err := queries.NewGetTravelOrderQuery(orderID, owner)
	suite.Require().NoError(err)

	order, err := queries.NewGetTravelOrderQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal("Lisbon", order.Destination)
	suite.Equal("pending", order.Status)
	suite.Equal(owner.ID().String(), order.OwnerID.String())
}

func (suite *QueriesIntegrationTestSuite) TestGetTravelOrder_StrangerIsForbidden() {
	ctx := context.Background()
	seeded := suite.seedOrder(kernel.NewUUID(), "Lisbon", "pending",
		time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC))

	orderID, err := kernel.UUIDFromString(seeded.ID.String())
	suite.Require().NoError(err)

	stranger := suite.newActor(kernel.RoleUser)
	query, err := queries.NewGetTravelOrderQuery(orderID, stranger)
	suite.Require().NoError(err)

	_, err = queries.NewGetTravelOrderQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().ErrorIs(err, errs.ErrForbidden)
}

func (suite *QueriesIntegrationTestSuite) TestGetTravelOrder_UnknownIDIsNotFound() {
	ctx := context.Background()
	admin := suite.newActor(kernel.RoleAdmin)

	query, err := queries.NewGetTravelOrderQuery(kernel.NewUUID(), admin)
	suite.Require().NoError(err)

	_, err = queries.NewGetTravelOrderQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestListTravelOrders_UserSeesOnlyOwnOrders() {
	ctx := context.Background()
	owner := suite.newActor(kernel.RoleUser)

	suite.seedOrder(owner.ID(), "Lisbon", "pending", time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC))
	suite.seedOrder(kernel.NewUUID(), "Porto", "pending", time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC))

	query, err := queries.NewListTravelOrdersQuery(owner, queries.ListTravelOrdersFilters{})
	suite.Require().NoError(err)

	list, err := queries.NewListTravelOrdersQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(int64(1), list.Total)
	suite.Require().Len(list.Items, 1)
	suite.Equal("Lisbon", list.Items[0].Destination)
}

func (suite *QueriesIntegrationTestSuite) TestListTravelOrders_AdminSeesEverything() {
	ctx := context.Background()
	admin := suite.newActor(kernel.RoleAdmin)

	suite.seedOrder(kernel.NewUUID(), "Lisbon", "pending", time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC))
	suite.seedOrder(kernel.NewUUID(), "Porto", "approved", time.Date(2026, 11, 9, 0, 0, 0, 0, time.UTC))

	query, err := queries.NewListTravelOrdersQuery(admin, queries.ListTravelOrdersFilters{})
	suite.Require().NoError(err)

	list, err := queries.NewListTravelOrdersQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(int64(2), list.Total)
}

func (suite *QueriesIntegrationTestSuite) TestListTravelOrders_StatusAndDestinationFilters() {
	ctx := context.Background()
	admin := suite.newActor(kernel.RoleAdmin)

	suite.seedOrder(kernel.NewUUID(), "Lisbon", "pending", time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC))
	suite.seedOrder(kernel.NewUUID(), "Lisbon", "approved", time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC))
	suite.seedOrder(kernel.NewUUID(), "Porto", "approved", time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC))

	query, err := queries.NewListTravelOrdersQuery(admin, queries.ListTravelOrdersFilters{
		Statuses:    []travelorder.Status{travelorder.Approved},
		Destination: "lis",
	})
	suite.Require().NoError(err)

	list, err := queries.NewListTravelOrdersQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(int64(1), list.Total)
	suite.Require().Len(list.Items, 1)
	suite.Equal("approved", list.Items[0].Status)
}

func (suite *QueriesIntegrationTestSuite) TestListTravelOrders_DepartureRangeFilter() {
	ctx := context.Background()
	admin := suite.newActor(kernel.RoleAdmin)

	suite.seedOrder(kernel.NewUUID(), "Lisbon", "pending", time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC))
	suite.seedOrder(kernel.NewUUID(), "Porto", "pending", time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC))

	from := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	query, err := queries.NewListTravelOrdersQuery(admin, queries.ListTravelOrdersFilters{
		DepartureFrom: &from,
	})
	suite.Require().NoError(err)

	list, err := queries.NewListTravelOrdersQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(list.Items, 1)
	suite.Equal("Porto", list.Items[0].Destination)
}

func (suite *QueriesIntegrationTestSuite) TestListTravelOrders_SortByDestinationAscending() {
	ctx := context.Background()
	admin := suite.newActor(kernel.RoleAdmin)

	suite.seedOrder(kernel.NewUUID(), "Porto", "pending", time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC))
	suite.seedOrder(kernel.NewUUID(), "Braga", "pending", time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC))
	suite.seedOrder(kernel.NewUUID(), "Lisbon", "pending", time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC))

	query, err := queries.NewListTravelOrdersQuery(admin, queries.ListTravelOrdersFilters{
		SortBy:        queries.SortByDestination,
		SortAscending: true,
	})
	suite.Require().NoError(err)

	list, err := queries.NewListTravelOrdersQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(list.Items, 3)
	suite.Equal("Braga", list.Items[0].Destination)
	suite.Equal("Lisbon", list.Items[1].Destination)
	suite.Equal("Porto", list.Items[2].Destination)
}

func (suite *QueriesIntegrationTestSuite) TestListTravelOrders_Pagination() {
	ctx := context.Background()
	admin := suite.newActor(kernel.RoleAdmin)

	for i := 0; i < 25; i++ {
		suite.seedOrder(kernel.NewUUID(), fmt.Sprintf("City %02d", i), "pending",
			time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC))
	}

	query, err := queries.NewListTravelOrdersQuery(admin, queries.ListTravelOrdersFilters{
		Page:    3,
		PerPage: 10,
	})
	suite.Require().NoError(err)

	list, err := queries.NewListTravelOrdersQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(int64(25), list.Total)
	suite.Equal(3, list.Page)
	suite.Equal(10, list.PerPage)
	suite.Equal(3, list.LastPage)
	suite.Len(list.Items, 5)
}

func (suite *QueriesIntegrationTestSuite) TestListTravelOrders_UnpaginatedReturnsAll() {
	ctx := context.Background()
	admin := suite.newActor(kernel.RoleAdmin)

	for i := 0; i < 12; i++ {
		suite.seedOrder(kernel.NewUUID(), "Lisbon", "pending",
			time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC))
	}

	query, err := queries.NewListTravelOrdersQuery(admin, queries.ListTravelOrdersFilters{})
	suite.Require().NoError(err)

	list, err := queries.NewListTravelOrdersQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Len(list.Items, 12)
	suite.Equal(1, list.Page)
	suite.Equal(12, list.PerPage)
	suite.Equal(1, list.LastPage)
}

func (suite *QueriesIntegrationTestSuite) TestListTravelOrders_ExcludesSoftDeleted() {
	ctx := context.Background()
	admin := suite.newActor(kernel.RoleAdmin)

	kept := suite.seedOrder(kernel.NewUUID(), "Lisbon", "pending",
		time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC))
	removed := suite.seedOrder(kernel.NewUUID(), "Porto", "pending",
		time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(suite.db.Delete(&removed).Error)

	query, err := queries.NewListTravelOrdersQuery(admin, queries.ListTravelOrdersFilters{})
	suite.Require().NoError(err)

	list, err := queries.NewListTravelOrdersQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(list.Items, 1)
	suite.Equal(kept.ID.String(), list.Items[0].ID.String())
}

func (suite *QueriesIntegrationTestSuite) TestListNotifications_UnreadFirstWithCount() {
	ctx := context.Background()
	recipient := kernel.NewUUID()
	readAt := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	suite.seedNotification(recipient, "old read", &readAt,
		time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC))
	suite.seedNotification(recipient, "older unread", nil,
		time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC))
	suite.seedNotification(recipient, "newest unread", nil,
		time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC))
	suite.seedNotification(kernel.NewUUID(), "foreign", nil,
		time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC))

	query, err := queries.NewListNotificationsQuery(recipient, 10)
	suite.Require().NoError(err)

	list, err := queries.NewListNotificationsQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(int64(2), list.UnreadCount)
	suite.Require().Len(list.Items, 3)
	suite.Equal("newest unread", list.Items[0].Message)
	suite.Equal("older unread", list.Items[1].Message)
	suite.Equal("old read", list.Items[2].Message)
	suite.Nil(list.Items[0].ReadAt)
	suite.NotNil(list.Items[2].ReadAt)
}

func (suite *QueriesIntegrationTestSuite) TestListNotifications_UnreadOnlyExcludesRead() {
	ctx := context.Background()
	recipient := kernel.NewUUID()
	readAt := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	suite.seedNotification(recipient, "read", &readAt,
		time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC))
	suite.seedNotification(recipient, "unread", nil,
		time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC))

	query, err := queries.NewUnreadNotificationsQuery(recipient, 10)
	suite.Require().NoError(err)

	list, err := queries.NewListNotificationsQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(int64(1), list.UnreadCount)
	suite.Require().Len(list.Items, 1)
	suite.Equal("unread", list.Items[0].Message)
	suite.Nil(list.Items[0].ReadAt)
}

func (suite *QueriesIntegrationTestSuite) TestListNotifications_LimitCapsPage() {
	ctx := context.Background()
	recipient := kernel.NewUUID()

	for i := 0; i < 5; i++ {
		suite.seedNotification(recipient, fmt.Sprintf("entry %d", i), nil,
			time.Date(2026, 8, 25+i, 9, 0, 0, 0, time.UTC))
	}

	query, err := queries.NewListNotificationsQuery(recipient, 2)
	suite.Require().NoError(err)

	list, err := queries.NewListNotificationsQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Len(list.Items, 2)
	suite.Equal(int64(5), list.UnreadCount)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
