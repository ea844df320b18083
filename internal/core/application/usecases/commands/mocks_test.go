package commands_test

import (
	"context"
	"time"

	"travelorders/internal/core/application/usecases/commands"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/notification"
	"travelorders/internal/core/domain/model/travelorder"
	"travelorders/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockTravelOrderRepository struct{ mock.Mock }

func (m *MockTravelOrderRepository) Add(ctx context.Context, o *travelorder.TravelOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockTravelOrderRepository) Update(ctx context.Context, o *travelorder.TravelOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockTravelOrderRepository) Get(ctx context.Context, id kernel.UUID) (*travelorder.TravelOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*travelorder.TravelOrder), args.Error(1)
}

func (m *MockTravelOrderRepository) SoftDelete(ctx context.Context, o *travelorder.TravelOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockTravelOrderRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) GetForRecipient(
	ctx context.Context, recipientID kernel.UUID, id kernel.UUID,
) (*notification.Notification, error) {
	args := m.Called(ctx, recipientID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) GetAllForRecipient(
	ctx context.Context, recipientID kernel.UUID, limit int,
) ([]*notification.Notification, error) {
	args := m.Called(ctx, recipientID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkAllReadForRecipient(
	ctx context.Context, recipientID kernel.UUID, readAt time.Time,
) error {
	args := m.Called(ctx, recipientID, readAt)
	return args.Error(0)
}

func (m *MockNotificationRepository) DeleteForRecipient(
	ctx context.Context, recipientID kernel.UUID, id kernel.UUID,
) error {
	args := m.Called(ctx, recipientID, id)
	return args.Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (kernel.Actor, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(kernel.Actor), args.Error(1)
}

func (m *MockUserRepository) GetAllAdmins(ctx context.Context) ([]kernel.Actor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.Actor), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) TravelOrderRepository() ports.TravelOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.TravelOrderRepository)
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

type MockDispatcher struct{ mock.Mock }

func (m *MockDispatcher) Dispatch(
	ctx context.Context, stores commands.FanoutStores, event notification.Event,
) ([]*notification.Notification, error) {
	args := m.Called(ctx, stores, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

func (m *MockDispatcher) DeliverAsync(event notification.Event, notifications []*notification.Notification) {
	m.Called(event, notifications)
}

func mustActor(role kernel.Role) kernel.Actor {
	actor, err := kernel.NewActor(kernel.NewUUID(), "Jordan Li", "jordan@example.com", role)
	if err != nil {
		panic(err)
	}
	return actor
}

func mustTripDates() travelorder.TripDates {
	dates, err := travelorder.NewTripDates(
		time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		panic(err)
	}
	return dates
}

func mustOrder(ownerID kernel.UUID) *travelorder.TravelOrder {
	order, err := travelorder.NewTravelOrder(kernel.NewUUID(), ownerID, "Lisbon", mustTripDates())
	if err != nil {
		panic(err)
	}
	return order
}
