package commands_test

import (
	"testing"

	"travelorders/internal/core/application/usecases/commands"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/notification"
	"travelorders/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteTravelOrderCommandHandler_Handle_OwnerDeletesPending(t *testing.T) {
	ctx := t.Context()
	owner := mustActor(kernel.RoleUser)
	order := mustOrder(owner.ID())

	cmd, err := commands.NewDeleteTravelOrderCommand(order.ID(), owner)
	require.NoError(t, err)

	orderRepo := new(MockTravelOrderRepository)
	uow := new(MockUoW)
	dispatcher := new(MockDispatcher)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TravelOrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once()
	orderRepo.On("SoftDelete", ctx, order).Return(nil).Once()

	var dispatched notification.Event
	dispatcher.On("Dispatch", ctx, uow, mock.Anything).
		Run(func(args mock.Arguments) {
			dispatched = args.Get(2).(notification.Event)
		}).
		Return([]*notification.Notification{}, nil).Once()
	dispatcher.On("DeliverAsync", mock.Anything, mock.Anything).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteTravelOrderCommandHandler(factory, dispatcher)
	require.NoError(t, handler.Handle(ctx, cmd))

	require.Equal(t, notification.OrderDeleted, dispatched.Kind)
	require.True(t, owner.ID().IsEqual(dispatched.Actor.ID))
	// Owner acted on their own order, no directory lookup needed.
	uow.AssertNotCalled(t, "UserRepository")
}

func TestDeleteTravelOrderCommandHandler_Handle_AdminDeletesAnyStatus(t *testing.T) {
	ctx := t.Context()
	admin := mustActor(kernel.RoleAdmin)
	owner := mustActor(kernel.RoleUser)
	order := mustOrder(owner.ID())
	require.NoError(t, order.Approve())

	cmd, err := commands.NewDeleteTravelOrderCommand(order.ID(), admin)
	require.NoError(t, err)

	orderRepo := new(MockTravelOrderRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	dispatcher := new(MockDispatcher)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TravelOrderRepository").Return(orderRepo).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once()
	orderRepo.On("SoftDelete", ctx, order).Return(nil).Once()
	userRepo.On("Get", ctx, owner.ID()).Return(owner, nil).Once()

	var dispatched notification.Event
	dispatcher.On("Dispatch", ctx, uow, mock.Anything).
		Run(func(args mock.Arguments) {
			dispatched = args.Get(2).(notification.Event)
		}).
		Return([]*notification.Notification{}, nil).Once()
	dispatcher.On("DeliverAsync", mock.Anything, mock.Anything).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteTravelOrderCommandHandler(factory, dispatcher)
	require.NoError(t, handler.Handle(ctx, cmd))

	require.Equal(t, owner.Email(), dispatched.Order.OwnerEmail)
	require.True(t, admin.ID().IsEqual(dispatched.Actor.ID))
}

func TestDeleteTravelOrderCommandHandler_Handle_OwnerCannotDeleteDecided(t *testing.T) {
	ctx := t.Context()
	owner := mustActor(kernel.RoleUser)
	order := mustOrder(owner.ID())
	require.NoError(t, order.Reject("over budget"))

	cmd, err := commands.NewDeleteTravelOrderCommand(order.ID(), owner)
	require.NoError(t, err)

	orderRepo := new(MockTravelOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TravelOrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteTravelOrderCommandHandler(factory, new(MockDispatcher))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	orderRepo.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
}

func TestDeleteTravelOrderCommandHandler_Handle_StrangerForbidden(t *testing.T) {
	ctx := t.Context()
	owner := mustActor(kernel.RoleUser)
	stranger := mustActor(kernel.RoleUser)
	order := mustOrder(owner.ID())

	cmd, err := commands.NewDeleteTravelOrderCommand(order.ID(), stranger)
	require.NoError(t, err)

	orderRepo := new(MockTravelOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TravelOrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteTravelOrderCommandHandler(factory, new(MockDispatcher))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrForbidden)
}
