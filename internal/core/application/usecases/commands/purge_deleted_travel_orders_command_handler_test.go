package commands_test

import (
	"testing"
	"time"

	"travelorders/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewPurgeDeletedTravelOrdersCommand_InvalidRetention(t *testing.T) {
	_, err := commands.NewPurgeDeletedTravelOrdersCommand(0)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRetentionPeriodIsInvalid)

	_, err = commands.NewPurgeDeletedTravelOrdersCommand(-time.Hour)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRetentionPeriodIsInvalid)
}

func TestPurgeDeletedTravelOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPurgeDeletedTravelOrdersCommand(90 * 24 * time.Hour)
	require.NoError(t, err)

	orderRepo := new(MockTravelOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TravelOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("PurgeDeletedBefore", ctx, mock.AnythingOfType("time.Time")).
			Return(int64(3), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPurgeDeletedTravelOrdersCommandHandler(factory)
	purged, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, int64(3), purged)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPurgeDeletedTravelOrdersCommandHandler_Handle_CutoffRespectsRetention(t *testing.T) {
	ctx := t.Context()
	retention := 30 * 24 * time.Hour
	cmd, err := commands.NewPurgeDeletedTravelOrdersCommand(retention)
	require.NoError(t, err)

	orderRepo := new(MockTravelOrderRepository)
	uow := new(MockUoW)

	var cutoff time.Time
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TravelOrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("PurgeDeletedBefore", ctx, mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			cutoff = args.Get(1).(time.Time)
		}).
		Return(int64(0), nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPurgeDeletedTravelOrdersCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)
	require.NoError(t, err)

	expected := time.Now().UTC().Add(-retention)
	require.WithinDuration(t, expected, cutoff, time.Minute)
}
