package cmd

import (
	"log/slog"

	"travelorders/internal/adapters/in/http"
	"travelorders/internal/adapters/out/postgres"
	"travelorders/internal/adapters/out/postgres/userrepo"
	"travelorders/internal/core/application/notifications"
	"travelorders/internal/core/application/usecases/commands"
	"travelorders/internal/core/application/usecases/queries"
	"travelorders/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	dispatcher *notifications.Dispatcher
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	broadcaster ports.Broadcaster,
	mailer ports.Mailer,
	logger *slog.Logger,
) CompositionRoot {
	dispatcher := notifications.NewDispatcher(
		broadcaster,
		mailer,
		userrepo.NewGormUserRepository(gormDB),
		logger,
	)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		dispatcher: dispatcher,
	}
}

// Dispatcher exposes the notification pipeline so main can start and stop
// its delivery worker alongside the web server.
func (c *CompositionRoot) Dispatcher() *notifications.Dispatcher {
	return c.dispatcher
}

func (c *CompositionRoot) CreateCreateTravelOrderCommandHandler() commands.CreateTravelOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTravelOrderCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateUpdateTravelOrderCommandHandler() commands.UpdateTravelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateTravelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeTravelOrderStatusCommandHandler() commands.ChangeTravelOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeTravelOrderStatusCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateCancelTravelOrderCommandHandler() commands.CancelTravelOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelTravelOrderCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateDeleteTravelOrderCommandHandler() commands.DeleteTravelOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteTravelOrderCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkNotificationReadCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkAllNotificationsReadCommandHandler() commands.MarkAllNotificationsReadCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkAllNotificationsReadCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteNotificationCommandHandler() commands.DeleteNotificationCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteNotificationCommandHandler(f)
}

func (c *CompositionRoot) CreatePurgeDeletedTravelOrdersCommandHandler() commands.PurgeDeletedTravelOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeDeletedTravelOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetTravelOrderQueryHandler() queries.GetTravelOrderQueryHandler {
	return queries.NewGetTravelOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListTravelOrdersQueryHandler() queries.ListTravelOrdersQueryHandler {
	return queries.NewListTravelOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListNotificationsQueryHandler() queries.ListNotificationsQueryHandler {
	return queries.NewListNotificationsQueryHandler(c.gormDB)
}

// CreateServer assembles the HTTP server over every handler above.
func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(
		c.CreateCreateTravelOrderCommandHandler(),
		c.CreateUpdateTravelOrderCommandHandler(),
		c.CreateChangeTravelOrderStatusCommandHandler(),
		c.CreateCancelTravelOrderCommandHandler(),
		c.CreateDeleteTravelOrderCommandHandler(),
		c.CreateMarkNotificationReadCommandHandler(),
		c.CreateMarkAllNotificationsReadCommandHandler(),
		c.CreateDeleteNotificationCommandHandler(),
		c.CreateGetTravelOrderQueryHandler(),
		c.CreateListTravelOrdersQueryHandler(),
		c.CreateListNotificationsQueryHandler(),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
