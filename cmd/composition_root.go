package cmd

import (
	"log/slog"

	httpin "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/eventlog"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/restaurant"
	"restaurant/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires the coordinator to its adapters. gormDB may be nil, in which
// case seeding is unavailable, nothing is archived and archive queries answer 503.
type CompositionRoot struct {
	config     Config
	restaurant *restaurant.Restaurant
	events     *eventlog.Publisher
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	r *restaurant.Restaurant,
	events *eventlog.Publisher,
	logger *slog.Logger,
) CompositionRoot {
	root := CompositionRoot{
		config:     config,
		restaurant: r,
		events:     events,
		logger:     logger,
		gormDB:     gormDB,
	}
	if gormDB != nil {
		root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
	}
	return root
}

func (c *CompositionRoot) Restaurant() *restaurant.Restaurant {
	return c.restaurant
}

func (c *CompositionRoot) archiveUoWFactory() commands.ArchiveUoWFactory {
	if c.uowFactory == nil {
		return nil
	}
	return FuncArchiveUoWFactory(func() commands.ArchiveUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSeedRestaurantCommandHandler() commands.SeedRestaurantCommandHandler {
	var f commands.SeedUoWFactory
	if c.uowFactory != nil {
		f = FuncSeedUoWFactory(func() commands.SeedUoW {
			return c.uowFactory.Create()
		})
	}
	return commands.NewSeedRestaurantCommandHandler(c.restaurant, f, c.logger)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.restaurant, c.events, c.logger)
}

func (c *CompositionRoot) CreateProcessKitchenQueueCommandHandler() commands.ProcessKitchenQueueCommandHandler {
	return commands.NewProcessKitchenQueueCommandHandler(c.restaurant, c.events, c.logger)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.restaurant, c.events, c.logger)
}

func (c *CompositionRoot) CreateDispatchDeliveryCommandHandler() commands.DispatchDeliveryCommandHandler {
	return commands.NewDispatchDeliveryCommandHandler(c.restaurant, c.events, c.logger)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.restaurant, c.archiveUoWFactory(), c.events, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.restaurant, c.archiveUoWFactory(), c.events, c.logger)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPopularItemsQueryHandler() queries.GetPopularItemsQueryHandler {
	return queries.NewGetPopularItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(c.restaurant, httpin.Handlers{
		PlaceOrder:     c.CreatePlaceOrderCommandHandler(),
		KitchenQueue:   c.CreateProcessKitchenQueueCommandHandler(),
		CompleteOrder:  c.CreateCompleteOrderCommandHandler(),
		Dispatch:       c.CreateDispatchDeliveryCommandHandler(),
		ConfirmDeliver: c.CreateConfirmDeliveryCommandHandler(),
		CancelOrder:    c.CreateCancelOrderCommandHandler(),
		OrderHistory:   c.CreateGetOrderHistoryQueryHandler(),
		PopularItems:   c.CreateGetPopularItemsQueryHandler(),
	}, c.events)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	kitchen := c.CreateProcessKitchenQueueCommandHandler()
	return jobs.NewJobManager(&kitchen, c.restaurant, jobs.Schedules{
		KitchenDispatch: c.config.KitchenDispatchSchedule,
		Report:          c.config.ReportSchedule,
	}, c.logger)
}

type FuncArchiveUoWFactory func() commands.ArchiveUoW

func (f FuncArchiveUoWFactory) Create() commands.ArchiveUoW {
	return f()
}

type FuncSeedUoWFactory func() commands.SeedUoW

func (f FuncSeedUoWFactory) Create() commands.SeedUoW {
	return f()
}
